package report

import (
	"strings"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
)

// SectionID 章节标识。未知取值原样保留，渲染方走通用样式
type SectionID string

const (
	SectionEvidence    SectionID = "evidence"
	SectionChange      SectionID = "change"
	SectionImpact      SectionID = "impact"
	SectionCompetitors SectionID = "competitors"
	SectionOutlook     SectionID = "outlook"
	SectionConfidence  SectionID = "confidence"
	SectionCEO         SectionID = "ceo"
	SectionUnknown     SectionID = "unknown"
)

var knownSections = map[SectionID]bool{
	SectionEvidence:    true,
	SectionChange:      true,
	SectionImpact:      true,
	SectionCompetitors: true,
	SectionOutlook:     true,
	SectionConfidence:  true,
	SectionCEO:         true,
	SectionUnknown:     true,
}

// Known 是否为约定的章节标识
func (id SectionID) Known() bool {
	return knownSections[id]
}

// EvidenceChip 引用来源，SourceName 与 Title 非空
type EvidenceChip struct {
	SourceName string `json:"source"`
	Timestamp  string `json:"timestamp,omitempty"`
	Title      string `json:"title"`
}

// Section 报告章节。各字段可以同时出现，渲染方全部展示
type Section struct {
	ID            SectionID      `json:"id"`
	Title         string         `json:"title"`
	Points        []string       `json:"points,omitempty"`
	Evidence      []EvidenceChip `json:"evidence,omitempty"`
	RatingValue   string         `json:"value,omitempty"`
	RatingReason  string         `json:"reason,omitempty"`
	NarrativeText string         `json:"text,omitempty"`
}

// Tier 置信度档位
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// ConfidenceTier 只对 confidence 章节有效，RatingValue 不区分大小写匹配 high/medium/low
func (s Section) ConfidenceTier() (Tier, bool) {
	if s.ID != SectionConfidence {
		return "", false
	}
	switch t := Tier(strings.ToLower(strings.TrimSpace(s.RatingValue))); t {
	case TierHigh, TierMedium, TierLow:
		return t, true
	default:
		return "", false
	}
}

// Percent 置信度条宽度
func (t Tier) Percent() int {
	switch t {
	case TierHigh:
		return 85
	case TierMedium:
		return 55
	case TierLow:
		return 25
	default:
		return 0
	}
}

// Origin 文档的解析来源
type Origin string

const (
	OriginJSON     Origin = "json"
	OriginFallback Origin = "fallback"
	OriginEmpty    Origin = "empty"
)

// Document 报告文档，Sections 保持输入顺序。
// 只有 Sections 参与序列化，其余字段是解析时附带的只读信息。
type Document struct {
	Sections []Section `json:"sections"`

	Origin Origin        `json:"-"`
	Blocks []block.Block `json:"-"`
	Issues []Issue       `json:"-"`
}

// IsFallback 是否走了原文兜底
func (d Document) IsFallback() bool {
	return d.Origin == OriginFallback
}

// IssueKind 解析过程中被就地恢复的问题类型
type IssueKind string

const (
	IssueMalformedJSON        IssueKind = "MalformedJSON"
	IssueMissingSectionsArray IssueKind = "MissingSectionsArray"
	IssueUnknownSectionID     IssueKind = "UnknownSectionId"
	IssueInvalidEvidenceEntry IssueKind = "InvalidEvidenceEntry"
	IssueScoreOutOfRange      IssueKind = "OutOfRangeOrMissingScore"
	IssueEmptyInput           IssueKind = "EmptyInput"
)

// Issue 一条已恢复的问题，不会作为错误返回给调用方
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Detail string    `json:"detail,omitempty"`
}

func (i Issue) String() string {
	if i.Detail == "" {
		return string(i.Kind)
	}
	return string(i.Kind) + ": " + i.Detail
}

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// StripFence 去掉首部的 ```json / ``` 与尾部的 ```，纯文本处理
func StripFence(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Parse 将模型输出解析为报告文档，任何输入都返回可用的文档。
// JSON 解析失败或缺少顶层 sections 数组时，对原文逐行分类并包装成单章节文档。
func Parse(raw string) Document {
	if raw == "" {
		return Document{
			Sections: []Section{},
			Origin:   OriginEmpty,
			Issues:   []Issue{{Kind: IssueEmptyInput}},
		}
	}

	body := []byte(StripFence(raw))
	if !json.Valid(body) {
		return fallback(raw, Issue{Kind: IssueMalformedJSON, Detail: describeSyntaxError(body)})
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil || envelope == nil {
		return fallback(raw, Issue{Kind: IssueMissingSectionsArray, Detail: "top-level value is not an object"})
	}
	sectionsRaw, ok := envelope["sections"]
	if !ok {
		return fallback(raw, Issue{Kind: IssueMissingSectionsArray, Detail: "no sections key"})
	}
	if trimmed := bytes.TrimSpace(sectionsRaw); len(trimmed) == 0 || trimmed[0] != '[' {
		return fallback(raw, Issue{Kind: IssueMissingSectionsArray, Detail: "sections is not an array"})
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(sectionsRaw, &entries); err != nil {
		return fallback(raw, Issue{Kind: IssueMissingSectionsArray, Detail: err.Error()})
	}

	doc := Document{
		Sections: make([]Section, 0, len(entries)),
		Origin:   OriginJSON,
	}
	for i, entry := range entries {
		sec, issues := normalizeSection(i, entry)
		doc.Sections = append(doc.Sections, sec)
		doc.Issues = append(doc.Issues, issues...)
	}
	return doc
}

func describeSyntaxError(body []byte) string {
	var v any
	err := json.Unmarshal(body, &v)
	if err == nil {
		return "invalid JSON"
	}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return fmt.Sprintf("%s (offset %d)", se.Error(), se.Offset)
	}
	return err.Error()
}

// normalizeSection 将一条 sections 元素规整为 Section
func normalizeSection(idx int, raw json.RawMessage) (Section, []Issue) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		// 非对象元素保留位置，字符串内容作为正文
		sec := Section{ID: SectionUnknown}
		var text string
		if json.Unmarshal(raw, &text) == nil {
			sec.NarrativeText = text
		}
		return sec, []Issue{{Kind: IssueUnknownSectionID, Detail: fmt.Sprintf("sections[%d]: entry is not an object", idx)}}
	}

	var issues []Issue
	sec := Section{
		ID:            SectionID(strings.TrimSpace(scalarString(fields["id"]))),
		Title:         scalarString(fields["title"]),
		RatingValue:   scalarString(fields["value"]),
		RatingReason:  scalarString(fields["reason"]),
		NarrativeText: scalarString(fields["text"]),
	}
	if sec.ID == "" {
		sec.ID = SectionUnknown
		issues = append(issues, Issue{Kind: IssueUnknownSectionID, Detail: fmt.Sprintf("sections[%d]: missing id", idx)})
	} else if !sec.ID.Known() {
		issues = append(issues, Issue{Kind: IssueUnknownSectionID, Detail: fmt.Sprintf("sections[%d]: %q", idx, sec.ID)})
	}

	if raw, ok := fields["points"]; ok {
		sec.Points = normalizePoints(raw)
	}
	if raw, ok := fields["evidence"]; ok {
		var evIssues []Issue
		sec.Evidence, evIssues = normalizeEvidence(idx, raw)
		issues = append(issues, evIssues...)
	}
	return sec, issues
}

func normalizePoints(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil
	}
	points := make([]string, 0, len(items))
	for _, item := range items {
		if !isScalar(item) {
			continue
		}
		points = append(points, scalarString(item))
	}
	return points
}

func normalizeEvidence(idx int, raw json.RawMessage) ([]EvidenceChip, []Issue) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, []Issue{{Kind: IssueInvalidEvidenceEntry, Detail: fmt.Sprintf("sections[%d].evidence: not an array", idx)}}
	}

	var (
		chips  []EvidenceChip
		issues []Issue
	)
	for j, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			issues = append(issues, Issue{Kind: IssueInvalidEvidenceEntry, Detail: fmt.Sprintf("sections[%d].evidence[%d]: not an object", idx, j)})
			continue
		}
		source := strings.TrimSpace(scalarString(fields["source"]))
		if source == "" {
			source = strings.TrimSpace(scalarString(fields["sourceName"]))
		}
		title := strings.TrimSpace(scalarString(fields["title"]))
		if source == "" || title == "" {
			issues = append(issues, Issue{Kind: IssueInvalidEvidenceEntry, Detail: fmt.Sprintf("sections[%d].evidence[%d]: missing source or title", idx, j)})
			continue
		}
		chips = append(chips, EvidenceChip{
			SourceName: source,
			Timestamp:  strings.TrimSpace(scalarString(fields["timestamp"])),
			Title:      title,
		})
	}
	return chips, issues
}

// scalarString 字符串取其值，数字与布尔取字面量，其余为空
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if isScalar(raw) && string(raw) != "null" {
		return string(raw)
	}
	return ""
}

func isScalar(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case '{', '[', 'n':
		return false
	default:
		return true
	}
}

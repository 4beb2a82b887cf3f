package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
)

// RawOutputTitle 兜底章节标题
const RawOutputTitle = "Raw Output"

// fallback 把原文包装成单个 unknown 章节。
// Points 按行原样保存，strings.Join(Points, "\n") 与原文完全一致；
// Blocks 保存逐行分类结果，供渲染方按行展示。
func fallback(raw string, cause Issue) Document {
	lines := strings.Split(raw, "\n")
	blocks := block.ClassifyLines(raw)

	issues := []Issue{cause}
	issues = append(issues, scoreIssues(lines, blocks)...)

	return Document{
		Sections: []Section{{
			ID:     SectionUnknown,
			Title:  RawOutputTitle,
			Points: lines,
		}},
		Origin: OriginFallback,
		Blocks: blocks,
		Issues: issues,
	}
}

// scoreIssues 记录被截断或缺失的信号强度
func scoreIssues(lines []string, blocks []block.Block) []Issue {
	var issues []Issue
	for i, b := range blocks {
		m, ok := b.(block.ReliabilityMeter)
		if !ok {
			continue
		}
		digits := block.ScoreDigits(lines[i])
		if digits == "" {
			issues = append(issues, Issue{Kind: IssueScoreOutOfRange, Detail: fmt.Sprintf("line %d: no score, using 0", i+1)})
			continue
		}
		if n, err := strconv.Atoi(digits); err != nil || n != m.Score {
			issues = append(issues, Issue{Kind: IssueScoreOutOfRange, Detail: fmt.Sprintf("line %d: score %s clamped to %d", i+1, digits, m.Score)})
		}
	}
	return issues
}

// Text 文档的纯文本形式。
// 兜底文档返回原文；JSON 文档按章节输出可读文本。
func (d Document) Text() string {
	if d.IsFallback() && len(d.Sections) == 1 {
		return strings.Join(d.Sections[0].Points, "\n")
	}

	var sb strings.Builder
	for i, sec := range d.Sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sec.writeText(&sb)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (s Section) writeText(sb *strings.Builder) {
	if s.Title != "" {
		sb.WriteString(s.Title)
		sb.WriteString("\n")
	}
	for _, p := range s.Points {
		fmt.Fprintf(sb, "- %s\n", p)
	}
	for _, ev := range s.Evidence {
		if ev.Timestamp != "" {
			fmt.Fprintf(sb, "[%s | %s] %s\n", ev.Timestamp, ev.SourceName, ev.Title)
		} else {
			fmt.Fprintf(sb, "[%s] %s\n", ev.SourceName, ev.Title)
		}
	}
	if s.RatingValue != "" {
		if s.ID == SectionConfidence {
			fmt.Fprintf(sb, "%s Confidence\n", s.RatingValue)
		} else {
			fmt.Fprintf(sb, "%s\n", s.RatingValue)
		}
	}
	if s.RatingReason != "" {
		sb.WriteString(s.RatingReason)
		sb.WriteString("\n")
	}
	if s.NarrativeText != "" {
		fmt.Fprintf(sb, "\"%s\"\n", s.NarrativeText)
	}
}

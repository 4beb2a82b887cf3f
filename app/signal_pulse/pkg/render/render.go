// Package render 把块序列与报告文档渲染为终端文本
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/report"
)

var (
	Primary = lipgloss.Color("#2196F3")
	Alert   = lipgloss.Color("#e53935")
	Muted   = lipgloss.Color("#8a94a6")
	High    = lipgloss.Color("#8BC34A")
	Medium  = lipgloss.Color("#FFC107")
	Low     = lipgloss.Color("#e53935")
)

const meterWidth = 20

var iconGlyphs = map[block.Icon]string{
	block.IconGlobe:       "◍",
	block.IconCpu:         "▣",
	block.IconActivity:    "∿",
	block.IconBarChart3:   "▥",
	block.IconShieldAlert: "◈",
}

// Renderer 终端渲染器
type Renderer struct {
	headline lipgloss.Style
	header   lipgloss.Style
	alert    lipgloss.Style
	summary  lipgloss.Style
	label    lipgloss.Style
	muted    lipgloss.Style
	body     lipgloss.Style
}

// New 创建渲染器，width 为摘要框宽度，0 表示不限制
func New(width int) *Renderer {
	summary := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)
	if width > 0 {
		summary = summary.Width(width)
	}
	return &Renderer{
		headline: lipgloss.NewStyle().Bold(true).Foreground(Primary),
		header:   lipgloss.NewStyle().Bold(true).Underline(true),
		alert:    lipgloss.NewStyle().Bold(true).Foreground(Alert),
		summary:  summary,
		label:    lipgloss.NewStyle().Bold(true).Foreground(Primary),
		muted:    lipgloss.NewStyle().Foreground(Muted),
		body:     lipgloss.NewStyle(),
	}
}

// Blocks 渲染块序列，一块一行
func (r *Renderer) Blocks(bs []block.Block) string {
	lines := make([]string, 0, len(bs))
	for _, b := range bs {
		lines = append(lines, r.Block(b))
	}
	return strings.Join(lines, "\n")
}

// Block 渲染单个块
func (r *Renderer) Block(b block.Block) string {
	switch v := b.(type) {
	case block.Headline:
		return r.headline.Render(v.Title)
	case block.SectionHeader:
		return r.header.Render(iconGlyphs[v.Icon] + " " + v.Title)
	case block.Alert:
		return r.alert.Render("! " + v.Text)
	case block.ExecutiveSummary:
		return r.summary.Render(r.label.Render("CEO Summary") + "\n" + v.Text)
	case block.ReliabilityMeter:
		return "Signal Strength " + Meter(v.Score)
	case block.BulletItem:
		return "  • " + r.body.Render(v.Text)
	case block.LetteredItem:
		return "  " + r.label.Render(v.Label) + " " + v.Text
	case block.Paragraph:
		return r.body.Render(v.Text)
	default:
		return ""
	}
}

// Document 渲染报告。兜底文档按块渲染原文
func (r *Renderer) Document(doc report.Document) string {
	if doc.IsFallback() {
		return r.muted.Render("(raw output, JSON report unavailable)") + "\n" + r.Blocks(doc.Blocks)
	}
	if len(doc.Sections) == 0 {
		return r.muted.Render("(empty report)")
	}

	parts := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		parts = append(parts, r.section(s))
	}
	return strings.Join(parts, "\n\n")
}

func (r *Renderer) section(s report.Section) string {
	var sb strings.Builder
	sb.WriteString(r.header.Render(s.Title))
	sb.WriteString("\n")

	for _, p := range s.Points {
		fmt.Fprintf(&sb, "  • %s\n", p)
	}
	for _, ev := range s.Evidence {
		tag := ev.SourceName
		if ev.Timestamp != "" {
			tag = ev.Timestamp + " | " + ev.SourceName
		}
		fmt.Fprintf(&sb, "  %s %s\n", r.muted.Render("["+tag+"]"), ev.Title)
	}
	if s.RatingValue != "" {
		if tier, ok := s.ConfidenceTier(); ok {
			fmt.Fprintf(&sb, "  %s Confidence %s\n", s.RatingValue, Meter(tier.Percent()))
		} else {
			fmt.Fprintf(&sb, "  %s\n", s.RatingValue)
		}
	}
	if s.RatingReason != "" {
		fmt.Fprintf(&sb, "  %s\n", r.muted.Render(s.RatingReason))
	}
	if s.NarrativeText != "" {
		sb.WriteString(r.summary.Render("\"" + s.NarrativeText + "\""))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Meter 渲染强度条，>80 绿色，>50 黄色，其余红色
func Meter(score int) string {
	score = block.ClampScore(score)
	filled := score * meterWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled)
	return lipgloss.NewStyle().Foreground(MeterColor(score)).Render(bar) + fmt.Sprintf(" %d%%", score)
}

// MeterColor 强度条颜色
func MeterColor(score int) lipgloss.Color {
	switch {
	case score > 80:
		return High
	case score > 50:
		return Medium
	default:
		return Low
	}
}

package block

import (
	"strconv"
	"strings"
)

// Kind 块类型标签
type Kind string

const (
	KindHeadline         Kind = "headline"
	KindSectionHeader    Kind = "section_header"
	KindAlert            Kind = "alert"
	KindExecutiveSummary Kind = "executive_summary"
	KindReliabilityMeter Kind = "reliability_meter"
	KindBullet           Kind = "bullet"
	KindLettered         Kind = "lettered"
	KindParagraph        Kind = "paragraph"
	KindBlank            Kind = "blank"
)

// Icon 章节标题图标，只是一个枚举值，具体图形由渲染方决定
type Icon string

const (
	IconGlobe       Icon = "Globe"
	IconCpu         Icon = "Cpu"
	IconActivity    Icon = "Activity"
	IconBarChart3   Icon = "BarChart3"
	IconShieldAlert Icon = "ShieldAlert"
)

// Block 一行文本分类后的结果
type Block interface {
	Kind() Kind
	sealed()
}

// Headline 报告总标题
type Headline struct {
	Title string
}

// SectionHeader 章节标题
type SectionHeader struct {
	Title string
	Icon  Icon
}

// Alert 高影响告警
type Alert struct {
	Text string
}

// ExecutiveSummary CEO 摘要
type ExecutiveSummary struct {
	Text string
}

// ReliabilityMeter 信号强度，Score 恒在 [0,100]
type ReliabilityMeter struct {
	Score int
}

// BulletItem 列表项
type BulletItem struct {
	Text string
}

// LetteredItem (A)/(B)/(C) 编号项
type LetteredItem struct {
	Label string
	Text  string
}

// Paragraph 普通段落
type Paragraph struct {
	Text string
}

// Blank 空行
type Blank struct{}

func (Headline) Kind() Kind         { return KindHeadline }
func (SectionHeader) Kind() Kind    { return KindSectionHeader }
func (Alert) Kind() Kind            { return KindAlert }
func (ExecutiveSummary) Kind() Kind { return KindExecutiveSummary }
func (ReliabilityMeter) Kind() Kind { return KindReliabilityMeter }
func (BulletItem) Kind() Kind       { return KindBullet }
func (LetteredItem) Kind() Kind     { return KindLettered }
func (Paragraph) Kind() Kind        { return KindParagraph }
func (Blank) Kind() Kind            { return KindBlank }

func (Headline) sealed()         {}
func (SectionHeader) sealed()    {}
func (Alert) sealed()            {}
func (ExecutiveSummary) sealed() {}
func (ReliabilityMeter) sealed() {}
func (BulletItem) sealed()       {}
func (LetteredItem) sealed()     {}
func (Paragraph) sealed()        {}
func (Blank) sealed()            {}

// View 块的扁平 JSON 形式，供 HTTP 接口和 CLI 输出使用
type View struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title,omitempty"`
	Icon  Icon   `json:"icon,omitempty"`
	Text  string `json:"text,omitempty"`
	Label string `json:"label,omitempty"`
	Score *int   `json:"score,omitempty"`
}

// Encode 将块转换为 View
func Encode(b Block) View {
	switch v := b.(type) {
	case Headline:
		return View{Kind: KindHeadline, Title: v.Title}
	case SectionHeader:
		return View{Kind: KindSectionHeader, Title: v.Title, Icon: v.Icon}
	case Alert:
		return View{Kind: KindAlert, Text: v.Text}
	case ExecutiveSummary:
		return View{Kind: KindExecutiveSummary, Text: v.Text}
	case ReliabilityMeter:
		score := v.Score
		return View{Kind: KindReliabilityMeter, Score: &score}
	case BulletItem:
		return View{Kind: KindBullet, Text: v.Text}
	case LetteredItem:
		return View{Kind: KindLettered, Label: v.Label, Text: v.Text}
	case Paragraph:
		return View{Kind: KindParagraph, Text: v.Text}
	default:
		return View{Kind: KindBlank}
	}
}

// EncodeAll 批量转换，空输入返回空切片而不是 nil
func EncodeAll(blocks []Block) []View {
	views := make([]View, 0, len(blocks))
	for _, b := range blocks {
		views = append(views, Encode(b))
	}
	return views
}

// PlainText 去掉标记后的可读文本
func PlainText(b Block) string {
	switch v := b.(type) {
	case Headline:
		return v.Title
	case SectionHeader:
		return v.Title
	case Alert:
		return v.Text
	case ExecutiveSummary:
		return v.Text
	case ReliabilityMeter:
		return strconv.Itoa(v.Score) + "%"
	case BulletItem:
		return v.Text
	case LetteredItem:
		return strings.TrimSpace(v.Label + " " + v.Text)
	case Paragraph:
		return v.Text
	default:
		return ""
	}
}

package block

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// 哨兵标记，与上游提示词约定一致，不能改动
const (
	HeadlineMarker      = "🟦"
	AlertMarker         = "🚨"
	AlertPrefix         = "🚨 High Impact Alert:"
	ExecutiveSummaryTag = "CEO Summary:"
	SignalStrengthTag   = "Signal Strength:"
	BulletMarker        = "-"
)

// LetterLabels 编号项标签
var LetterLabels = []string{"(A)", "(B)", "(C)"}

// headerIcons 章节标记到图标的静态表，顺序即匹配顺序
var headerIcons = []struct {
	marker string
	icon   Icon
}{
	{"📰", IconGlobe},
	{"🔁", IconActivity},
	{"🧠", IconCpu},
	{"🎯", IconBarChart3},
	{"🔮", IconShieldAlert},
	{"📌", IconShieldAlert},
	{"🧾", IconShieldAlert},
}

var digitsRe = regexp.MustCompile(`\d+`)

// rule 一条分类规则，trimmed 为去掉首尾空白后的行
type rule struct {
	name  string
	apply func(line, trimmed string) (Block, bool)
}

// rules 按优先级排列，第一条命中的规则生效
var rules = []rule{
	{"blank", classifyBlank},
	{"headline", classifyHeadline},
	{"section_header", classifySectionHeader},
	{"alert", classifyAlert},
	{"executive_summary", classifyExecutiveSummary},
	{"reliability_meter", classifyReliabilityMeter},
	{"bullet", classifyBullet},
	{"lettered", classifyLettered},
	{"paragraph", classifyParagraph},
}

// RuleNames 返回规则名，顺序即优先级
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// ClassifyLines 将多行文本逐行分类。
// 输出长度等于按 "\n" 切分后的行数，空字符串视为零行。
func ClassifyLines(text string) []Block {
	if text == "" {
		return []Block{}
	}
	lines := strings.Split(text, "\n")
	blocks := make([]Block, len(lines))
	for i, line := range lines {
		blocks[i] = Classify(line)
	}
	return blocks
}

// Classify 对单行文本分类
func Classify(line string) Block {
	trimmed := strings.TrimSpace(line)
	for _, r := range rules {
		if b, ok := r.apply(line, trimmed); ok {
			return b
		}
	}
	return Paragraph{Text: trimmed}
}

func classifyBlank(_, trimmed string) (Block, bool) {
	if trimmed != "" {
		return nil, false
	}
	return Blank{}, true
}

func classifyHeadline(line, _ string) (Block, bool) {
	if !strings.HasPrefix(line, HeadlineMarker) {
		return nil, false
	}
	return Headline{Title: strings.TrimSpace(strings.TrimPrefix(line, HeadlineMarker))}, true
}

func classifySectionHeader(line, _ string) (Block, bool) {
	for _, h := range headerIcons {
		if !strings.HasPrefix(line, h.marker) {
			continue
		}
		// 标记后约定跟一个分隔字符，无论是什么都丢弃
		rest := line[len(h.marker):]
		_, size := utf8.DecodeRuneInString(rest)
		return SectionHeader{Title: strings.TrimSpace(rest[size:]), Icon: h.icon}, true
	}
	return nil, false
}

// IconFor 返回章节标记对应的图标
func IconFor(marker string) (Icon, bool) {
	for _, h := range headerIcons {
		if h.marker == marker {
			return h.icon, true
		}
	}
	return "", false
}

func classifyAlert(line, _ string) (Block, bool) {
	if !strings.HasPrefix(line, AlertMarker) {
		return nil, false
	}
	var text string
	if strings.HasPrefix(line, AlertPrefix) {
		text = strings.TrimPrefix(line, AlertPrefix)
	} else {
		text = strings.TrimPrefix(line, AlertMarker)
	}
	return Alert{Text: strings.TrimSpace(text)}, true
}

func classifyExecutiveSummary(line, _ string) (Block, bool) {
	if !strings.HasPrefix(line, ExecutiveSummaryTag) {
		return nil, false
	}
	return ExecutiveSummary{Text: strings.TrimSpace(strings.TrimPrefix(line, ExecutiveSummaryTag))}, true
}

func classifyReliabilityMeter(line, _ string) (Block, bool) {
	if !strings.HasPrefix(line, SignalStrengthTag) {
		return nil, false
	}
	return ReliabilityMeter{Score: ParseScore(line)}, true
}

// ScoreDigits 返回文本中第一段十进制数字，未找到时为空
func ScoreDigits(s string) string {
	return digitsRe.FindString(s)
}

// ParseScore 取文本中第一段十进制数字并限制到 [0,100]，找不到时为 0
func ParseScore(s string) int {
	m := ScoreDigits(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// 只可能是溢出
		return 100
	}
	return ClampScore(n)
}

// ClampScore 限制分数到 [0,100]
func ClampScore(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	default:
		return n
	}
}

func classifyBullet(_, trimmed string) (Block, bool) {
	if !strings.HasPrefix(trimmed, BulletMarker) {
		return nil, false
	}
	return BulletItem{Text: strings.TrimSpace(strings.TrimPrefix(trimmed, BulletMarker))}, true
}

func classifyLettered(_, trimmed string) (Block, bool) {
	for _, label := range LetterLabels {
		if strings.HasPrefix(trimmed, label) {
			return LetteredItem{Label: label, Text: strings.TrimSpace(trimmed[len(label):])}, true
		}
	}
	return nil, false
}

func classifyParagraph(_, trimmed string) (Block, bool) {
	return Paragraph{Text: trimmed}, true
}

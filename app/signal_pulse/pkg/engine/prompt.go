package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/search"
)

// markupInstruction 行标记格式的系统提示词，各行首标记与 block 包的哨兵一致
const markupInstruction = `You are SiliconPulse, a real-time strategic intelligence assistant for the Big Tech and semiconductor ecosystem.
Interpret the live updates below; do not summarize general knowledge.

STRICT RULES
1. Never answer a "latest update" question from general knowledge.
2. Rely only on the LIVE UPDATES CONTEXT section.
3. If the context conflicts, say "developing story" instead of guessing.
4. Every answer must include all sections below, in this order, one item per line.

🟦 SiliconPulse Live Intelligence Report
Query: {user_query}

📰 1) Live Signal (Latest Evidence)
- [TIMESTAMP | SOURCE] most relevant updates

🔁 2) What Changed? (Before vs After)
- Before: ...
- After: ...

🧠 3) Impact Reasoning
(A) Business impact: ...
(B) Tech roadmap impact: ...
(C) Supply chain impact: ...

🎯 4) What This Means for Competitors
- ...

🔮 5) Strategic Outlook (next 7 days)
- ...

📌 6) Confidence Meter
- [Confirmed | Developing | Uncertain]

🧾 7) Source Transparency
Sources: ...

Signal Strength: {0-100}

🚨 High Impact Alert: (only for billion-dollar events or bans)

CEO Summary: {one line boardroom briefing}`

// jsonInstruction JSON 信封格式的系统提示词
const jsonInstruction = `You are SiliconPulse, a real-time strategic intelligence assistant for the Big Tech and semiconductor ecosystem.
Rely only on the LIVE UPDATES CONTEXT section. If the context conflicts, say "developing story".

Return ONLY a JSON object, no markdown, in exactly this shape:
{
  "sections": [
    {"id": "evidence", "title": "Live Signal", "points": ["..."], "evidence": [{"source": "...", "timestamp": "...", "title": "..."}]},
    {"id": "change", "title": "What Changed", "points": ["Before: ...", "After: ..."]},
    {"id": "impact", "title": "Impact Reasoning", "points": ["(A) Business impact: ...", "(B) Tech roadmap impact: ...", "(C) Supply chain impact: ..."]},
    {"id": "competitors", "title": "What This Means for Competitors", "points": ["..."]},
    {"id": "outlook", "title": "Strategic Outlook (next 7 days)", "points": ["..."]},
    {"id": "confidence", "title": "Confidence", "value": "High|Medium|Low", "reason": "..."},
    {"id": "ceo", "title": "CEO Summary", "text": "..."}
  ]
}`

const maxContextChars = 1200

// buildMessages 组装系统提示词与用户消息
func buildMessages(format Format, query string, evidence []search.Result, now time.Time) []*schema.Message {
	instruction := jsonInstruction
	if format == FormatMarkup {
		instruction = markupInstruction
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Current time: %s\n\n", now.Format(time.RFC3339))
	sb.WriteString(buildContext(evidence))
	fmt.Fprintf(&sb, "\nUser query: %s\n", query)

	return []*schema.Message{
		{Role: schema.System, Content: instruction},
		{Role: schema.User, Content: sb.String()},
	}
}

// buildContext 将检索结果整理为 LIVE UPDATES CONTEXT
func buildContext(evidence []search.Result) string {
	var sb strings.Builder
	sb.WriteString("LIVE UPDATES CONTEXT:\n")
	if len(evidence) == 0 {
		sb.WriteString("(no live updates available, answer with \"developing story\" where needed)\n")
		return sb.String()
	}
	for i, ev := range evidence {
		date := ev.PublishedDate
		if date == "" {
			date = "unknown time"
		}
		fmt.Fprintf(&sb, "[%d] [%s | %s] %s\n", i+1, date, ev.SourceName(), ev.Title)
		if content := strings.TrimSpace(ev.Content); content != "" {
			sb.WriteString(truncate(content, maxContextChars))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// truncate 按 rune 截断，避免切坏 UTF-8
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

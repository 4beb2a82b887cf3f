package render

import (
	"strings"
	"testing"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/report"
)

func TestBlocks(t *testing.T) {
	r := New(0)
	out := r.Blocks(block.ClassifyLines("🟦 Pulse Report\n📰 1) Live Signal\n- chip ban\n(A) Business impact: big\n🚨 High Impact Alert: export ban\nCEO Summary: act now\nSignal Strength: 73"))

	for _, want := range []string{"Pulse Report", "1) Live Signal", "• chip ban", "(A)", "Business impact: big", "! export ban", "act now", "73%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBlocks_Empty(t *testing.T) {
	if got := New(0).Blocks(nil); got != "" {
		t.Errorf("Blocks(nil) = %q, want empty", got)
	}
}

func TestMeter(t *testing.T) {
	cases := []struct {
		score  int
		filled int
		label  string
	}{
		{0, 0, " 0%"},
		{50, 10, " 50%"},
		{100, 20, " 100%"},
		{150, 20, " 100%"},
	}
	for _, tc := range cases {
		got := Meter(tc.score)
		if n := strings.Count(got, "█"); n != tc.filled {
			t.Errorf("Meter(%d) filled = %d, want %d", tc.score, n, tc.filled)
		}
		if !strings.HasSuffix(got, tc.label) {
			t.Errorf("Meter(%d) = %q, want suffix %q", tc.score, got, tc.label)
		}
	}
}

func TestMeterColor(t *testing.T) {
	cases := map[int]string{81: string(High), 80: string(Medium), 51: string(Medium), 50: string(Low), 0: string(Low)}
	for score, want := range cases {
		if got := string(MeterColor(score)); got != want {
			t.Errorf("MeterColor(%d) = %s, want %s", score, got, want)
		}
	}
}

func TestDocument(t *testing.T) {
	doc := report.Parse(`{"sections":[
		{"id":"evidence","title":"Live Signal","evidence":[{"source":"Reuters","timestamp":"2025-01-09","title":"Rules tightened"}]},
		{"id":"confidence","title":"Confidence","value":"High","reason":"Multiple sources"},
		{"id":"ceo","title":"CEO Summary","text":"Hold capex."}
	]}`)
	out := New(60).Document(doc)

	for _, want := range []string{"Live Signal", "[2025-01-09 | Reuters]", "Rules tightened", "High Confidence", "85%", "Multiple sources", `"Hold capex."`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDocument_Fallback(t *testing.T) {
	out := New(0).Document(report.Parse("🟦 Pulse\nplain text"))
	if !strings.Contains(out, "raw output") || !strings.Contains(out, "plain text") {
		t.Errorf("unexpected fallback output:\n%s", out)
	}
}

func TestDocument_Empty(t *testing.T) {
	if out := New(0).Document(report.Parse("")); !strings.Contains(out, "empty report") {
		t.Errorf("Document(empty) = %q", out)
	}
}

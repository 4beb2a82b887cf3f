package block

import (
	"strings"
	"testing"
)

// FuzzClassifyLines 任意输入都不能 panic，且行数守恒、分数在范围内。
// Run with: go test -fuzz=FuzzClassifyLines -fuzztime=30s ./app/signal_pulse/pkg/block/...
func FuzzClassifyLines(f *testing.F) {
	seeds := []string{
		"",
		"\n",
		"🟦",
		"📰",
		"🚨",
		"🚨 High Impact Alert:",
		"CEO Summary:",
		"Signal Strength:",
		"Signal Strength: 1000000000000000000000000",
		"-",
		"(A)",
		"(",
		"\xf0\x9f",
		"\xff\xfe\xfd",
		"🟦 Report\n📰 Live\n- a\n(B) b\nSignal Strength: 50\nCEO Summary: ok",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		blocks := ClassifyLines(text)

		want := 0
		if text != "" {
			want = strings.Count(text, "\n") + 1
		}
		if len(blocks) != want {
			t.Fatalf("len(ClassifyLines()) = %d, want %d", len(blocks), want)
		}

		for _, b := range blocks {
			if b == nil {
				t.Fatal("nil block")
			}
			if m, ok := b.(ReliabilityMeter); ok && (m.Score < 0 || m.Score > 100) {
				t.Fatalf("score out of range: %d", m.Score)
			}
		}
	})
}

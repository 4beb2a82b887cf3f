package block

import (
	"encoding/json"
	"testing"
)

func TestEncode(t *testing.T) {
	data, err := json.Marshal(EncodeAll([]Block{
		SectionHeader{Title: "Live Signal", Icon: IconGlobe},
		ReliabilityMeter{Score: 0},
		LetteredItem{Label: "(B)", Text: "roadmap"},
		Blank{},
	}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `[{"kind":"section_header","title":"Live Signal","icon":"Globe"},` +
		`{"kind":"reliability_meter","score":0},` +
		`{"kind":"lettered","text":"roadmap","label":"(B)"},` +
		`{"kind":"blank"}]`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestEncodeAll_Empty(t *testing.T) {
	views := EncodeAll(nil)
	if views == nil || len(views) != 0 {
		t.Errorf("EncodeAll(nil) = %#v, want empty slice", views)
	}
}

func TestPlainText(t *testing.T) {
	cases := []struct {
		b    Block
		want string
	}{
		{Headline{Title: "Report"}, "Report"},
		{ReliabilityMeter{Score: 73}, "73%"},
		{LetteredItem{Label: "(A)", Text: "Business"}, "(A) Business"},
		{LetteredItem{Label: "(A)"}, "(A)"},
		{Blank{}, ""},
	}
	for _, tc := range cases {
		if got := PlainText(tc.b); got != tc.want {
			t.Errorf("PlainText(%#v) = %q, want %q", tc.b, got, tc.want)
		}
	}
}

package report

import "testing"

func TestSection_ConfidenceTier(t *testing.T) {
	cases := []struct {
		name    string
		section Section
		want    Tier
		ok      bool
		percent int
	}{
		{"high", Section{ID: SectionConfidence, RatingValue: "High"}, TierHigh, true, 85},
		{"medium upper", Section{ID: SectionConfidence, RatingValue: "MEDIUM"}, TierMedium, true, 55},
		{"low padded", Section{ID: SectionConfidence, RatingValue: " low "}, TierLow, true, 25},
		{"developing", Section{ID: SectionConfidence, RatingValue: "Developing"}, "", false, 0},
		{"empty", Section{ID: SectionConfidence}, "", false, 0},
		{"other section", Section{ID: SectionCEO, RatingValue: "high"}, "", false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.section.ConfidenceTier()
			if got != tc.want || ok != tc.ok {
				t.Errorf("ConfidenceTier() = %q, %v, want %q, %v", got, ok, tc.want, tc.ok)
			}
			if p := got.Percent(); p != tc.percent {
				t.Errorf("Percent() = %d, want %d", p, tc.percent)
			}
		})
	}
}

func TestSectionID_Known(t *testing.T) {
	for _, id := range []SectionID{SectionEvidence, SectionChange, SectionImpact, SectionCompetitors, SectionOutlook, SectionConfidence, SectionCEO, SectionUnknown} {
		if !id.Known() {
			t.Errorf("%q.Known() = false", id)
		}
	}
	if SectionID("Evidence").Known() {
		t.Errorf("ids are case sensitive")
	}
}

func TestDocument_Text(t *testing.T) {
	doc := Document{
		Origin: OriginJSON,
		Sections: []Section{
			{ID: SectionEvidence, Title: "Live Evidence", Points: []string{"a"}, Evidence: []EvidenceChip{
				{SourceName: "Reuters", Timestamp: "09:00", Title: "capex"},
				{SourceName: "FT", Title: "fabs"},
			}},
			{ID: SectionConfidence, Title: "Confidence", RatingValue: "High", RatingReason: "confirmed"},
			{ID: SectionCEO, Title: "CEO", NarrativeText: "Hold."},
		},
	}

	want := "Live Evidence\n- a\n[09:00 | Reuters] capex\n[FT] fabs\n\n" +
		"Confidence\nHigh Confidence\nconfirmed\n\n" +
		"CEO\n\"Hold.\""
	if got := doc.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestIssue_String(t *testing.T) {
	if got := (Issue{Kind: IssueEmptyInput}).String(); got != "EmptyInput" {
		t.Errorf("String() = %q", got)
	}
	if got := (Issue{Kind: IssueMalformedJSON, Detail: "eof"}).String(); got != "MalformedJSON: eof" {
		t.Errorf("String() = %q", got)
	}
}

func TestDocument_Snapshot(t *testing.T) {
	empty := Parse("").Snapshot()
	if empty.Sections == nil || empty.Blocks == nil || empty.Issues == nil {
		t.Errorf("Snapshot() has nil slices: %+v", empty)
	}
	if empty.Origin != OriginEmpty || len(empty.Issues) != 1 {
		t.Errorf("Snapshot() = %+v", empty)
	}

	raw := "🟦 Pulse\nSignal Strength: 40"
	fb := Parse(raw).Snapshot()
	if fb.Origin != OriginFallback || fb.Text != raw || len(fb.Blocks) != 2 {
		t.Errorf("fallback Snapshot() = %+v", fb)
	}
	if fb.Blocks[1].Score == nil || *fb.Blocks[1].Score != 40 {
		t.Errorf("meter view = %+v", fb.Blocks[1])
	}
}

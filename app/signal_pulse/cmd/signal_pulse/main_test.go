package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/report"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBlocksCmd(t *testing.T) {
	out, err := run(t, "🟦 Pulse\nSignal Strength: 73", "blocks")
	if err != nil {
		t.Fatalf("blocks error = %v", err)
	}

	var got struct {
		Blocks []block.View `json:"blocks"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(got.Blocks) != 2 || got.Blocks[0].Kind != block.KindHeadline || got.Blocks[1].Kind != block.KindReliabilityMeter {
		t.Errorf("blocks = %+v", got.Blocks)
	}
}

func TestBlocksCmd_Preview(t *testing.T) {
	out, err := run(t, "- first\n- second", "blocks", "--preview")
	if err != nil {
		t.Fatalf("blocks --preview error = %v", err)
	}
	if !strings.Contains(out, "• first") || !strings.Contains(out, "• second") {
		t.Errorf("unexpected preview:\n%s", out)
	}
}

func TestReportCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reply.json")
	body := "```json\n{\"sections\":[{\"id\":\"ceo\",\"title\":\"CEO Summary\",\"text\":\"Hold.\"}]}\n```"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "report", path)
	if err != nil {
		t.Fatalf("report error = %v", err)
	}
	var got report.Snapshot
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if got.Origin != report.OriginJSON || len(got.Sections) != 1 || got.Sections[0].NarrativeText != "Hold." {
		t.Errorf("snapshot = %+v", got)
	}
}

func TestReportCmd_Fallback(t *testing.T) {
	out, err := run(t, "not json at all", "report")
	if err != nil {
		t.Fatalf("report error = %v", err)
	}
	var got report.Snapshot
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if got.Origin != report.OriginFallback || got.Text != "not json at all" {
		t.Errorf("snapshot = %+v", got)
	}
}

func TestReportCmd_MissingFile(t *testing.T) {
	if _, err := run(t, "", "report", filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("report on a missing file error = nil")
	}
}

func TestQueryCmd_BadConfig(t *testing.T) {
	if _, err := run(t, "", "query", "chips", "--conf", filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("query with a missing config error = nil")
	}
}

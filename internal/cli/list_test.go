package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fleetYAML = `items:
  - id: web-a1
    status: online
    cpu: 12
    memory: 40
  - id: db-b2
    status: Offline
  - id: web-a3
    status: online
    selected: true
order_preference: [web-a3, db-b2, web-a1]
`

func writeFleet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	if err := os.WriteFile(path, []byte(fleetYAML), 0o644); err != nil {
		t.Fatalf("write fleet: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep the developer's real config out of the test and fail fast.
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("max_attempts = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	args = append(args, "--config", cfgPath)

	var out bytes.Buffer
	cmd := NewRootCmd(context.Background())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList_TableOutput(t *testing.T) {
	out, err := execute(t, "list", "--data", writeFleet(t), "--search", "web")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "web-a3") || !strings.HasPrefix(lines[2], "web-a1") {
		t.Fatalf("rows not in preference order:\n%s", out)
	}
	if lines[4] != "filtering on host web, status  (2 of 3 hosts)" {
		t.Fatalf("live region line = %q", lines[4])
	}
}

func TestList_JSONOutput(t *testing.T) {
	out, err := execute(t, "list", "--data", writeFleet(t), "--status", "ONLINE", "--json")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	var got struct {
		Status     string `json:"status"`
		LiveRegion string `json:"live_region"`
		Total      int    `json:"total"`
		Selected   int    `json:"selected"`
		Rows       []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"rows"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.Status != "online" || got.LiveRegion != "filtering on host , status online" {
		t.Fatalf("status = %q, live region = %q", got.Status, got.LiveRegion)
	}
	if got.Total != 3 || got.Selected != 1 {
		t.Fatalf("total = %d, selected = %d", got.Total, got.Selected)
	}
	if len(got.Rows) != 2 || got.Rows[0].ID != "web-a3" || got.Rows[1].ID != "web-a1" {
		t.Fatalf("rows = %+v", got.Rows)
	}
}

func TestList_SearchIsCaseSensitive(t *testing.T) {
	out, err := execute(t, "list", "--data", writeFleet(t), "--search", "WEB", "--json")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, `"rows": []`) {
		t.Fatalf("expected no rows:\n%s", out)
	}
}

func TestList_DemoFleet(t *testing.T) {
	out, err := execute(t, "list", "--demo", "--demo-rows", "8", "--status", "online", "--json")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	var got struct {
		Source string `json:"source"`
		Total  int    `json:"total"`
		Rows   []struct {
			Status string `json:"status"`
		} `json:"rows"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.Source != "demo" || got.Total != 8 {
		t.Fatalf("source = %q, total = %d", got.Source, got.Total)
	}
	for _, r := range got.Rows {
		if r.Status != "online" {
			t.Fatalf("row status = %q, want online", r.Status)
		}
	}
}

func TestList_UnknownStatus(t *testing.T) {
	_, err := execute(t, "list", "--demo", "--status", "rebooting")
	if err == nil || !strings.Contains(err.Error(), `unknown status "rebooting"`) {
		t.Fatalf("error = %v, want unknown status", err)
	}
}

func TestList_MissingDataFile(t *testing.T) {
	_, err := execute(t, "list", "--data", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "read data file") {
		t.Fatalf("error = %v, want read data file error", err)
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	if _, err := execute(t, "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

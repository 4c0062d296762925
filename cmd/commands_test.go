package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeysCommand_ListsAll(t *testing.T) {
	out, err := execute(t, "", "keys")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	var res struct {
		Count int `json:"count"`
		Keys  []struct {
			Desc string `json:"desc"`
		} `json:"keys"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if res.Count != len(res.Keys) {
		t.Errorf("count %d does not match %d keys", res.Count, len(res.Keys))
	}
	if res.Count < 18 {
		t.Errorf("expected at least the 18 group bindings, got %d", res.Count)
	}
}

func TestKeysCommand_Chord(t *testing.T) {
	out, err := execute(t, "", "keys", "mod4+shift+5")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	var key struct {
		Desc string `json:"desc"`
	}
	if err := json.Unmarshal([]byte(out), &key); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if key.Desc != "Switch to & move focused window to group 5" {
		t.Errorf("unexpected desc %q", key.Desc)
	}
}

func TestKeysCommand_GroupFilter(t *testing.T) {
	out, err := execute(t, "", "keys", "--group", "3")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	var res struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Count != 2 {
		t.Errorf("expected 2 bindings for group 3, got %d", res.Count)
	}
}

func TestKeysCommand_UnboundChord(t *testing.T) {
	_, err := execute(t, "", "keys", "mod1+control+F12")
	if err == nil || !strings.Contains(err.Error(), "no binding") {
		t.Errorf("expected no binding error, got %v", err)
	}
}

func TestCheckCommand_DefaultConfigPasses(t *testing.T) {
	out, err := execute(t, "", "check")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	var res struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.OK {
		t.Errorf("default configuration should pass: %s", out)
	}
}

func TestCheckCommand_BadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	if err := os.WriteFile(path, []byte("[commands]\nterminal = [\"\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "check", "--overrides", path)
	if !errors.Is(err, ErrCheckFailed) {
		t.Fatalf("expected ErrCheckFailed, got %v\n%s", err, out)
	}
	if !strings.Contains(out, `"ok":false`) {
		t.Errorf("expected a failing report, got %s", out)
	}
}

func TestSimulateCommand_SwallowAndRestore(t *testing.T) {
	steps := `
- proc: { pid: 50, ppid: 1, name: alacritty }
- proc: { pid: 100, ppid: 50, name: mpv }
- window: { id: 1, pid: 50, class: Alacritty }
- open: { id: 2, pid: 100, class: mpv }
- close: { id: 2 }
`
	out, err := execute(t, steps, "simulate")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	var res struct {
		OK    bool `json:"ok"`
		Steps []struct {
			Action    string `json:"action"`
			Swallowed []int  `json:"swallowed"`
			Restored  []int  `json:"restored"`
		} `json:"steps"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if !res.OK || len(res.Steps) != 5 {
		t.Fatalf("unexpected result: %s", out)
	}
	if got := res.Steps[3].Swallowed; len(got) != 1 || got[0] != 1 {
		t.Errorf("open should swallow window 1, got %v", got)
	}
	if got := res.Steps[4].Restored; len(got) != 1 || got[0] != 1 {
		t.Errorf("close should restore window 1, got %v", got)
	}
}

func TestSimulateCommand_EmptyInput(t *testing.T) {
	if _, err := execute(t, "", "simulate"); err == nil {
		t.Error("expected an error for empty input")
	}
}

func TestSpawnCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	if err := os.WriteFile(path, []byte("[commands]\nterminal = [\"true\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		started bool
	}{
		{"dry run", []string{"spawn", "mod4+Return", "--dry-run", "--overrides", path}, false},
		{"start", []string{"spawn", "mod4+Return", "--overrides", path}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("spawn: %v", err)
			}
			var res SpawnResult
			if err := json.Unmarshal([]byte(out), &res); err != nil {
				t.Fatalf("decode: %v\n%s", err, out)
			}
			if len(res.Argv) != 1 || res.Argv[0] != "true" {
				t.Errorf("argv: got %v", res.Argv)
			}
			if res.Started != tt.started {
				t.Errorf("started: got %v, want %v", res.Started, tt.started)
			}
		})
	}
}

func TestSpawnCommand_NotASpawnBinding(t *testing.T) {
	_, err := execute(t, "", "spawn", "mod4+1")
	if err == nil || !strings.Contains(err.Error(), "not a spawn") {
		t.Errorf("expected not a spawn error, got %v", err)
	}
}

func TestBarCommand_RejectsNegativeTrayIcons(t *testing.T) {
	_, err := execute(t, "", "bar", "--tray-icons", "-1")
	if err == nil || !strings.Contains(err.Error(), "tray-icons") {
		t.Errorf("expected tray-icons error, got %v", err)
	}
}

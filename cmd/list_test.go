package cmd

import (
	"testing"

	"github.com/mj1618/tilerc/internal/config"
	"github.com/mj1618/tilerc/internal/model"
)

func TestListCommand_Flags(t *testing.T) {
	flags := listCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"pid", "int"},
		{"class", "string"},
		{"floating", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestListCommand_IsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "list" {
			return
		}
	}
	t.Error("list command not registered on root")
}

func sampleWindows() []model.Window {
	return []model.Window{
		{ID: 1, PID: 50, Class: []string{"Alacritty", "Alacritty"}, Title: "term"},
		{ID: 2, PID: 100, Class: []string{"mpv", "mpv"}, Title: "video.mkv"},
		{ID: 3, PID: 200, Class: []string{"pinentry", "Pinentry"}, Title: "pinentry"},
		{ID: 4, PID: 300, Class: []string{"thunar", "Thunar"}, Title: "File Operation Progress", Type: "dialog"},
	}
}

func TestFilterWindows(t *testing.T) {
	rules := config.FloatingLayout(config.DefaultTheme())

	tests := []struct {
		name     string
		pid      int
		class    string
		floating bool
		want     []int
	}{
		{"all", 0, "", false, []int{1, 2, 3, 4}},
		{"by pid", 100, "", false, []int{2}},
		{"by class any case", 0, "alacritty", false, []int{1}},
		{"by second class", 0, "Pinentry", false, []int{3}},
		{"floating", 0, "", true, []int{3, 4}},
		{"none", 999, "", false, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterWindows(sampleWindows(), tt.pid, tt.class, tt.floating, rules)
			if got == nil {
				t.Fatal("result should never be nil")
			}
			ids := make([]int, len(got))
			for i, w := range got {
				ids[i] = w.ID
			}
			if len(ids) != len(tt.want) {
				t.Fatalf("got ids %v, want %v", ids, tt.want)
			}
			for i := range ids {
				if ids[i] != tt.want[i] {
					t.Errorf("got ids %v, want %v", ids, tt.want)
					break
				}
			}
		})
	}
}

func TestFindWindow(t *testing.T) {
	windows := sampleWindows()
	if w := findWindow(windows, 0, 0, "VIDEO"); w == nil || w.ID != 2 {
		t.Errorf("title match: got %+v", w)
	}
	if w := findWindow(windows, 3, 0, ""); w == nil || w.ID != 3 {
		t.Errorf("id match: got %+v", w)
	}
	if w := findWindow(windows, 3, 50, ""); w != nil {
		t.Errorf("conflicting criteria should not match, got %+v", w)
	}
}

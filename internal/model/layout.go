package model

import "strings"

// Group is a named virtual desktop.
type Group struct {
	Name string `yaml:"name" json:"name"`
}

// LayoutStyle carries the margin and border styling shared by layouts.
type LayoutStyle struct {
	Margin            int    `yaml:"margin"              json:"margin"`
	BorderWidth       int    `yaml:"border_width"        json:"border_width"`
	BorderFocus       string `yaml:"border_focus"        json:"border_focus"`
	BorderNormal      string `yaml:"border_normal"       json:"border_normal"`
	BorderFocusStack  string `yaml:"border_focus_stack"  json:"border_focus_stack"`
	BorderNormalStack string `yaml:"border_normal_stack" json:"border_normal_stack"`
}

// Layout names a window arrangement algorithm implemented by the host.
type Layout struct {
	Name  string      `yaml:"name"  json:"name"`
	Style LayoutStyle `yaml:"style" json:"style"`
}

// Match is a floating rule predicate. Empty fields match anything; a Match
// with every field empty matches nothing.
type Match struct {
	WMClass string `yaml:"wm_class,omitempty" json:"wm_class,omitempty"`
	WMType  string `yaml:"wm_type,omitempty"  json:"wm_type,omitempty"`
	Title   string `yaml:"title,omitempty"    json:"title,omitempty"`

	// Set flags require the window property; false flags are ignored.
	FixedSize  bool `yaml:"fixed_size,omitempty"  json:"fixed_size,omitempty"`
	FixedRatio bool `yaml:"fixed_ratio,omitempty" json:"fixed_ratio,omitempty"`
	Transient  bool `yaml:"transient,omitempty"   json:"transient,omitempty"`
}

func (m Match) empty() bool {
	return m.WMClass == "" && m.WMType == "" && m.Title == "" &&
		!m.FixedSize && !m.FixedRatio && !m.Transient
}

// Matches reports whether w satisfies the rule. WMClass matches either
// WM_CLASS string exactly; WMType and Title match exactly.
func (m Match) Matches(w *Window) bool {
	if m.empty() {
		return false
	}
	if (m.FixedSize && !w.FixedSize) || (m.FixedRatio && !w.FixedRatio) || (m.Transient && !w.Transient) {
		return false
	}
	if m.WMType != "" && m.WMType != w.Type {
		return false
	}
	if m.WMClass != "" {
		found := false
		for _, c := range w.Class {
			if c == m.WMClass {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return m.Title == "" || m.Title == w.Title
}

// String renders the rule as "wm_class=ssh-askpass".
func (m Match) String() string {
	var parts []string
	if m.WMClass != "" {
		parts = append(parts, "wm_class="+m.WMClass)
	}
	if m.WMType != "" {
		parts = append(parts, "wm_type="+m.WMType)
	}
	if m.Title != "" {
		parts = append(parts, "title="+m.Title)
	}
	if m.FixedSize {
		parts = append(parts, "fixed_size")
	}
	if m.FixedRatio {
		parts = append(parts, "fixed_ratio")
	}
	if m.Transient {
		parts = append(parts, "transient")
	}
	return strings.Join(parts, ",")
}

// FloatingLayout is the layout applied to windows exempt from tiling.
type FloatingLayout struct {
	Rules        []Match `yaml:"float_rules"   json:"float_rules"`
	BorderWidth  int     `yaml:"border_width"  json:"border_width"`
	BorderFocus  string  `yaml:"border_focus"  json:"border_focus"`
	BorderNormal string  `yaml:"border_normal" json:"border_normal"`
}

// ShouldFloat reports whether any rule matches w.
func (f FloatingLayout) ShouldFloat(w *Window) bool {
	for _, r := range f.Rules {
		if r.Matches(w) {
			return true
		}
	}
	return false
}

// MouseKind distinguishes drag gestures from clicks.
type MouseKind string

const (
	MouseDrag  MouseKind = "drag"
	MouseClick MouseKind = "click"
)

// MouseBinding maps a pointer gesture to a window action.
type MouseBinding struct {
	Kind      MouseKind `yaml:"kind"            json:"kind"`
	Modifiers Modifier  `yaml:"mods"            json:"mods"`
	Button    string    `yaml:"button"          json:"button"`
	Action    Action    `yaml:"action"          json:"action"`
	Start     *Action   `yaml:"start,omitempty" json:"start,omitempty"`
}

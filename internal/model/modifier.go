package model

import (
	"fmt"
	"strings"
)

// Modifier is a set of X11 modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModControl
	ModMod1
	ModMod4
)

// modifierNames lists modifiers in their canonical rendering order.
var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModMod4, "mod4"},
	{ModMod1, "mod1"},
	{ModControl, "control"},
	{ModShift, "shift"},
}

// ModifierAliases maps the spellings accepted by ParseModifier to modifiers.
var ModifierAliases = map[string]Modifier{
	"mod4":    ModMod4,
	"super":   ModMod4,
	"win":     ModMod4,
	"mod1":    ModMod1,
	"alt":     ModMod1,
	"control": ModControl,
	"ctrl":    ModControl,
	"shift":   ModShift,
}

// Has reports whether m contains every modifier in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// String renders m as "mod4+shift". The empty set renders as "".
func (m Modifier) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// Names returns the modifier names in canonical order.
func (m Modifier) Names() []string {
	names := []string{}
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			names = append(names, n.name)
		}
	}
	return names
}

// MarshalText implements encoding.TextMarshaler so that YAML and JSON
// output shows "mod4+shift" instead of a bit mask.
func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modifier) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		*m = ModNone
		return nil
	}
	var out Modifier
	for _, p := range strings.Split(s, "+") {
		mod, err := ParseModifier(p)
		if err != nil {
			return err
		}
		out |= mod
	}
	*m = out
	return nil
}

// ParseModifier converts a single modifier name to a Modifier.
func ParseModifier(s string) (Modifier, error) {
	if mod, ok := ModifierAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return mod, nil
	}
	return ModNone, fmt.Errorf("unknown modifier: %q (expected mod4, mod1, control, or shift)", s)
}

// Mods combines modifiers, e.g. Mods(ModMod4, ModShift).
func Mods(mods ...Modifier) Modifier {
	var m Modifier
	for _, mod := range mods {
		m |= mod
	}
	return m
}

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Key binds a modifier set and key name to an action.
type Key struct {
	Modifiers Modifier `yaml:"mods"           json:"mods"`
	Name      string   `yaml:"key"            json:"key"`
	Action    Action   `yaml:"action"         json:"action"`
	Desc      string   `yaml:"desc,omitempty" json:"desc,omitempty"`
}

// Chord is the identity of a binding: two keys with equal chords collide.
type Chord struct {
	Modifiers Modifier
	Name      string
}

// Chord returns the binding's (modifier-set, key) identity.
func (k Key) Chord() Chord {
	return Chord{Modifiers: k.Modifiers, Name: k.Name}
}

// String renders the chord as "mod4+shift+Return".
func (c Chord) String() string {
	if c.Modifiers == ModNone {
		return c.Name
	}
	return c.Modifiers.String() + "+" + c.Name
}

// ErrEmptyChord is returned by ParseChord for blank input.
var ErrEmptyChord = errors.New("empty key chord")

// ParseChord parses "mod4+shift+5" into a Chord. Every part but the last
// must be a modifier; the last part is the key name and keeps its case, so
// "mod4+Return" and "mod4+return" are different chords.
func ParseChord(s string) (Chord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Chord{}, ErrEmptyChord
	}
	parts := strings.Split(s, "+")
	name := strings.TrimSpace(parts[len(parts)-1])
	if name == "" {
		return Chord{}, fmt.Errorf("invalid key chord %q: missing key name", s)
	}
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod, err := ParseModifier(p)
		if err != nil {
			return Chord{}, fmt.Errorf("invalid key chord %q: %w", s, err)
		}
		mods |= mod
	}
	return Chord{Modifiers: mods, Name: name}, nil
}

// FindKey returns the first binding for chord, or nil.
func FindKey(keys []Key, chord Chord) *Key {
	for i := range keys {
		if keys[i].Chord() == chord {
			return &keys[i]
		}
	}
	return nil
}

// DuplicateChords returns every chord bound more than once, in the order
// its second binding appears.
func DuplicateChords(keys []Key) []Chord {
	seen := make(map[Chord]int, len(keys))
	var dups []Chord
	for _, k := range keys {
		c := k.Chord()
		seen[c]++
		if seen[c] == 2 {
			dups = append(dups, c)
		}
	}
	return dups
}

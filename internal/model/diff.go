package model

import "fmt"

// ChangeType represents the kind of binding change detected.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// KeyChange represents a single difference between two key tables.
type KeyChange struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	Chord   string               `yaml:"chord"             json:"chord"`
	Desc    string               `yaml:"desc,omitempty"    json:"desc,omitempty"`
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // For changed: field diffs
}

// DiffKeys compares two key tables and returns the changes. Bindings are
// matched by chord; when a chord is bound more than once the first binding
// wins, the same as the host's lookup.
func DiffKeys(prev, curr []Key) []KeyChange {
	prevMap := firstByChord(prev)
	currMap := firstByChord(curr)

	var changes []KeyChange
	seen := make(map[Chord]bool, len(curr))

	for _, k := range curr {
		c := k.Chord()
		if seen[c] {
			continue
		}
		seen[c] = true
		old, existed := prevMap[c]
		if !existed {
			changes = append(changes, KeyChange{Type: ChangeAdded, Chord: c.String(), Desc: k.Desc})
			continue
		}
		if diffs := diffKey(old, k); len(diffs) > 0 {
			changes = append(changes, KeyChange{Type: ChangeChanged, Chord: c.String(), Desc: k.Desc, Changes: diffs})
		}
	}

	seen = make(map[Chord]bool, len(prev))
	for _, k := range prev {
		c := k.Chord()
		if seen[c] {
			continue
		}
		seen[c] = true
		if _, exists := currMap[c]; !exists {
			changes = append(changes, KeyChange{Type: ChangeRemoved, Chord: c.String(), Desc: k.Desc})
		}
	}

	return changes
}

// DiffConfigs compares the key tables of two configurations.
func DiffConfigs(prev, curr *Config) []KeyChange {
	if prev == nil || curr == nil {
		return nil
	}
	return DiffKeys(prev.Keys, curr.Keys)
}

func firstByChord(keys []Key) map[Chord]Key {
	m := make(map[Chord]Key, len(keys))
	for _, k := range keys {
		if _, ok := m[k.Chord()]; !ok {
			m[k.Chord()] = k
		}
	}
	return m
}

// diffKey compares two bindings for the same chord and returns changed fields.
func diffKey(prev, curr Key) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Desc != curr.Desc {
		diffs["desc"] = [2]string{prev.Desc, curr.Desc}
	}
	if p, c := prev.Action.String(), curr.Action.String(); p != c {
		diffs["action"] = [2]string{p, c}
	}
	if prev.Action.Kind != curr.Action.Kind {
		diffs["kind"] = [2]string{
			fmt.Sprintf("%v", prev.Action.Kind),
			fmt.Sprintf("%v", curr.Action.Kind),
		}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}

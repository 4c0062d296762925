package config

import (
	"errors"
	"fmt"

	"github.com/mj1618/tilerc/internal/model"
)

// Validate performs the load-time checks the host applies to a
// configuration. Every problem is reported; the result is nil when the
// configuration is usable.
func Validate(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("nil configuration")
	}
	var errs []error

	for _, c := range model.DuplicateChords(cfg.Keys) {
		errs = append(errs, fmt.Errorf("key %s is bound more than once", c))
	}
	for i, k := range cfg.Keys {
		if k.Name == "" {
			errs = append(errs, fmt.Errorf("key %d: empty key name", i))
		}
		if k.Action.Kind == "" {
			errs = append(errs, fmt.Errorf("key %s: no action", k.Chord()))
		}
		if k.Action.Kind == model.ActionSpawn && (len(k.Action.Args) == 0 || k.Action.Args[0] == "") {
			errs = append(errs, fmt.Errorf("key %s: spawn without a command", k.Chord()))
		}
	}

	groups := make(map[string]bool, len(cfg.Groups))
	for _, g := range cfg.Groups {
		if g.Name == "" {
			errs = append(errs, errors.New("group with empty name"))
		} else if groups[g.Name] {
			errs = append(errs, fmt.Errorf("group %q defined more than once", g.Name))
		}
		groups[g.Name] = true
	}
	for _, k := range cfg.Keys {
		if (k.Action.Kind == model.ActionGroup || k.Action.Kind == model.ActionToGroup) &&
			len(k.Action.Args) > 0 && !groups[k.Action.Args[0]] {
			errs = append(errs, fmt.Errorf("key %s: unknown group %q", k.Chord(), k.Action.Args[0]))
		}
	}

	if len(cfg.Layouts) == 0 {
		errs = append(errs, errors.New("no layouts"))
	}
	layouts := make(map[string]bool, len(cfg.Layouts))
	for _, l := range cfg.Layouts {
		if layouts[l.Name] {
			errs = append(errs, fmt.Errorf("layout %q defined more than once", l.Name))
		}
		layouts[l.Name] = true
	}

	for i, s := range cfg.Screens {
		if s.Top != nil && s.Top.Height <= 0 {
			errs = append(errs, fmt.Errorf("screen %d: bar height must be positive", i))
		}
	}

	return errors.Join(errs...)
}

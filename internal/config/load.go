package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mj1618/tilerc/internal/model"
	"github.com/pelletier/go-toml/v2"
)

// Overrides is the TOML file layout. Only launcher commands and colors can
// be overridden; bindings, groups and layouts are fixed in Go.
//
//	[commands]
//	terminal = ["alacritty"]
//
//	[theme]
//	border_focus = "#83c092"
type Overrides struct {
	Commands Commands `toml:"commands"`
	Theme    Theme    `toml:"theme"`
}

// ParseError reports a malformed overrides file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Default returns the configuration with no overrides applied.
func Default() *model.Config {
	return Build(DefaultCommands(), DefaultTheme())
}

// Build assembles the whole configuration from commands and a theme.
func Build(cmds Commands, theme Theme) *model.Config {
	groups := Groups()
	return &model.Config{
		Keys:     KeysWith(cmds, groups),
		Groups:   groups,
		Layouts:  Layouts(theme),
		Floating: FloatingLayout(theme),
		Screens:  Screens(theme),
		Mouse:    Mouse(),
		Options:  HostOptions(theme),
	}
}

// Load assembles the configuration, applying the overrides file at path.
// An empty path means OverridesPath(). A missing file is not an error.
func Load(path string) (*model.Config, error) {
	if path == "" {
		path = OverridesPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading overrides %s: %w", path, err)
	}
	o, err := ParseOverrides(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return Build(DefaultCommands().merge(o.Commands), DefaultTheme().merge(o.Theme)), nil
}

// ParseOverrides decodes an overrides document. Unknown keys are rejected
// so that typos do not silently fall back to defaults.
func ParseOverrides(r io.Reader) (Overrides, error) {
	var o Overrides
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&o); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Overrides{}, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return Overrides{}, err
	}
	return o, nil
}

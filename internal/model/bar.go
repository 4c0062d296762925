package model

// Widget is one display element of a bar. Options are passed to the host's
// widget constructor untouched.
type Widget struct {
	Kind    string         `yaml:"kind"              json:"kind"`
	Text    string         `yaml:"text,omitempty"    json:"text,omitempty"`
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// Option returns a widget option as a string, or "" if unset.
func (w Widget) Option(name string) string {
	if s, ok := w.Options[name].(string); ok {
		return s
	}
	return ""
}

// Bar is a status bar strip.
type Bar struct {
	Widgets    []Widget `yaml:"widgets"    json:"widgets"`
	Height     int      `yaml:"height"     json:"height"`
	Background string   `yaml:"background" json:"background"`
	Margin     [4]int   `yaml:"margin"     json:"margin"` // top, right, bottom, left
}

// Screen describes one physical output.
type Screen struct {
	Top           *Bar   `yaml:"top,omitempty"            json:"top,omitempty"`
	Wallpaper     string `yaml:"wallpaper,omitempty"      json:"wallpaper,omitempty"`
	WallpaperMode string `yaml:"wallpaper_mode,omitempty" json:"wallpaper_mode,omitempty"`
}

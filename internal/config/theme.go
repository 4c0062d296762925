package config

// Theme holds the colors used by layouts and the bar. Colors are "#rrggbb".
type Theme struct {
	BorderFocus   string `toml:"border_focus"`
	BorderNormal  string `toml:"border_normal"`
	Background    string `toml:"background"`
	Foreground    string `toml:"foreground"`
	ActiveTag     string `toml:"active_tag"`
	InactiveTag   string `toml:"inactive_tag"`
	Selected      string `toml:"selected"`
	SelectedText  string `toml:"selected_text"`
	Font          string `toml:"font"`
	FontSize      int    `toml:"font_size"`
	WidgetPadding int    `toml:"widget_padding"`
}

const (
	// margin is the gap between windows, and below the bar.
	margin      = 4
	borderWidth = 3
	barHeight   = 28
)

// DefaultTheme returns the stock green-on-dark palette.
func DefaultTheme() Theme {
	return Theme{
		BorderFocus:   "#a7c080",
		BorderNormal:  "#425047",
		Background:    "#232a2e",
		Foreground:    "#d3c6aa",
		ActiveTag:     "#4f585e",
		InactiveTag:   "#2d353b",
		Selected:      "#343f44",
		SelectedText:  "#e69875",
		Font:          "Jetbrains Mono",
		FontSize:      14,
		WidgetPadding: 5,
	}
}

func (t Theme) merge(o Theme) Theme {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&t.BorderFocus, o.BorderFocus)
	pick(&t.BorderNormal, o.BorderNormal)
	pick(&t.Background, o.Background)
	pick(&t.Foreground, o.Foreground)
	pick(&t.ActiveTag, o.ActiveTag)
	pick(&t.InactiveTag, o.InactiveTag)
	pick(&t.Selected, o.Selected)
	pick(&t.SelectedText, o.SelectedText)
	pick(&t.Font, o.Font)
	if o.FontSize > 0 {
		t.FontSize = o.FontSize
	}
	if o.WidgetPadding > 0 {
		t.WidgetPadding = o.WidgetPadding
	}
	return t
}

package config

import "github.com/mj1618/tilerc/internal/model"

// WidgetDefaults returns the font settings applied to every widget.
func WidgetDefaults(t Theme) model.WidgetDefaults {
	return model.WidgetDefaults{Font: t.Font, FontSize: t.FontSize, Padding: t.WidgetPadding}
}

func textBox(t Theme, text string) model.Widget {
	return model.Widget{Kind: "TextBox", Text: text, Options: map[string]any{"foreground": t.Foreground}}
}

func fg(t Theme) map[string]any {
	return map[string]any{"foreground": t.Foreground}
}

// Widgets returns the bar's widgets, left to right.
func Widgets(t Theme) []model.Widget {
	return []model.Widget{
		{Kind: "CurrentLayout", Options: fg(t)},
		{Kind: "GroupBox", Options: map[string]any{
			"active":                     t.ActiveTag,
			"inactive":                   t.InactiveTag,
			"highlight_method":           "block",
			"block_highlight_text_color": t.SelectedText,
			"this_screen_border":         t.Selected,
			"this_current_screen_border": t.Selected,
			"rounded":                    false,
			"padding":                    4,
			"disable_drag":               true,
		}},
		{Kind: "Prompt", Options: fg(t)},
		{Kind: "WindowName", Options: fg(t)},
		{Kind: "Chord", Options: map[string]any{
			"chords_colors":  map[string][2]string{"launch": {"#ff0000", "#ffffff"}},
			"name_transform": "upper",
		}},
		textBox(t, "☀️"),
		{Kind: "Backlight", Options: map[string]any{"foreground": t.Foreground, "backlight_name": "intel_backlight"}},
		textBox(t, "| 📢"),
		{Kind: "PulseVolume", Options: map[string]any{"foreground": t.Foreground, "get_volume_command": "pamixer"}},
		textBox(t, "| 🔋"),
		{Kind: "Battery", Options: map[string]any{
			"charge_char":          "🔺",
			"discharge_char":       "🔻",
			"empty_char":           "🪫",
			"notify_below":         15,
			"notification_timeout": 5,
			"update_interval":      2,
			"foreground":           t.Foreground,
		}},
		textBox(t, "|"),
		{Kind: "Clock", Options: map[string]any{"format": "📅 %Y-%m-%d (%a) %H:%M", "foreground": t.Foreground}},
		{Kind: "Systray"},
	}
}

// Screens returns the single screen with its top bar and wallpaper.
func Screens(t Theme) []model.Screen {
	return []model.Screen{{
		Top: &model.Bar{
			Widgets:    Widgets(t),
			Height:     barHeight,
			Background: t.Background,
			Margin:     [4]int{0, 0, margin, 0},
		},
		Wallpaper:     "~/.config/wallpaper.png",
		WallpaperMode: "fill",
	}}
}

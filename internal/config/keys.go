package config

import (
	"fmt"

	"github.com/mj1618/tilerc/internal/model"
)

// mod is the modifier every window manager binding starts with (super).
const mod = model.ModMod4

var (
	modShift   = model.Mods(mod, model.ModShift)
	modControl = model.Mods(mod, model.ModControl)
)

// Groups returns the nine desktops, "1" to "9".
func Groups() []model.Group {
	groups := make([]model.Group, 0, 9)
	for _, name := range "123456789" {
		groups = append(groups, model.Group{Name: string(name)})
	}
	return groups
}

// Keys returns the complete key table for the stock commands.
func Keys() []model.Key {
	return KeysWith(DefaultCommands(), Groups())
}

// KeysWith composes the static bindings with the generated group bindings.
// The result is a fresh slice; callers may keep it without copying.
func KeysWith(cmds Commands, groups []model.Group) []model.Key {
	static := staticKeys(cmds)
	generated := GroupKeys(groups)
	keys := make([]model.Key, 0, len(static)+len(generated))
	keys = append(keys, static...)
	return append(keys, generated...)
}

// GroupKeys returns two bindings per group: mod+name switches to the group,
// mod+shift+name moves the focused window there and follows it.
func GroupKeys(groups []model.Group) []model.Key {
	keys := make([]model.Key, 0, 2*len(groups))
	for _, g := range groups {
		keys = append(keys,
			model.Key{
				Modifiers: mod,
				Name:      g.Name,
				Action:    model.GroupToScreen(g.Name),
				Desc:      fmt.Sprintf("Switch to group %s", g.Name),
			},
			model.Key{
				Modifiers: modShift,
				Name:      g.Name,
				Action:    model.WindowToGroup(g.Name, true),
				Desc:      fmt.Sprintf("Switch to & move focused window to group %s", g.Name),
			},
		)
	}
	return keys
}

func staticKeys(c Commands) []model.Key {
	return []model.Key{
		// Window switching.
		{Modifiers: mod, Name: "h", Action: model.LayoutCmd("left"), Desc: "Move focus to left"},
		{Modifiers: mod, Name: "l", Action: model.LayoutCmd("right"), Desc: "Move focus to right"},
		{Modifiers: mod, Name: "j", Action: model.LayoutCmd("down"), Desc: "Move focus down"},
		{Modifiers: mod, Name: "k", Action: model.LayoutCmd("up"), Desc: "Move focus up"},
		{Modifiers: mod, Name: "space", Action: model.LayoutCmd("next"), Desc: "Move window focus to other window"},

		{Modifiers: modShift, Name: "h", Action: model.LayoutCmd("shuffle_left"), Desc: "Move window to the left"},
		{Modifiers: modShift, Name: "l", Action: model.LayoutCmd("shuffle_right"), Desc: "Move window to the right"},
		{Modifiers: modShift, Name: "j", Action: model.LayoutCmd("shuffle_down"), Desc: "Move window down"},
		{Modifiers: modShift, Name: "k", Action: model.LayoutCmd("shuffle_up"), Desc: "Move window up"},

		{Modifiers: modControl, Name: "h", Action: model.LayoutCmd("grow_left"), Desc: "Grow window to the left"},
		{Modifiers: modControl, Name: "l", Action: model.LayoutCmd("grow_right"), Desc: "Grow window to the right"},
		{Modifiers: modControl, Name: "j", Action: model.LayoutCmd("grow_down"), Desc: "Grow window down"},
		{Modifiers: modControl, Name: "k", Action: model.LayoutCmd("grow_up"), Desc: "Grow window up"},
		{Modifiers: mod, Name: "n", Action: model.LayoutCmd("normalize"), Desc: "Reset all window sizes"},
		{Modifiers: modControl, Name: "Return", Action: model.LayoutCmd("toggle_split"), Desc: "Toggle between split and unsplit sides of stack"},

		// Menus.
		{Modifiers: mod, Name: "p", Action: model.Spawn(c.Dmenu...), Desc: "Launch dmenu"},
		{Modifiers: modShift, Name: "d", Action: model.Spawn(c.RofiDrun...)},
		{Modifiers: modControl, Name: "d", Action: model.Spawn(c.RofiRun...)},
		{Modifiers: mod, Name: "period", Action: model.Spawn(c.Emoji...)},

		// Layouts and the window manager.
		{Modifiers: modShift, Name: "e", Action: model.WMCmd("shutdown"), Desc: "Shutdown the window manager"},
		{Modifiers: modShift, Name: "f", Action: model.WindowCmd("toggle_fullscreen")},
		{Modifiers: modShift, Name: "q", Action: model.WindowCmd("kill"), Desc: "Kill focused window"},
		{Modifiers: modShift, Name: "r", Action: model.WMCmd("reload_config"), Desc: "Reload the config"},
		{Modifiers: modShift, Name: "space", Action: model.WindowCmd("toggle_floating")},
		{Modifiers: mod, Name: "r", Action: model.SpawnCmd(), Desc: "Spawn a command using a prompt widget"},
		{Modifiers: mod, Name: "Tab", Action: model.WMCmd("next_layout"), Desc: "Toggle between layouts"},

		// Screenshots.
		{Modifiers: modShift, Name: "s", Action: model.Spawn(c.Screenshot...), Desc: "Take a selected screenshot"},
		{Modifiers: modShift, Name: "z", Action: model.Spawn(c.FullScreenshot...), Desc: "Take a full screenshot"},

		// Utilities.
		{Modifiers: modShift, Name: "Return", Action: model.Spawn(c.FileManager...), Desc: "Launch file browser"},
		{Modifiers: mod, Name: "f", Action: model.Spawn(c.Browser...), Desc: "Launch the web browser"},
		{Modifiers: mod, Name: "Return", Action: model.Spawn(c.Terminal...), Desc: "Launch terminal"},

		{Name: "XF86AudioLowerVolume", Action: model.Spawn(c.LowerVolume...)},
		{Name: "XF86AudioMute", Action: model.Spawn(c.ToggleMute...)},
		{Name: "XF86AudioRaiseVolume", Action: model.Spawn(c.RaiseVolume...)},
		{Name: "XF86MonBrightnessDown", Action: model.Spawn(c.LowerBright...)},
		{Name: "XF86MonBrightnessUp", Action: model.Spawn(c.RaiseBright...)},
	}
}

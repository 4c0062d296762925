package config

import "github.com/mj1618/tilerc/internal/model"

// Mouse returns the pointer bindings: drag to move or resize floating
// windows, middle click to raise.
func Mouse() []model.MouseBinding {
	getPosition := model.WindowCmd("get_position")
	getSize := model.WindowCmd("get_size")
	return []model.MouseBinding{
		{Kind: model.MouseDrag, Modifiers: mod, Button: "Button1", Action: model.WindowCmd("set_position_floating"), Start: &getPosition},
		{Kind: model.MouseDrag, Modifiers: mod, Button: "Button3", Action: model.WindowCmd("set_size_floating"), Start: &getSize},
		{Kind: model.MouseClick, Modifiers: mod, Button: "Button2", Action: model.WindowCmd("bring_to_front")},
	}
}

// HostOptions returns the scalar host settings.
//
// AutoMinimize lets programs such as games minimize themselves when they
// lose focus. WMName is only read by Java UI toolkits, which check it
// against a list of known non-reparenting window managers.
func HostOptions(t Theme) model.Options {
	defaults := WidgetDefaults(t)
	return model.Options{
		AutoFullscreen:          true,
		FocusOnWindowActivation: "smart",
		ReconfigureScreens:      true,
		AutoMinimize:            true,
		FollowMouseFocus:        false,
		BringFrontClick:         false,
		CursorWarp:              true,
		DGroupsAppRules:         []string{},
		WidgetDefaults:          defaults,
		ExtensionDefaults:       defaults,
		WMName:                  "LG3D",
	}
}

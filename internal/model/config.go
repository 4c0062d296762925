package model

// WidgetDefaults are the font settings applied to every widget.
type WidgetDefaults struct {
	Font     string `yaml:"font"     json:"font"`
	FontSize int    `yaml:"fontsize" json:"fontsize"`
	Padding  int    `yaml:"padding"  json:"padding"`
}

// Options are the scalar host settings.
type Options struct {
	AutoFullscreen          bool           `yaml:"auto_fullscreen"            json:"auto_fullscreen"`
	FocusOnWindowActivation string         `yaml:"focus_on_window_activation" json:"focus_on_window_activation"`
	ReconfigureScreens      bool           `yaml:"reconfigure_screens"        json:"reconfigure_screens"`
	AutoMinimize            bool           `yaml:"auto_minimize"              json:"auto_minimize"`
	FollowMouseFocus        bool           `yaml:"follow_mouse_focus"         json:"follow_mouse_focus"`
	BringFrontClick         bool           `yaml:"bring_front_click"          json:"bring_front_click"`
	CursorWarp              bool           `yaml:"cursor_warp"                json:"cursor_warp"`
	WMName                  string         `yaml:"wmname"                     json:"wmname"`
	DGroupsAppRules         []string       `yaml:"dgroups_app_rules"          json:"dgroups_app_rules"`
	WidgetDefaults          WidgetDefaults `yaml:"widget_defaults"            json:"widget_defaults"`
	ExtensionDefaults       WidgetDefaults `yaml:"extension_defaults"         json:"extension_defaults"`
}

// Config is the complete set of values handed to the host at load time.
type Config struct {
	Keys     []Key          `yaml:"keys"            json:"keys"`
	Groups   []Group        `yaml:"groups"          json:"groups"`
	Layouts  []Layout       `yaml:"layouts"         json:"layouts"`
	Floating FloatingLayout `yaml:"floating_layout" json:"floating_layout"`
	Screens  []Screen       `yaml:"screens"         json:"screens"`
	Mouse    []MouseBinding `yaml:"mouse"           json:"mouse"`
	Options  Options        `yaml:"options"         json:"options"`
}

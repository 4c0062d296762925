package model

// Window is the host's record of a managed client window, as seen by hooks.
type Window struct {
	ID        int      `yaml:"id"                  json:"id"`
	PID       int      `yaml:"pid"                 json:"pid"`
	Class     []string `yaml:"class,omitempty"     json:"class,omitempty"` // WM_CLASS as [instance, class]
	Title     string   `yaml:"title,omitempty"     json:"title,omitempty"`
	Type      string   `yaml:"type,omitempty"      json:"type,omitempty"` // e.g. "dialog", "utility"
	Minimized bool     `yaml:"minimized,omitempty" json:"minimized,omitempty"`

	// Size hints and WM_TRANSIENT_FOR, as the default floating rules read them.
	FixedSize  bool `yaml:"fixed_size,omitempty"  json:"fixed_size,omitempty"`
	FixedRatio bool `yaml:"fixed_ratio,omitempty" json:"fixed_ratio,omitempty"`
	Transient  bool `yaml:"transient,omitempty"   json:"transient,omitempty"`

	// Parent is the terminal window this one swallowed. It is a lookup
	// reference only; the parent's lifetime is owned by the host.
	Parent *Window `yaml:"-" json:"-"`
}

// Instance returns the first WM_CLASS string, or "" if unset.
func (w *Window) Instance() string {
	if len(w.Class) == 0 {
		return ""
	}
	return w.Class[0]
}

// ClassName returns the second WM_CLASS string, falling back to the first.
func (w *Window) ClassName() string {
	if len(w.Class) > 1 {
		return w.Class[1]
	}
	return w.Instance()
}

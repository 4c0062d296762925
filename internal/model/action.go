package model

import "strings"

// ActionKind names the host command family an Action belongs to.
type ActionKind string

const (
	ActionSpawn    ActionKind = "spawn"
	ActionSpawnCmd ActionKind = "spawncmd"
	ActionLayout   ActionKind = "layout"
	ActionWindow   ActionKind = "window"
	ActionGroup    ActionKind = "group"
	ActionToGroup  ActionKind = "togroup"
	ActionWM       ActionKind = "wm"
)

// Action is a deferred host command. Spawn actions carry an argv in Args;
// the other kinds carry the command name in Name and positional arguments
// in Args.
type Action struct {
	Kind ActionKind `yaml:"kind"           json:"kind"`
	Name string     `yaml:"name,omitempty" json:"name,omitempty"`
	Args []string   `yaml:"args,omitempty" json:"args,omitempty"`
}

// Spawn launches argv. Output and exit status are not collected.
func Spawn(argv ...string) Action {
	return Action{Kind: ActionSpawn, Args: argv}
}

// SpawnCmd opens the bar's prompt widget to spawn a command.
func SpawnCmd() Action {
	return Action{Kind: ActionSpawnCmd}
}

// LayoutCmd calls a method on the current layout, such as "left".
func LayoutCmd(name string) Action {
	return Action{Kind: ActionLayout, Name: name}
}

// WindowCmd calls a method on the focused window, such as "kill".
func WindowCmd(name string) Action {
	return Action{Kind: ActionWindow, Name: name}
}

// GroupToScreen shows the named group on the current screen.
func GroupToScreen(group string) Action {
	return Action{Kind: ActionGroup, Name: "toscreen", Args: []string{group}}
}

// WindowToGroup moves the focused window to the named group, following it
// there when switchGroup is set.
func WindowToGroup(group string, switchGroup bool) Action {
	a := Action{Kind: ActionToGroup, Name: "togroup", Args: []string{group}}
	if switchGroup {
		a.Args = append(a.Args, "switch_group")
	}
	return a
}

// WMCmd calls a method on the window manager itself, such as "shutdown".
func WMCmd(name string) Action {
	return Action{Kind: ActionWM, Name: name}
}

// String renders the action the way it reads in a keybinding listing,
// e.g. "spawn kitty" or "layout.left".
func (a Action) String() string {
	switch a.Kind {
	case ActionSpawn:
		return "spawn " + strings.Join(a.Args, " ")
	case ActionSpawnCmd:
		return "spawncmd"
	case ActionGroup, ActionToGroup:
		return string(a.Kind) + "." + a.Name + "(" + strings.Join(a.Args, ", ") + ")"
	default:
		return string(a.Kind) + "." + a.Name
	}
}

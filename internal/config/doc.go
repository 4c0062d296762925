// Package config is the window manager configuration: keybindings, groups,
// layouts, the bar, floating rules, mouse bindings and scalar options.
//
// Customizing the terminal, browser, launchers and colors is done by editing
// this package and rebuilding, or, for commands and colors only, through the
// TOML overrides file read by Load.
package config

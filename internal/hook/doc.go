// Package hook holds the callbacks run on host lifecycle events: autostart
// on startup, and window swallowing on client creation and destruction.
//
// Swallowing hides a terminal window when a GUI program launched from it
// maps its own window, and restores the terminal when that window closes.
// The parent is found by walking the new window's process ancestry and
// comparing each ancestor pid against the pids of open windows.
//
// Hooks receive everything they touch explicitly: the window, and an Env
// carrying the window registry, the process table and the command runner.
package hook

package log

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Window / process fields
	FieldWindowID  = "window_id"
	FieldPID       = "pid"
	FieldParentPID = "ppid"
	FieldHop       = "hop"
	FieldClass     = "wm_class"

	// Command fields
	FieldArgv = "argv"
	FieldPath = "path"
	FieldHook = "hook"
)

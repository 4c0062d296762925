package hook

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/model"
)

// ErrNoRunner is returned by AutostartHook when Env has no Runner.
var ErrNoRunner = errors.New("no command runner")

// Autostart runs the script at path and waits for it. A non-zero exit is
// logged and swallowed; only a failure to start the script is returned.
func Autostart(ctx context.Context, runner Runner, path string) error {
	logger := log.WithComponent("hook")
	err := runner.Run(ctx, []string{path})

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		logger.Debug().Str(log.FieldPath, path).Msg("autostart finished")
		return nil
	case errors.As(err, &exitErr):
		logger.Warn().Str(log.FieldPath, path).
			Int("exit_code", exitErr.ExitCode()).
			Msg("autostart exited with error")
		return nil
	default:
		return fmt.Errorf("autostart %s: %w", path, err)
	}
}

// AutostartHook is the startup hook.
func AutostartHook(ctx context.Context, env Env, _ *model.Window) error {
	if env.Runner == nil {
		return ErrNoRunner
	}
	return Autostart(ctx, env.Runner, env.AutostartPath)
}

// SwallowHook is the client_new hook. It runs Swallow and, when a terminal
// was swallowed, hides it through env.Minimizer.
func SwallowHook(_ context.Context, env Env, win *model.Window) error {
	parent, err := Swallow(win, env.Registry, env.Procs)
	if err != nil || parent == nil {
		return err
	}
	logger := log.WithComponent("hook")
	logger.Debug().
		Int(log.FieldWindowID, win.ID).
		Int("parent_window_id", parent.ID).
		Msg("swallowed terminal")
	if env.Minimizer != nil {
		return env.Minimizer.SetMinimized(parent, true)
	}
	return nil
}

// UnswallowHook is the client_killed hook.
func UnswallowHook(_ context.Context, env Env, win *model.Window) error {
	parent := Unswallow(win)
	if parent == nil {
		return nil
	}
	logger := log.WithComponent("hook")
	logger.Debug().
		Int(log.FieldWindowID, win.ID).
		Int("parent_window_id", parent.ID).
		Msg("restored terminal")
	if env.Minimizer != nil {
		return env.Minimizer.SetMinimized(parent, false)
	}
	return nil
}

// Package launch starts external commands on behalf of key bindings and
// hooks.
package launch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mj1618/tilerc/internal/log"
)

// ErrEmptyCommand is returned for an empty argv.
var ErrEmptyCommand = errors.New("empty command")

// Launcher runs commands through os/exec.
type Launcher struct {
	logger zerolog.Logger

	// done, if set, receives the exit error of every spawned command.
	done func(argv []string, err error)
}

// New returns a Launcher logging through the launch component logger.
func New() *Launcher {
	return &Launcher{logger: log.WithComponent("launch")}
}

// Spawn starts argv and reaps it in the background. The program's own exit
// status is ignored.
func (l *Launcher) Spawn(argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	c := exec.Command(argv[0], argv[1:]...)
	if err := c.Start(); err != nil {
		l.logger.Warn().Err(err).Strs(log.FieldArgv, argv).Msg("could not start command")
		return fmt.Errorf("start %q: %w", strings.Join(argv, " "), err)
	}
	l.logger.Debug().Strs(log.FieldArgv, argv).Int(log.FieldPID, c.Process.Pid).Msg("spawned")
	go func() {
		err := c.Wait()
		if l.done != nil {
			l.done(argv, err)
		}
	}()
	return nil
}

// Run starts argv and waits for it. A non-zero exit is returned as an
// *exec.ExitError.
func (l *Launcher) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	l.logger.Debug().Strs(log.FieldArgv, argv).Msg("running")
	return c.Run()
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/server"
)

// ErrCheckFailed is returned by `check` when the configuration has problems.
var ErrCheckFailed = errors.New("configuration check failed")

func errNoBinding(chord model.Chord) error {
	return fmt.Errorf("no binding for %s", chord)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long: `Load the configuration with overrides applied and run the load-time checks:
no chord bound twice, every key named and bound, every spawn has a command,
group and layout names unique, and every referenced group defined.

Exits non-zero when any check fails.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res := server.Check(cfg)
	if err := printTo(cmd, res); err != nil {
		return err
	}
	if !res.OK {
		return ErrCheckFailed
	}
	return nil
}

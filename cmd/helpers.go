package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/config"
	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/output"
)

// overridesPath returns the --overrides value, or the default XDG path.
func overridesPath() string {
	path, _ := rootCmd.PersistentFlags().GetString("overrides")
	if path == "" {
		return config.OverridesPath()
	}
	return path
}

// loadConfig assembles the configuration with the overrides file applied.
func loadConfig() (*model.Config, error) {
	return config.Load(overridesPath())
}

// topBar returns the bar of the first screen that has one.
func topBar(cfg *model.Config) (*model.Bar, error) {
	for _, s := range cfg.Screens {
		if s.Top != nil {
			return s.Top, nil
		}
	}
	return nil, fmt.Errorf("no screen has a bar")
}

// printTo writes v to the command's stdout in the selected format.
func printTo(cmd *cobra.Command, v interface{}) error {
	return output.Fprint(cmd.OutOrStdout(), v)
}

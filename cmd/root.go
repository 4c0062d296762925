package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/output"
	"github.com/mj1618/tilerc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tilerc",
	Short: "Inspect and drive a tiling window manager configuration",
	Long: `tilerc holds a tiling window manager configuration as Go values: key
bindings, groups, layouts, the status bar, floating rules and the autostart
and window swallowing hooks. The commands print, validate and render that
configuration, serve it to agents over MCP, and run its hooks against a live
X11 session.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default: yaml on a terminal, json when piped)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("overrides", "", "Overrides file (default: $XDG_CONFIG_HOME/tilerc/overrides.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: $LOG_LEVEL or warn)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		log.Configure(log.Config{Level: level})

		format, _ := rootCmd.PersistentFlags().GetString("format")

		// Smart default: auto-detect format when not explicitly set.
		// Piped output → json. Terminal output (human) → yaml.
		if format == "" {
			if output.IsOutputPiped() {
				format = "json"
			} else {
				format = "yaml"
			}
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/model"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List workspace groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printTo(cmd, cfg.Groups)
	},
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List layouts and floating rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printTo(cmd, layoutsResult{Layouts: cfg.Layouts, Floating: cfg.Floating})
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the whole assembled configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printTo(cmd, cfg)
	},
}

// layoutsResult is the output of the `layouts` command.
type layoutsResult struct {
	Layouts  []model.Layout       `yaml:"layouts"         json:"layouts"`
	Floating model.FloatingLayout `yaml:"floating_layout" json:"floating_layout"`
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(dumpCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/output"
)

var keysCmd = &cobra.Command{
	Use:   "keys [chord]",
	Short: "List key bindings",
	Long: `List the key bindings in table order: the static bindings first, then two
per group. With a chord argument, print only the binding for that chord.

Examples:
  tilerc keys
  tilerc keys --text volume
  tilerc keys --mods mod4+shift
  tilerc keys --group 3
  tilerc keys mod4+Return`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().String("text", "", "Filter by description, key name or action (case-insensitive)")
	keysCmd.Flags().String("mods", "", "Only bindings holding these modifiers, e.g. mod4+shift")
	keysCmd.Flags().String("group", "", "Only bindings that target this group")
}

func runKeys(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	modsFlag, _ := cmd.Flags().GetString("mods")
	group, _ := cmd.Flags().GetString("group")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		chord, err := model.ParseChord(args[0])
		if err != nil {
			return err
		}
		key := model.FindKey(cfg.Keys, chord)
		if key == nil {
			return errNoBinding(chord)
		}
		return printTo(cmd, key)
	}

	var mods model.Modifier
	if err := mods.UnmarshalText([]byte(modsFlag)); err != nil {
		return err
	}
	keys := cfg.Keys
	if group != "" {
		keys = model.KeysForGroup(keys, group)
	}
	keys = model.FilterKeys(keys, text, mods)
	return printTo(cmd, output.KeysResult{Count: len(keys), Keys: keys})
}

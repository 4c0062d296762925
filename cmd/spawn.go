package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/platform/launch"
)

// SpawnResult is the output of the spawn command.
type SpawnResult struct {
	Chord   string   `yaml:"chord"   json:"chord"`
	Argv    []string `yaml:"argv"    json:"argv"`
	Started bool     `yaml:"started" json:"started"`
}

var spawnCmd = &cobra.Command{
	Use:   "spawn <chord>",
	Short: "Run the command bound to a spawn key",
	Long: `Start the program a spawn binding launches, as if its chord had been
pressed. The program runs detached and its exit status is ignored.

Examples:
  tilerc spawn mod4+Return
  tilerc spawn mod4+b --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runSpawn,
}

func init() {
	rootCmd.AddCommand(spawnCmd)
	spawnCmd.Flags().Bool("dry-run", false, "Print the command without starting it")
}

func runSpawn(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	chord, err := model.ParseChord(args[0])
	if err != nil {
		return err
	}
	key := model.FindKey(cfg.Keys, chord)
	if key == nil {
		return errNoBinding(chord)
	}
	if key.Action.Kind != model.ActionSpawn {
		return fmt.Errorf("%s is bound to %s, not a spawn", chord, key.Action)
	}

	res := SpawnResult{Chord: chord.String(), Argv: key.Action.Args}
	if !dryRun {
		if err := launch.New().Spawn(key.Action.Args); err != nil {
			return err
		}
		res.Started = true
	}
	return printTo(cmd, res)
}

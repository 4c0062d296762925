package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/sim"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay process and window events through the hooks",
	Long: `Replay a YAML list of steps from stdin against an in-memory window registry
and process table, firing the same client_new and client_killed hooks a live
session fires. Each step reports which windows were swallowed or restored.

Steps:
  proc:   { pid, ppid, name }        add a process
  window: { id, pid, class, title }  a window that is already open (no hooks)
  open:   { id, pid, class, title }  a new window (client_new)
  close:  { id }                     a window closing (client_killed)

Example:
  tilerc simulate <<'EOF'
  - proc: { pid: 50, ppid: 1, name: alacritty }
  - proc: { pid: 100, ppid: 50, name: mpv }
  - window: { id: 1, pid: 50, class: Alacritty }
  - open: { id: 2, pid: 100, class: mpv }
  - close: { id: 2 }
  EOF`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	steps, err := sim.Parse(cmd.InOrStdin())
	if err != nil {
		return err
	}
	res, err := sim.Run(cmd.Context(), steps, nil)
	if err != nil {
		return err
	}
	return printTo(cmd, res)
}

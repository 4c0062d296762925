package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/hook"
	"github.com/mj1618/tilerc/internal/platform/proctable"
)

var ancestryCmd = &cobra.Command{
	Use:   "ancestry <pid>",
	Short: "Show a process's ancestors as the swallow hook walks them",
	Long: `Print pid and its parents from /proc, nearest first. The swallow hook
compares the first ` + strconv.Itoa(hook.MaxAncestry) + ` parents against the pids of open windows.`,
	Args: cobra.ExactArgs(1),
	RunE: runAncestry,
}

func init() {
	rootCmd.AddCommand(ancestryCmd)
	ancestryCmd.Flags().Int("hops", hook.MaxAncestry+1, "Maximum number of processes to print")
	ancestryCmd.Flags().String("proc", "", "procfs mount point (default: /proc)")
}

func runAncestry(cmd *cobra.Command, args []string) error {
	pid, err := strconv.Atoi(args[0])
	if err != nil || pid <= 0 {
		return fmt.Errorf("invalid pid %q", args[0])
	}
	hops, _ := cmd.Flags().GetInt("hops")
	mount, _ := cmd.Flags().GetString("proc")

	var tbl *proctable.Table
	if mount == "" {
		tbl, err = proctable.New()
	} else {
		tbl, err = proctable.NewAt(mount)
	}
	if err != nil {
		return err
	}

	chain, err := proctable.Ancestry(tbl, pid, hops)
	if err != nil {
		return err
	}
	return printTo(cmd, chain)
}

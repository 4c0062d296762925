package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List managed windows",
	Long:  "List the windows in the X11 client list with their id, pid, WM_CLASS, title and type.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
	listCmd.Flags().String("class", "", "Filter windows by WM_CLASS (case-insensitive)")
	listCmd.Flags().Bool("floating", false, "Only windows the floating rules would float")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Close != nil {
		defer provider.Close()
	}

	pid, _ := cmd.Flags().GetInt("pid")
	class, _ := cmd.Flags().GetString("class")
	floating, _ := cmd.Flags().GetBool("floating")

	if provider.Windows == nil {
		return fmt.Errorf("window listing not available on this platform")
	}
	windows, err := provider.Windows.ListWindows()
	if err != nil {
		return err
	}

	var rules model.FloatingLayout
	if floating {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rules = cfg.Floating
	}
	return printTo(cmd, filterWindows(windows, pid, class, floating, rules))
}

// filterWindows applies the list flags. The result is never nil.
func filterWindows(windows []model.Window, pid int, class string, floating bool, rules model.FloatingLayout) []model.Window {
	out := []model.Window{}
	for i := range windows {
		w := &windows[i]
		if pid != 0 && w.PID != pid {
			continue
		}
		if class != "" && !hasClass(w, class) {
			continue
		}
		if floating && !rules.ShouldFloat(w) {
			continue
		}
		out = append(out, *w)
	}
	return out
}

func hasClass(w *model.Window, class string) bool {
	for _, c := range w.Class {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

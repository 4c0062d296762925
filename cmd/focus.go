package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/platform"
)

// FocusResult is the output of a successful focus, minimize or restore.
type FocusResult struct {
	OK     bool   `yaml:"ok"              json:"ok"`
	Action string `yaml:"action"          json:"action"`
	Window int    `yaml:"window"          json:"window"`
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
	PID    int    `yaml:"pid,omitempty"   json:"pid,omitempty"`
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Activate, minimize or restore a window",
	Long:  "Find a window by id, pid or title and activate it, or iconify it with --minimize.",
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().String("window", "", "Window by title substring")
	focusCmd.Flags().Int("window-id", 0, "Window by X11 id")
	focusCmd.Flags().Int("pid", 0, "Window by PID")
	focusCmd.Flags().Bool("minimize", false, "Iconify instead of activating")
}

func runFocus(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("window")
	windowID, _ := cmd.Flags().GetInt("window-id")
	pid, _ := cmd.Flags().GetInt("pid")
	minimize, _ := cmd.Flags().GetBool("minimize")

	if title == "" && windowID == 0 && pid == 0 {
		return fmt.Errorf("specify --window, --window-id, or --pid")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Close != nil {
		defer provider.Close()
	}
	if provider.Windows == nil || provider.WindowManager == nil {
		return fmt.Errorf("window management not available on this platform")
	}

	windows, err := provider.Windows.ListWindows()
	if err != nil {
		return err
	}
	w := findWindow(windows, windowID, pid, title)
	if w == nil {
		return fmt.Errorf("no window matches")
	}

	action := "focus"
	if minimize {
		action = "minimize"
		err = provider.WindowManager.SetMinimized(w, true)
	} else {
		err = provider.WindowManager.Focus(w)
	}
	if err != nil {
		return err
	}
	return printTo(cmd, FocusResult{OK: true, Action: action, Window: w.ID, Title: w.Title, PID: w.PID})
}

// findWindow returns the first window matching every non-zero criterion.
func findWindow(windows []model.Window, id, pid int, title string) *model.Window {
	for i := range windows {
		w := &windows[i]
		if id != 0 && w.ID != id {
			continue
		}
		if pid != 0 && w.PID != pid {
			continue
		}
		if title != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(title)) {
			continue
		}
		return w
	}
	return nil
}

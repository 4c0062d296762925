package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/render"
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Render a preview of the status bar",
	Long: `Draw the top bar with its widgets into a PNG. Live values (layout, active
group, window name, levels) come from flags so the preview is reproducible.

Examples:
  tilerc bar --output bar.png
  tilerc bar --width 1920 --group 3 --window "vim main.go" --output bar.png`,
	RunE: runBar,
}

func init() {
	rootCmd.AddCommand(barCmd)
	barCmd.Flags().Int("width", 1366, "Bar width in pixels")
	barCmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
	barCmd.Flags().String("layout", "", "Current layout name (default: first layout)")
	barCmd.Flags().String("group", "1", "Active group")
	barCmd.Flags().StringSlice("occupied", []string{"1"}, "Groups holding windows")
	barCmd.Flags().String("window", "", "Focused window title")
	barCmd.Flags().Int("brightness", 60, "Backlight percent")
	barCmd.Flags().Int("volume", 40, "Volume percent")
	barCmd.Flags().Int("battery", 80, "Battery percent")
	barCmd.Flags().Bool("charging", false, "Battery is charging")
	barCmd.Flags().Int("tray-icons", 2, "Number of systray icons")
	barCmd.Flags().String("time", "", "Clock time in RFC 3339 (default: now)")
}

func runBar(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	out, _ := cmd.Flags().GetString("output")
	layout, _ := cmd.Flags().GetString("layout")
	group, _ := cmd.Flags().GetString("group")
	occupied, _ := cmd.Flags().GetStringSlice("occupied")
	window, _ := cmd.Flags().GetString("window")
	brightness, _ := cmd.Flags().GetInt("brightness")
	volume, _ := cmd.Flags().GetInt("volume")
	battery, _ := cmd.Flags().GetInt("battery")
	charging, _ := cmd.Flags().GetBool("charging")
	trayIcons, _ := cmd.Flags().GetInt("tray-icons")
	timeFlag, _ := cmd.Flags().GetString("time")

	if trayIcons < 0 {
		return fmt.Errorf("invalid --tray-icons %d: must not be negative", trayIcons)
	}

	now := time.Now()
	if timeFlag != "" {
		t, err := time.Parse(time.RFC3339, timeFlag)
		if err != nil {
			return fmt.Errorf("invalid --time: %w", err)
		}
		now = t
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bar, err := topBar(cfg)
	if err != nil {
		return err
	}
	if layout == "" && len(cfg.Layouts) > 0 {
		layout = cfg.Layouts[0].Name
	}

	img, err := render.Bar(bar, render.Options{
		Width:   width,
		Padding: cfg.Options.WidgetDefaults.Padding,
		Groups:  cfg.Groups,
		State: render.State{
			Layout:      layout,
			ActiveGroup: group,
			Occupied:    occupied,
			WindowName:  window,
			Brightness:  brightness,
			Volume:      volume,
			Battery:     battery,
			Charging:    charging,
			Now:         now,
			TrayIcons:   trayIcons,
		},
	})
	if err != nil {
		return err
	}

	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := render.EncodePNG(f, img); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	enc := base64.NewEncoder(base64.StdEncoding, cmd.OutOrStdout())
	if err := render.EncodePNG(enc, img); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

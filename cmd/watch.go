package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mj1618/tilerc/internal/config"
	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/platform"
	"github.com/mj1618/tilerc/internal/session"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the hooks against the live X11 session",
	Long: `Connect to the X server and follow the client list. New windows fire the
swallow hook, closed windows fire the unswallow hook, and swallowed terminals
are iconified and restored through EWMH. The autostart script runs once at
startup unless --no-autostart is given.

The overrides file is watched; when it changes the configuration is reloaded,
the key binding changes are logged and the session picks up the new floating
rules. Keys themselves are bound by the window manager, not by tilerc.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Bool("no-autostart", false, "Do not run the autostart script")
	watchCmd.Flags().String("autostart", "", "Autostart script (default: $XDG_CONFIG_HOME/tilerc/autostart.sh)")
	watchCmd.Flags().Bool("no-reload", false, "Do not watch the overrides file")
}

func runWatch(cmd *cobra.Command, args []string) error {
	noAutostart, _ := cmd.Flags().GetBool("no-autostart")
	autostart, _ := cmd.Flags().GetString("autostart")
	noReload, _ := cmd.Flags().GetBool("no-reload")
	if autostart == "" {
		autostart = config.AutostartPath()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Close != nil {
		defer provider.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := session.New(provider, session.Options{
		AutostartPath: autostart,
		SkipStartup:   noAutostart,
	})
	sess.SetConfig(cfg)

	logger := log.WithComponent("watch")
	if !noReload {
		reloader := session.NewReloader(overridesPath(), cfg)
		reloader.OnReload(func(next *model.Config, _ []model.KeyChange) {
			sess.SetConfig(next)
		})
		go func() {
			if err := reloader.Watch(ctx); err != nil {
				logger.Warn().Err(err).Msg("overrides watcher stopped")
			}
		}()
	}

	logger.Info().Msg("watching client list")
	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

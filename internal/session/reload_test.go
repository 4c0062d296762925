package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/tilerc/internal/config"
	"github.com/mj1618/tilerc/internal/model"
)

const alacrittyOverrides = "[commands]\nterminal = [\"alacritty\"]\n"

func TestReload_LogsKeyChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	r := NewReloader(path, config.Default())

	var got []model.KeyChange
	r.OnReload(func(_ *model.Config, changes []model.KeyChange) { got = changes })

	require.NoError(t, os.WriteFile(path, []byte(alacrittyOverrides), 0o644))
	require.NoError(t, r.Reload())

	require.Len(t, got, 1)
	assert.Equal(t, model.ChangeChanged, got[0].Type)
	assert.Equal(t, "mod4+Return", got[0].Chord)
	assert.Equal(t, [2]string{"spawn kitty", "spawn alacritty"}, got[0].Changes["action"])

	term := model.FindKey(r.Current().Keys, model.Chord{Modifiers: model.ModMod4, Name: "Return"})
	require.NotNil(t, term)
	assert.Equal(t, []string{"alacritty"}, term.Action.Args)
}

func TestReload_NotifiesEveryListener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	r := NewReloader(path, config.Default())

	var first, second *model.Config
	r.OnReload(func(cfg *model.Config, _ []model.KeyChange) { first = cfg })
	r.OnReload(func(cfg *model.Config, _ []model.KeyChange) { second = cfg })

	require.NoError(t, r.Reload())
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Same(t, r.Current(), first)
}

func TestReload_BadFileKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	initial := config.Default()
	r := NewReloader(path, initial)

	require.NoError(t, os.WriteFile(path, []byte("[commands\n"), 0o644))
	assert.Error(t, r.Reload())
	assert.Same(t, initial, r.Current())

	require.NoError(t, os.WriteFile(path, []byte("[commands]\nterminal = [\"\"]\n"), 0o644))
	err := r.Reload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
	assert.Same(t, initial, r.Current())
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	r := NewReloader(path, config.Default())
	r.debounce = 10 * time.Millisecond

	reloaded := make(chan struct{}, 1)
	r.OnReload(func(*model.Config, []model.KeyChange) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()

	// The watcher may not be registered yet; keep writing until it notices.
	deadline := time.After(5 * time.Second)
	ok := false
	for !ok {
		require.NoError(t, os.WriteFile(path, []byte(alacrittyOverrides), 0o644))
		select {
		case <-reloaded:
			ok = true
		case <-time.After(100 * time.Millisecond):
		case <-deadline:
			t.Fatal("no reload after writing overrides")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

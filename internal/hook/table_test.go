package hook

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordRunner struct {
	argv [][]string
	err  error
}

func (r *recordRunner) Run(_ context.Context, argv []string) error {
	r.argv = append(r.argv, argv)
	return r.err
}

type recordMinimizer struct {
	calls map[int]bool
}

func (m *recordMinimizer) SetMinimized(w *model.Window, minimized bool) error {
	if m.calls == nil {
		m.calls = make(map[int]bool)
	}
	m.calls[w.ID] = minimized
	return nil
}

func TestDefault_Registration(t *testing.T) {
	tbl := Default()
	assert.Equal(t, []string{"autostart"}, tbl.Hooks(EventStartup))
	assert.Equal(t, []string{"swallow"}, tbl.Hooks(EventClientNew))
	assert.Equal(t, []string{"unswallow"}, tbl.Hooks(EventClientKilled))
	assert.Empty(t, tbl.Hooks(Event("nope")))
}

func TestFire_IsolatesFailures(t *testing.T) {
	tbl := NewTable()
	var ran []string
	tbl.Register(EventClientNew, "boom", func(context.Context, Env, *model.Window) error {
		ran = append(ran, "boom")
		return errors.New("boom")
	})
	tbl.Register(EventClientNew, "panics", func(context.Context, Env, *model.Window) error {
		ran = append(ran, "panics")
		panic("bad hook")
	})
	tbl.Register(EventClientNew, "ok", func(context.Context, Env, *model.Window) error {
		ran = append(ran, "ok")
		return nil
	})

	report := tbl.Fire(context.Background(), EventClientNew, Env{}, &model.Window{ID: 1})
	assert.Equal(t, []string{"boom", "panics", "ok"}, ran)
	assert.Equal(t, 3, report.Ran)
	require.Len(t, report.Failed, 2)
	assert.ErrorContains(t, report.Failed[0], "boom: boom")
	assert.ErrorContains(t, report.Failed[1], "panics: panic: bad hook")
	assert.Equal(t, 2, tbl.Failures())
}

func TestFire_SwallowAndUnswallow(t *testing.T) {
	term := terminal(1, 50)
	rec := &recordMinimizer{}
	env := Env{
		Registry:  MapRegistry{1: term},
		Procs:     procTree{100: 50, 50: 1, 1: 0},
		Minimizer: rec,
	}
	tbl := Default()
	win := &model.Window{ID: 2, PID: 100, Class: []string{"mpv", "mpv"}}

	report := tbl.Fire(context.Background(), EventClientNew, env, win)
	require.Empty(t, report.Failed)
	assert.True(t, term.Minimized)
	assert.Equal(t, map[int]bool{1: true}, rec.calls)

	report = tbl.Fire(context.Background(), EventClientKilled, env, win)
	require.Empty(t, report.Failed)
	assert.False(t, term.Minimized)
	assert.Equal(t, map[int]bool{1: false}, rec.calls)
}

func TestSwallowHooks_LogTransitions(t *testing.T) {
	var buf bytes.Buffer
	log.Configure(log.Config{Level: "debug", Output: &buf})
	defer log.Configure(log.Config{})

	term := terminal(1, 50)
	rec := &recordMinimizer{}
	env := Env{
		Registry:  MapRegistry{1: term},
		Procs:     procTree{100: 50, 50: 1, 1: 0},
		Minimizer: rec,
	}
	win := &model.Window{ID: 2, PID: 100, Class: []string{"mpv", "mpv"}}

	require.NoError(t, SwallowHook(context.Background(), env, win))
	assert.Same(t, term, win.Parent)
	assert.Contains(t, buf.String(), "swallowed terminal")

	require.NoError(t, UnswallowHook(context.Background(), env, win))
	assert.False(t, term.Minimized)
	assert.Contains(t, buf.String(), "restored terminal")
	assert.Equal(t, map[int]bool{1: false}, rec.calls)
}

func TestFire_SwallowLookupErrorIsReported(t *testing.T) {
	tbl := Default()
	env := Env{Registry: MapRegistry{}, Procs: procTree{}}

	report := tbl.Fire(context.Background(), EventClientNew, env, &model.Window{ID: 2, PID: 100})
	require.Len(t, report.Failed, 1)
	assert.ErrorIs(t, report.Failed[0], errNoSuchProcess)
}

func TestAutostart(t *testing.T) {
	r := &recordRunner{}
	require.NoError(t, Autostart(context.Background(), r, "/home/u/.config/tilerc/autostart.sh"))
	assert.Equal(t, [][]string{{"/home/u/.config/tilerc/autostart.sh"}}, r.argv)
}

func TestAutostart_ExitStatusNotReturned(t *testing.T) {
	r := &recordRunner{err: &exec.ExitError{}}
	assert.NoError(t, Autostart(context.Background(), r, "autostart.sh"))
}

func TestAutostart_StartFailureReturned(t *testing.T) {
	r := &recordRunner{err: exec.ErrNotFound}
	err := Autostart(context.Background(), r, "autostart.sh")
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestAutostartHook_NoRunner(t *testing.T) {
	report := Default().Fire(context.Background(), EventStartup, Env{}, nil)
	require.Len(t, report.Failed, 1)
	assert.ErrorIs(t, report.Failed[0], ErrNoRunner)
}

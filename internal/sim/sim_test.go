package sim

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const swallowScript = `
- proc: { pid: 1, ppid: 0, name: init }
- proc: { pid: 50, ppid: 1, name: alacritty }
- proc: { pid: 60, ppid: 50, name: zsh }
- proc: { pid: 100, ppid: 60, name: mpv }
- window: { id: 1, pid: 50, class: [Alacritty, Alacritty], title: term }
- open: { id: 2, pid: 100, class: mpv }
- close: { id: 2 }
`

func run(t *testing.T, script string) *Result {
	t.Helper()
	steps, err := Parse(strings.NewReader(script))
	require.NoError(t, err)
	res, err := Run(context.Background(), steps, nil)
	require.NoError(t, err)
	return res
}

func TestRun_SwallowAndRestore(t *testing.T) {
	res := run(t, swallowScript)
	require.True(t, res.OK)
	require.Len(t, res.Steps, 7)

	open := res.Steps[5]
	assert.Equal(t, "open", open.Action)
	assert.Equal(t, []int{1}, open.Swallowed)
	assert.Empty(t, open.Error)

	closed := res.Steps[6]
	assert.Equal(t, []int{1}, closed.Restored)

	require.Len(t, res.Windows, 1)
	assert.False(t, res.Windows[0].Minimized)
}

func TestRun_EventKindNames(t *testing.T) {
	res := run(t, `
- proc: { pid: 50, ppid: 1, name: alacritty }
- proc: { pid: 100, ppid: 50, name: mpv }
- window: { id: 1, pid: 50, class: Alacritty }
- created: { id: 2, pid: 100, class: mpv }
- destroyed: { id: 2 }
`)
	require.True(t, res.OK)
	assert.Equal(t, []int{1}, res.Steps[3].Swallowed)
	assert.Equal(t, []int{1}, res.Steps[4].Restored)
}

func TestRun_NotATerminal(t *testing.T) {
	res := run(t, `
- proc: { pid: 50, ppid: 0 }
- proc: { pid: 100, ppid: 50 }
- window: { id: 1, pid: 50, class: [kitty, kitty] }
- open: { id: 2, pid: 100 }
`)
	assert.True(t, res.OK)
	assert.Empty(t, res.Steps[3].Swallowed)
}

func TestRun_TooDeep(t *testing.T) {
	// mpv is six hops below the terminal.
	res := run(t, `
- proc: { pid: 50, ppid: 0 }
- proc: { pid: 51, ppid: 50 }
- proc: { pid: 52, ppid: 51 }
- proc: { pid: 53, ppid: 52 }
- proc: { pid: 54, ppid: 53 }
- proc: { pid: 55, ppid: 54 }
- proc: { pid: 100, ppid: 55 }
- window: { id: 1, pid: 50, class: Alacritty }
- open: { id: 2, pid: 100 }
`)
	assert.True(t, res.OK)
	assert.Empty(t, res.Steps[8].Swallowed)
}

func TestRun_UnknownProcessReportsError(t *testing.T) {
	res := run(t, `
- open: { id: 2, pid: 100 }
`)
	assert.False(t, res.OK)
	assert.Contains(t, res.Steps[0].Error, "process 100")
	assert.Len(t, res.Windows, 1, "the window is registered even when the hook fails")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"empty", "", "no steps"},
		{"empty list", "[]", "no steps"},
		{"two keys", "- { open: {id: 1}, close: {id: 1} }", "exactly one action key"},
		{"not yaml", "- open: [", "parse YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_BadSteps(t *testing.T) {
	tests := []struct {
		script string
		want   string
	}{
		{"- proc: { ppid: 1 }", "positive pid"},
		{"- open: { pid: 1 }", "positive id"},
		{"- close: {}", "window id"},
		{"- resize: { id: 1 }", "unknown action"},
	}
	for _, tt := range tests {
		steps, err := Parse(strings.NewReader(tt.script))
		require.NoError(t, err)
		_, err = Run(context.Background(), steps, nil)
		require.Error(t, err, tt.script)
		assert.Contains(t, err.Error(), tt.want)
	}
}

// Package sim replays a scripted sequence of process and window events
// against an in-memory registry and process table, firing the same hook
// table a live session uses.
//
// A script is a YAML list. Each step has exactly one key:
//
//	- proc:   { pid: 50, ppid: 1, name: alacritty }
//	- window: { id: 1, pid: 50, class: [Alacritty, Alacritty] }   # already open, no hooks
//	- open:   { id: 2, pid: 100, class: mpv }                     # client_new
//	- close:  { id: 2 }                                           # client_killed
//
// "created" and "destroyed" are accepted in place of open and close.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/tilerc/internal/hook"
	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/params"
	"github.com/mj1618/tilerc/internal/platform"
	"github.com/mj1618/tilerc/internal/session"
)

// ErrNoSteps is returned for an empty script.
var ErrNoSteps = errors.New("no steps provided: expected a YAML list of proc, window, open or close steps")

// Step is one scripted event.
type Step struct {
	Action string
	Params map[string]interface{}
}

// Parse reads a YAML step list.
func Parse(r io.Reader) ([]Step, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read steps: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoSteps
	}
	var raw []map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoSteps
	}
	steps := make([]Step, 0, len(raw))
	for i, m := range raw {
		if len(m) != 1 {
			return nil, fmt.Errorf("step %d: expected exactly one action key, got %d", i+1, len(m))
		}
		for action, p := range m {
			if p == nil {
				p = map[string]interface{}{}
			}
			steps = append(steps, Step{Action: action, Params: p})
		}
	}
	return steps, nil
}

// Outcome is the result of one step.
type Outcome struct {
	Step      int    `yaml:"step"                json:"step"`
	Action    string `yaml:"action"              json:"action"`
	Window    int    `yaml:"window,omitempty"    json:"window,omitempty"`
	Swallowed []int  `yaml:"swallowed,omitempty" json:"swallowed,omitempty"`
	Restored  []int  `yaml:"restored,omitempty"  json:"restored,omitempty"`
	Error     string `yaml:"error,omitempty"     json:"error,omitempty"`
}

// Result is the whole replay.
type Result struct {
	OK      bool           `yaml:"ok"      json:"ok"`
	Steps   []Outcome      `yaml:"steps"   json:"steps"`
	Windows []model.Window `yaml:"windows" json:"windows"`
}

// procTable is the scripted process table.
type procTable struct {
	parents map[int]int
	names   map[int]string
}

func (p *procTable) ParentPID(pid int) (int, error) {
	ppid, ok := p.parents[pid]
	if !ok {
		return 0, fmt.Errorf("process %d: no such process", pid)
	}
	return ppid, nil
}

func (p *procTable) Name(pid int) (string, error) {
	if _, ok := p.parents[pid]; !ok {
		return "", fmt.Errorf("process %d: no such process", pid)
	}
	return p.names[pid], nil
}

// Run replays steps. Hook failures are recorded on the step and do not stop
// the replay; malformed steps do.
func Run(ctx context.Context, steps []Step, table *hook.Table) (*Result, error) {
	if table == nil {
		table = hook.Default()
	}
	procs := &procTable{parents: map[int]int{}, names: map[int]string{}}
	sess := session.New(&platform.Provider{Processes: procs}, session.Options{Table: table, SkipStartup: true})

	res := &Result{OK: true}
	for i, st := range steps {
		out := Outcome{Step: i + 1, Action: st.Action}
		before := minimized(sess.Snapshot())

		switch st.Action {
		case "proc":
			pid := params.Int(st.Params, "pid", 0)
			if pid <= 0 {
				return nil, fmt.Errorf("step %d: proc needs a positive pid", i+1)
			}
			procs.parents[pid] = params.Int(st.Params, "ppid", 0)
			procs.names[pid] = params.String(st.Params, "name", "")

		case "window":
			w, err := windowParam(st.Params)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			out.Window = w.ID
			sess.Register(w)

		default:
			kind, err := platform.ParseEventKind(st.Action)
			if err != nil {
				return nil, fmt.Errorf("step %d: unknown action %q (use proc, window, open or close)", i+1, st.Action)
			}
			ev, err := eventParam(kind, st.Params)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			out.Window = ev.Window.ID
			report := sess.Handle(ctx, ev)
			out.Error = joinErrors(report.Failed)
		}

		after := minimized(sess.Snapshot())
		out.Swallowed, out.Restored = transitions(before, after)
		if out.Error != "" {
			res.OK = false
		}
		res.Steps = append(res.Steps, out)
	}
	res.Windows = sess.Snapshot()
	return res, nil
}

// eventParam builds the window event for an open (created) or close
// (destroyed) step. A close step only needs the window id.
func eventParam(kind platform.EventKind, p map[string]interface{}) (platform.WindowEvent, error) {
	if kind == platform.EventDestroyed {
		id := params.Int(p, "id", 0)
		if id <= 0 {
			return platform.WindowEvent{}, fmt.Errorf("%s needs a window id", kind)
		}
		return platform.WindowEvent{Kind: kind, Window: model.Window{ID: id}}, nil
	}
	w, err := windowParam(p)
	if err != nil {
		return platform.WindowEvent{}, err
	}
	return platform.WindowEvent{Kind: kind, Window: w}, nil
}

func windowParam(p map[string]interface{}) (model.Window, error) {
	w := model.Window{
		ID:    params.Int(p, "id", 0),
		PID:   params.Int(p, "pid", 0),
		Title: params.String(p, "title", ""),
		Type:  params.String(p, "type", ""),
		Class: params.Strings(p, "class"),
	}
	if w.ID <= 0 {
		return w, errors.New("window needs a positive id")
	}
	if len(w.Class) == 1 {
		w.Class = []string{w.Class[0], w.Class[0]}
	}
	return w, nil
}

func minimized(windows []model.Window) map[int]bool {
	m := make(map[int]bool, len(windows))
	for _, w := range windows {
		m[w.ID] = w.Minimized
	}
	return m
}

// transitions lists windows that became minimized and windows that stopped
// being minimized, by id.
func transitions(before, after map[int]bool) (swallowed, restored []int) {
	for id, now := range after {
		was, existed := before[id]
		switch {
		case now && !was && existed:
			swallowed = append(swallowed, id)
		case !now && was:
			restored = append(restored, id)
		}
	}
	sort.Ints(swallowed)
	sort.Ints(restored)
	return swallowed, restored
}

func joinErrors(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	return errors.Join(errs...).Error()
}

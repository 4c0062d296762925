// Package proctable reads process ancestry from a procfs mount.
package proctable

import (
	"fmt"

	"github.com/prometheus/procfs"

	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/platform"
)

// Table resolves processes through /proc.
type Table struct {
	fs procfs.FS
}

// New returns a Table over the default /proc mount.
func New() (*Table, error) {
	return NewAt(procfs.DefaultMountPoint)
}

// NewAt returns a Table over the procfs mounted at mountPoint.
func NewAt(mountPoint string) (*Table, error) {
	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, fmt.Errorf("open procfs %s: %w", mountPoint, err)
	}
	return &Table{fs: fs}, nil
}

// ParentPID returns the parent pid recorded in /proc/<pid>/stat.
func (t *Table) ParentPID(pid int) (int, error) {
	p, err := t.fs.Proc(pid)
	if err != nil {
		return 0, fmt.Errorf("process %d: %w", pid, err)
	}
	stat, err := p.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat process %d: %w", pid, err)
	}
	return stat.PPID, nil
}

// Name returns the command name from /proc/<pid>/comm.
func (t *Table) Name(pid int) (string, error) {
	p, err := t.fs.Proc(pid)
	if err != nil {
		return "", fmt.Errorf("process %d: %w", pid, err)
	}
	comm, err := p.Comm()
	if err != nil {
		return "", fmt.Errorf("comm of process %d: %w", pid, err)
	}
	return comm, nil
}

// Hop is one step of a process ancestry walk.
type Hop struct {
	PID  int    `yaml:"pid" json:"pid"`
	PPID int    `yaml:"ppid" json:"ppid"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Ancestry walks from pid towards init, returning at most limit hops
// (pid itself first). The walk ends early at a zero parent. A process
// whose name cannot be read keeps an empty Name.
func Ancestry(t platform.ProcessTable, pid, limit int) ([]Hop, error) {
	logger := log.WithComponent("proctable")
	var hops []Hop
	for i := 0; i < limit && pid > 0; i++ {
		ppid, err := t.ParentPID(pid)
		if err != nil {
			return hops, err
		}
		name, err := t.Name(pid)
		if err != nil {
			logger.Debug().Err(err).Int(log.FieldPID, pid).Msg("process name unavailable")
		}
		hops = append(hops, Hop{PID: pid, PPID: ppid, Name: name})
		pid = ppid
	}
	return hops, nil
}

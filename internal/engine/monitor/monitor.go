// Package monitor runs a live build under a pseudo-terminal and classifies its failures.
package monitor

import (
	"context"
	"io"

	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/nixbisect/internal/engine/scanner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Monitor spawns the interactive build, mirrors its output and scans it for failures.
type Monitor struct {
	executor ports.Executor
	tool     ports.BuildTool
	resize   ports.ResizeSource
	stdout   io.Writer
	patterns []scanner.Pattern
}

// New creates a Monitor that mirrors build output to stdout.
// Without patterns the scanner's defaults are used.
func New(
	executor ports.Executor,
	tool ports.BuildTool,
	resize ports.ResizeSource,
	stdout io.Writer,
	patterns ...scanner.Pattern,
) *Monitor {
	if stdout == nil {
		stdout = io.Discard
	}
	return &Monitor{
		executor: executor,
		tool:     tool,
		resize:   resize,
		stdout:   stdout,
		patterns: patterns,
	}
}

// Build realizes ids and returns their output locations.
// Any failure named in the build output is returned as *domain.BuildFailure;
// the process exit status is not consulted.
func (m *Monitor) Build(ctx context.Context, ids []domain.UnitID, opts []domain.BuildOption) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sc := scanner.New(m.patterns...)
	argv := m.tool.BuildCommand(ids, opts)

	proc, err := m.executor.Start(ctx, argv, io.MultiWriter(m.stdout, sc))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildStartFailed.Error()), "command", argv[0])
	}

	if err := m.wait(ctx, proc); err != nil {
		return nil, err
	}

	sc.Flush()
	if failed := sc.Failed(); len(failed) > 0 {
		return nil, domain.NewBuildFailure(failed...)
	}

	outputs, err := m.tool.Realize(ctx, ids)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRealizeFailed.Error())
	}
	return outputs, nil
}

// wait blocks until proc exits while forwarding terminal geometry to it.
func (m *Monitor) wait(ctx context.Context, proc ports.Process) error {
	if m.resize == nil {
		_ = proc.Wait()
		return ctx.Err()
	}

	events, stop := m.resize.Subscribe()
	m.syncSize(proc)

	done := make(chan struct{})
	g := new(errgroup.Group)
	g.Go(func() error {
		for {
			select {
			case <-done:
				return nil
			case _, ok := <-events:
				if !ok {
					return nil
				}
				m.syncSize(proc)
			}
		}
	})

	// The exit status is unreliable under a pty; failures come from the scanner.
	_ = proc.Wait()
	close(done)
	stop()
	_ = g.Wait()

	return ctx.Err()
}

// syncSize copies the controlling terminal's geometry to proc.
// Errors are ignored: the terminal may be gone or the child already exited.
func (m *Monitor) syncSize(proc ports.Process) {
	rows, cols, err := m.resize.Size()
	if err != nil {
		return
	}
	_ = proc.Resize(rows, cols)
}

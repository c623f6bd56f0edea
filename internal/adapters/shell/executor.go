// Package shell runs commands under a pseudo-terminal.
package shell

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/zerr"
)

// errSizeOutOfBounds is returned for geometries a pty cannot represent.
var errSizeOutOfBounds = errors.New("terminal size out of bounds")

// ptyGuard serializes geometry changes against closing the pty.
type ptyGuard struct {
	mu     sync.RWMutex
	ptmx   *os.File
	closed bool
}

func (g *ptyGuard) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	_ = g.ptmx.Close()
}

type ptyProcess struct {
	cmd    *exec.Cmd
	guard  *ptyGuard
	ioDone <-chan struct{}
}

// Wait waits for the command to exit and for its output to be drained.
func (p *ptyProcess) Wait() error {
	err := p.cmd.Wait()
	<-p.ioDone
	return err
}

// Resize sets the pty geometry. It is a no-op once the pty is closed.
func (p *ptyProcess) Resize(rows, cols int) error {
	if rows > math.MaxUint16 || cols > math.MaxUint16 || rows < 0 || cols < 0 {
		return errSizeOutOfBounds
	}

	p.guard.mu.RLock()
	defer p.guard.mu.RUnlock()
	if p.guard.closed {
		return nil
	}
	return pty.Setsize(p.guard.ptmx, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Start launches argv attached to a new pty and copies its merged output to out.
func (e *Executor) Start(ctx context.Context, argv []string, out io.Writer) (ports.Process, error) {
	if len(argv) == 0 {
		return nil, zerr.New("empty command")
	}
	if out == nil {
		out = io.Discard
	}

	//nolint:gosec // argv is built by the build tool adapter
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()

	e.logger.Debug("starting " + cmd.String())

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to start pty"), "command", argv[0])
	}

	guard := &ptyGuard{ptmx: ptmx}
	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer guard.close()

		// Reading the master fails with EIO once the child side is gone; that is the end of output.
		_, _ = io.Copy(out, ptmx)
	}()

	return &ptyProcess{
		cmd:    cmd,
		guard:  guard,
		ioDone: ioDone,
	}, nil
}

// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// Process represents a running command attached to a pseudo-terminal.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Process interface {
	// Wait blocks until the command exits and its output has been drained.
	Wait() error
	// Resize sets the terminal geometry of the command.
	// It must not fail fatally once the terminal is closed.
	Resize(rows, cols int) error
}

// Executor starts commands under a pseudo-terminal.
type Executor interface {
	// Start launches argv and copies its merged output to out until the terminal closes.
	Start(ctx context.Context, argv []string, out io.Writer) (Process, error)
}

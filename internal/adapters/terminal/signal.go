// Package terminal reports the geometry of the controlling terminal and its changes.
package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// SignalSource implements ports.ResizeSource with SIGWINCH.
type SignalSource struct {
	fd int
}

// NewSignalSource creates a SignalSource measuring f, usually os.Stdout.
func NewSignalSource(f *os.File) *SignalSource {
	return &SignalSource{fd: int(f.Fd())}
}

// Size returns the terminal geometry as rows and columns.
func (s *SignalSource) Size() (rows, cols int, err error) {
	width, height, err := term.GetSize(s.fd)
	if err != nil {
		return 0, 0, err
	}
	return height, width, nil
}

// IsTerminal reports whether the measured descriptor is a terminal.
func (s *SignalSource) IsTerminal() bool {
	return term.IsTerminal(s.fd)
}

// Subscribe delivers one event per observed resize.
// Bursts of signals collapse into a single pending event.
func (s *SignalSource) Subscribe() (<-chan struct{}, func()) {
	sigs := make(chan os.Signal, 1)
	events := make(chan struct{}, 1)
	done := make(chan struct{})
	signal.Notify(sigs, syscall.SIGWINCH)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case <-sigs:
				select {
				case events <- struct{}{}:
				default:
				}
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
			wg.Wait()
		})
	}
	return events, stop
}

package ports

// ResizeSource reports the controlling terminal's geometry and its changes.
//
//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks
type ResizeSource interface {
	// Size returns the current terminal geometry.
	Size() (rows, cols int, err error)
	// Subscribe returns a channel that receives a value on every resize
	// and a function that stops delivery.
	Subscribe() (<-chan struct{}, func())
}

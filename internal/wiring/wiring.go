// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nixbisect/internal/adapters/config"
	_ "go.trai.ch/nixbisect/internal/adapters/controller"
	_ "go.trai.ch/nixbisect/internal/adapters/git"
	_ "go.trai.ch/nixbisect/internal/adapters/logger"
	_ "go.trai.ch/nixbisect/internal/adapters/shell"
	_ "go.trai.ch/nixbisect/internal/adapters/telemetry"
	_ "go.trai.ch/nixbisect/internal/adapters/terminal"
	// Register app nodes.
	_ "go.trai.ch/nixbisect/internal/app"
)

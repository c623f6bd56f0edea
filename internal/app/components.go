package app

import (
	"go.trai.ch/nixbisect/internal/adapters/controller" //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App        *App
	Logger     ports.Logger
	Controller *controller.Controller
}

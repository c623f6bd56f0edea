package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixbisect/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/adapters/controller" //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/adapters/git"        //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/adapters/shell"      //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/adapters/terminal"   //nolint:depguard // Wired in app layer
	"go.trai.ch/nixbisect/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			shell.NodeID,
			terminal.NodeID,
			git.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			resize, err := graft.Dep[ports.ResizeSource](ctx)
			if err != nil {
				return nil, err
			}

			vcs, err := graft.Dep[*git.Client](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, executor, resize, vcs, tracer), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			controller.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			ctrl, err := graft.Dep[*controller.Controller](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Controller: ctrl}, nil
		},
	})
}

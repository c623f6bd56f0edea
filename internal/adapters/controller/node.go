package controller

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixbisect/internal/adapters/logger"
	"go.trai.ch/nixbisect/internal/core/ports"
)

// NodeID is the unique identifier for the controller Graft node.
const NodeID graft.ID = "adapter.controller"

func init() {
	graft.Register(graft.Node[*Controller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Controller, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}

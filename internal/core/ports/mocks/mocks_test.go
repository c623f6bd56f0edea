package mocks_test

import (
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/nixbisect/internal/core/ports/mocks"
)

var (
	_ ports.BuildTool     = (*mocks.MockBuildTool)(nil)
	_ ports.Builder       = (*mocks.MockBuilder)(nil)
	_ ports.LogClassifier = (*mocks.MockLogClassifier)(nil)
	_ ports.LogSource     = (*mocks.MockLogSource)(nil)
	_ ports.ResultCache   = (*mocks.MockResultCache)(nil)
	_ ports.ConfigLoader  = (*mocks.MockConfigLoader)(nil)
	_ ports.Process       = (*mocks.MockProcess)(nil)
	_ ports.Executor      = (*mocks.MockExecutor)(nil)
	_ ports.Logger        = (*mocks.MockLogger)(nil)
	_ ports.Span          = (*mocks.MockSpan)(nil)
	_ ports.Tracer        = (*mocks.MockTracer)(nil)
	_ ports.ResizeSource  = (*mocks.MockResizeSource)(nil)
	_ ports.Patcher       = (*mocks.MockPatcher)(nil)
	_ ports.WorkTree      = (*mocks.MockWorkTree)(nil)
)

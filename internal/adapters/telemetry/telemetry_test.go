package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/nixbisect/internal/adapters/telemetry"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRecordedTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return telemetry.NewOTelTracer(provider), recorder
}

func TestOTelTracer_RecordsAttributes(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(context.Background(), "bisect.step")
	span.SetAttribute("target", "hello")
	span.SetAttribute("units", 3)
	span.SetAttribute("verdict", domain.VerdictBad)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "bisect.step", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("target", "hello"))
	assert.Contains(t, ended[0].Attributes(), attribute.Int("units", 3))
	assert.Contains(t, ended[0].Attributes(), attribute.String("verdict", "bad"))
}

func TestOTelTracer_RecordError(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(context.Background(), "bisect.resolve")
	span.RecordError(errors.New("no such attribute"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "no such attribute", ended[0].Status().Description)
}

func TestOTelTracer_NestsSpans(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	ctx, parent := tracer.Start(context.Background(), "bisect.step")
	_, child := tracer.Start(ctx, "bisect.build-target")
	child.End()
	parent.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestLogBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "bisect.step finished in")
	}))
	log.EXPECT().Debug(gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "bisect.patching failed") && strings.HasSuffix(msg, ": conflict")
	}))

	provider := telemetry.NewProvider(log)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracer(provider)

	_, span := tracer.Start(context.Background(), "bisect.step")
	span.End()

	_, failed := tracer.Start(context.Background(), "bisect.patching")
	failed.RecordError(errors.New("conflict"))
	failed.End()
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "anything")
	assert.Equal(t, ctx, got)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}

package controller_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nixbisect/internal/adapters/controller"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		verdict domain.Verdict
		want    int
	}{
		{domain.VerdictGood, 0},
		{domain.VerdictBad, 1},
		{domain.VerdictSkip, 125},
		{domain.Verdict(42), 128},
		{domain.VerdictUnknown, 128},
	}

	for _, tt := range tests {
		t.Run(tt.verdict.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, controller.ExitCode(tt.verdict))
		})
	}
}

func TestController_Quit(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("skip because of dependencies failed to build")

	c := controller.New(log)
	code := c.Quit(domain.Skip("dependencies failed to build"))

	assert.Equal(t, controller.ExitSkip, code)
}

func TestController_QuitWithoutReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("good")

	assert.Equal(t, controller.ExitGood, controller.New(log).Quit(domain.Decision{Verdict: domain.VerdictGood}))
}

func TestController_Abort(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	boom := errors.New("boom")
	log.EXPECT().Error(boom)

	c := controller.New(log)
	assert.Equal(t, controller.ExitAbort, c.Abort(boom))
	assert.Equal(t, controller.ExitAbort, c.Abort(nil))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "bad because of marker found in log",
		controller.Describe(domain.Bad("marker found in log")))
}

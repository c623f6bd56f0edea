// Package controller reports bisection verdicts using the git bisect run exit-code protocol.
package controller

import (
	"fmt"

	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
)

// Exit codes understood by git bisect run.
const (
	ExitGood  = 0
	ExitBad   = 1
	ExitSkip  = 125
	ExitAbort = 128
)

// Controller turns decisions and fatal errors into exit codes.
type Controller struct {
	logger ports.Logger
}

// New creates a new Controller.
func New(logger ports.Logger) *Controller {
	return &Controller{logger: logger}
}

// ExitCode maps a verdict to its exit code. Unknown verdicts abort.
func ExitCode(v domain.Verdict) int {
	switch v {
	case domain.VerdictGood:
		return ExitGood
	case domain.VerdictBad:
		return ExitBad
	case domain.VerdictSkip:
		return ExitSkip
	default:
		return ExitAbort
	}
}

// Quit logs the decision and returns the exit code for its verdict.
func (c *Controller) Quit(d domain.Decision) int {
	c.logger.Info(Describe(d))
	return ExitCode(d.Verdict)
}

// Abort logs err and returns the abort exit code.
func (c *Controller) Abort(err error) int {
	if err != nil {
		c.logger.Error(err)
	}
	return ExitAbort
}

// Describe renders a decision the way Quit logs it.
func Describe(d domain.Decision) string {
	if d.Reason == "" {
		return d.Verdict.String()
	}
	return fmt.Sprintf("%s because of %s", d.Verdict, d.Reason)
}

// Package nix implements the BuildTool port on top of the nix command line tools.
package nix

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner runs a command to completion and returns its captured output.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// execRunner runs commands with os/exec.
func execRunner(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error) {
	var outBuf, errBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// Client implements ports.BuildTool.
type Client struct {
	nixFile string
	run     Runner
	logger  ports.Logger
}

// NewClient creates a Client evaluating attributes from nixFile.
func NewClient(nixFile string, logger ports.Logger) *Client {
	if nixFile == "" {
		nixFile = "."
	}
	return &Client{
		nixFile: nixFile,
		run:     execRunner,
		logger:  logger,
	}
}

// WithRunner replaces the command runner.
func (c *Client) WithRunner(run Runner) *Client {
	c.run = run
	return c
}

func (c *Client) exec(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error) {
	if c.logger != nil {
		c.logger.Debug(name + " " + strings.Join(args, " "))
	}
	return c.run(ctx, name, args...)
}

// commandError turns a failed command's stderr into the cause of err.
func commandError(err error, stderr []byte, msg string) error {
	if detail := strings.TrimSpace(string(stderr)); detail != "" {
		err = zerr.New(detail)
	}
	return zerr.Wrap(err, msg)
}

// Instantiate evaluates name as an expression with the attributes of the nix file in scope.
func (c *Client) Instantiate(ctx context.Context, name, system string) (domain.UnitID, error) {
	abs, err := filepath.Abs(c.nixFile)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve nix file"), "nix_file", c.nixFile)
	}

	args := []string{"-E", "with (import " + abs + " {}); " + name}
	if system != "" {
		args = append(args, "--option", "system", system)
	}

	stdout, stderr, err := c.exec(ctx, "nix-instantiate", args...)
	if err != nil {
		return "", zerr.With(commandError(err, stderr, "nix-instantiate failed"), "attribute", name)
	}

	// Multi-output expressions print one derivation per line; the first one is the unit.
	first, _, _ := strings.Cut(strings.TrimSpace(string(stdout)), "\n")
	if first == "" {
		return "", zerr.With(zerr.New("nix-instantiate printed no derivation"), "attribute", name)
	}
	return domain.UnitID(strings.TrimSpace(first)), nil
}

// DryRun asks nix-store which units realizing ids would build or fetch.
func (c *Client) DryRun(ctx context.Context, ids []domain.UnitID) (domain.DryRunPlan, error) {
	args := append([]string{"--realize", "--dry-run"}, unitArgs(ids)...)

	_, stderr, err := c.exec(ctx, "nix-store", args...)
	if err != nil {
		return domain.DryRunPlan{}, commandError(err, stderr, domain.ErrDryRunFailed.Error())
	}

	// The plan is printed on stderr.
	return ParseDryRun(string(stderr))
}

// Log returns the log nix stored for id. ok is false when nix has none.
func (c *Client) Log(ctx context.Context, id domain.UnitID) (string, bool, error) {
	stdout, _, err := c.exec(ctx, "nix", "log", "-f", c.nixFile, id.String())
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrLogQueryFailed.Error()), "unit", id.String())
	}
	return string(stdout), true, nil
}

// Realize returns the output paths of already built ids.
func (c *Client) Realize(ctx context.Context, ids []domain.UnitID) ([]string, error) {
	args := append([]string{"--realize"}, unitArgs(ids)...)

	stdout, stderr, err := c.exec(ctx, "nix-store", args...)
	if err != nil {
		return nil, commandError(err, stderr, "nix-store --realize failed")
	}

	var paths []string
	for _, line := range strings.Split(string(stdout), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// BuildCommand returns the argv of an interactive `nix build`.
// Options are passed through as --option pairs.
func (c *Client) BuildCommand(ids []domain.UnitID, opts []domain.BuildOption) []string {
	argv := []string{"nix", "build", "--no-link"}
	for _, opt := range opts {
		argv = append(argv, "--option", opt.Name, opt.Value)
	}
	return append(argv, unitArgs(ids)...)
}

func unitArgs(ids []domain.UnitID) []string {
	args := make([]string, len(ids))
	for i, id := range ids {
		args[i] = id.String()
	}
	return args
}

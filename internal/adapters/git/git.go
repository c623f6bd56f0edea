// Package git applies patches to, and checkpoints, the working tree under bisection.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.Patcher and ports.WorkTree with the git command line.
type Client struct {
	dir    string
	logger ports.Logger
}

// NewClient creates a Client operating on the repository containing dir.
// An empty dir means the current working directory.
func NewClient(dir string, logger ports.Logger) *Client {
	return &Client{dir: dir, logger: logger}
}

func (c *Client) git(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("git " + strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			err = zerr.New(detail)
		}
		return "", zerr.With(zerr.Wrap(err, "git "+args[0]+" failed"), "args", strings.Join(args, " "))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Apply cherry-picks rev. A pick that does not apply cleanly is aborted.
func (c *Client) Apply(ctx context.Context, rev string) error {
	if _, err := c.git(ctx, "cherry-pick", rev); err != nil {
		if _, abortErr := c.git(ctx, "cherry-pick", "--abort"); abortErr != nil {
			c.logger.Warn("could not abort cherry-pick of " + rev)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrPatchApplyFailed.Error()), "revision", rev)
	}
	c.logger.Info("cherry-picked " + rev)
	return nil
}

// Checkpoint records HEAD and any uncommitted changes to tracked files.
// The returned function resets the tree to HEAD and reapplies those changes.
func (c *Client) Checkpoint(ctx context.Context) (func(context.Context) error, error) {
	head, err := c.git(ctx, "rev-parse", "HEAD")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCheckpointFailed.Error())
	}

	// Prints nothing when the tree is clean.
	stash, err := c.git(ctx, "stash", "create")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCheckpointFailed.Error())
	}

	restore := func(ctx context.Context) error {
		if _, err := c.git(ctx, "reset", "--hard", head); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrRestoreFailed.Error()), "head", head)
		}
		if stash == "" {
			return nil
		}
		if _, err := c.git(ctx, "stash", "apply", stash); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrRestoreFailed.Error()), "stash", stash)
		}
		return nil
	}
	return restore, nil
}

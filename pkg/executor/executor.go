// Package executor runs external commands, capturing stdout as the result
// and folding stderr into the returned error.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// Run executes a command in the current working directory.
	Run(ctx context.Context, name string, args ...string) (string, error)
	// RunInDir executes a command with dir as its working directory.
	RunInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
	// RunMerged executes a command and returns stdout and stderr
	// interleaved. Output is returned even when the command exits nonzero;
	// some tools (ffmpeg) report through stderr on success.
	RunMerged(ctx context.Context, name string, args ...string) (string, error)
}

type runner struct{}

// New returns the default Runner backed by os/exec.
func New() Runner {
	return runner{}
}

func (runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	return run(ctx, "", name, args...)
}

func (runner) RunInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return run(ctx, dir, name, args...)
}

func (runner) RunMerged(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.String(), err
}

func run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return stdout.String(), nil
}

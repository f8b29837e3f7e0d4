package tidy

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrToolNotRunnable means the analyzer (or its proxy) could not be started.
var ErrToolNotRunnable = errors.New("tool not runnable")

// exitCoder is satisfied by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// ExecutorResult represents the result of executing a command.
type ExecutorResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Error    error
	TimedOut bool
}

// CommandExecutor runs the resolved command against single files.
type CommandExecutor struct {
	spec    CommandSpec
	timeout time.Duration
	deps    *Dependencies
}

// NewCommandExecutor creates a new command executor. A zero timeout waits for
// the tool indefinitely.
func NewCommandExecutor(spec CommandSpec, timeout time.Duration, deps *Dependencies) *CommandExecutor {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	return &CommandExecutor{
		spec:    spec,
		timeout: timeout,
		deps:    deps,
	}
}

// Execute analyses one file. The returned error is only set when the tool
// could not be run at all; a tool that ran and failed is reported through
// the result's exit code.
func (ce *CommandExecutor) Execute(ctx context.Context, file string, args []string) (*ExecutorResult, error) {
	if ce.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ce.timeout)
		defer cancel()
	}

	output, err := ce.deps.Runner.RunContext(ctx, ce.spec.Name, ce.spec.Argv(file, args)...)

	var stdout, stderr []byte
	if output != nil {
		stdout = output.Stdout
		stderr = output.Stderr
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &ExecutorResult{
			ExitCode: 1,
			Stdout:   stdout,
			Stderr:   stderr,
			Error:    fmt.Errorf("%s timed out after %v", file, ce.timeout),
			TimedOut: true,
		}, nil
	}

	if err == nil {
		return &ExecutorResult{Stdout: stdout, Stderr: stderr}, nil
	}

	var exitErr exitCoder
	if !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("%w: %s: %w", ErrToolNotRunnable, ce.spec.Name, err)
	}

	// Killed by a signal
	exitCode := exitErr.ExitCode()
	if exitCode < 0 {
		exitCode = 1
	}

	return &ExecutorResult{
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Error:    err,
	}, nil
}

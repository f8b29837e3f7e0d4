package tidy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// FileSystem provides filesystem operations.
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
}

// RunOutput holds the separately captured streams of a finished command.
type RunOutput struct {
	Stdout []byte
	Stderr []byte
}

// CommandRunner executes external commands.
type CommandRunner interface {
	RunContext(ctx context.Context, name string, args ...string) (*RunOutput, error)
	LookPath(file string) (string, error)
}

// OutputWriter writes output to various destinations.
type OutputWriter interface {
	io.Writer
}

// Dependencies holds all external dependencies.
type Dependencies struct {
	FS     FileSystem
	Runner CommandRunner
	Stderr OutputWriter
}

// Production implementations

type realFileSystem struct{}

func (r *realFileSystem) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	return info, nil
}

type realCommandRunner struct{}

func (r *realCommandRunner) RunContext(ctx context.Context, name string, args ...string) (*RunOutput, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 - forwarding hook arguments is the point
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	output := &RunOutput{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		return output, fmt.Errorf("run command %s: %w", name, err)
	}
	return output, nil
}

func (r *realCommandRunner) LookPath(file string) (string, error) {
	path, err := exec.LookPath(file)
	if err != nil {
		return "", fmt.Errorf("look path %s: %w", file, err)
	}
	return path, nil
}

// NewDefaultDependencies creates production dependencies.
func NewDefaultDependencies() *Dependencies {
	return &Dependencies{
		FS:     &realFileSystem{},
		Runner: &realCommandRunner{},
		Stderr: os.Stderr,
	}
}

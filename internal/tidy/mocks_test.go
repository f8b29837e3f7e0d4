package tidy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// mockFileInfo implements os.FileInfo for testing.
type mockFileInfo struct {
	name  string
	isDir bool
}

func (m *mockFileInfo) Name() string { return m.name }
func (m *mockFileInfo) Size() int64  { return 0 }
func (m *mockFileInfo) Mode() os.FileMode {
	if m.isDir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() any           { return nil }

// mockFileSystem implements FileSystem for testing.
type mockFileSystem struct {
	files map[string]bool // path -> isDir
	stats []string
}

func newMockFileSystem(paths ...string) *mockFileSystem {
	files := make(map[string]bool, len(paths))
	for _, p := range paths {
		files[p] = false
	}
	return &mockFileSystem{files: files}
}

func (m *mockFileSystem) Stat(name string) (os.FileInfo, error) {
	m.stats = append(m.stats, name)
	isDir, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("stat %s: %w", name, fs.ErrNotExist)
	}
	return &mockFileInfo{name: name, isDir: isDir}, nil
}

// mockExitError mimics *exec.ExitError.
type mockExitError struct {
	code int
}

func (e *mockExitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e *mockExitError) ExitCode() int { return e.code }

type runCall struct {
	name string
	args []string
}

// mockCommandRunner implements CommandRunner for testing.
type mockCommandRunner struct {
	runContextFunc func(ctx context.Context, name string, args ...string) (*RunOutput, error)
	lookPathFunc   func(file string) (string, error)
	calls          []runCall
	lookups        []string
}

func (m *mockCommandRunner) RunContext(ctx context.Context, name string, args ...string) (*RunOutput, error) {
	m.calls = append(m.calls, runCall{name: name, args: append([]string(nil), args...)})
	if m.runContextFunc != nil {
		return m.runContextFunc(ctx, name, args...)
	}
	return &RunOutput{}, nil
}

func (m *mockCommandRunner) LookPath(file string) (string, error) {
	m.lookups = append(m.lookups, file)
	if m.lookPathFunc != nil {
		return m.lookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

// toolResult is a canned clang-tidy run.
type toolResult struct {
	stdout string
	stderr string
	code   int
}

// perFile returns a run function answering from results keyed by file name,
// which is the first argument after any proxy prefix.
func perFile(results map[string]toolResult) func(ctx context.Context, name string, args ...string) (*RunOutput, error) {
	return func(_ context.Context, _ string, args ...string) (*RunOutput, error) {
		for _, arg := range args {
			res, ok := results[arg]
			if !ok {
				continue
			}
			out := &RunOutput{Stdout: []byte(res.stdout), Stderr: []byte(res.stderr)}
			if res.code != 0 {
				return out, fmt.Errorf("run command: %w", &mockExitError{code: res.code})
			}
			return out, nil
		}
		return &RunOutput{}, nil
	}
}

var errNotFound = errors.New("executable file not found in $PATH")

// TestDependencies wraps Dependencies with mock implementations for testing.
type TestDependencies struct {
	*Dependencies
	MockFS     *mockFileSystem
	MockRunner *mockCommandRunner
	Stderr     *bytes.Buffer
}

func createTestDependencies(files ...string) *TestDependencies {
	mockFS := newMockFileSystem(files...)
	mockRunner := &mockCommandRunner{}
	stderr := &bytes.Buffer{}

	return &TestDependencies{
		Dependencies: &Dependencies{
			FS:     mockFS,
			Runner: mockRunner,
			Stderr: stderr,
		},
		MockFS:     mockFS,
		MockRunner: mockRunner,
		Stderr:     stderr,
	}
}

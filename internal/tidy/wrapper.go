// Package tidy runs clang-tidy as a pre-commit hook: one run per file,
// optionally through a caching proxy, with warning-count banners filtered out
// of the tool's stderr and the results folded into one exit code.
package tidy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/clang-tidy-hook/internal/output"
)

// Config controls how the wrapper finds and runs the analyzer.
type Config struct {
	// Tool is the analyzer executable, clang-tidy unless overridden.
	Tool string
	// ProxyPath is where the caching proxy lives, if anywhere.
	ProxyPath string
	// DisableCache ignores the proxy even when it exists.
	DisableCache bool
	// Timeout bounds each per-file run. Zero means no limit.
	Timeout time.Duration
	// FailFast stops after the first file that fails.
	FailFast bool
}

// Wrapper is the clang-tidy hook.
type Wrapper struct {
	cfg    Config
	logger *slog.Logger
	deps   *Dependencies
}

// NewWrapper creates a wrapper. Nil logger and deps fall back to a silent
// logger and the production dependencies.
func NewWrapper(cfg Config, logger *slog.Logger, deps *Dependencies) *Wrapper {
	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	return &Wrapper{cfg: cfg, logger: logger, deps: deps}
}

// Run analyses every target file in args and returns the process exit code.
func (w *Wrapper) Run(ctx context.Context, args []string) int {
	opts, err := ParseArgs(args, w.deps.FS)
	if err != nil {
		w.fail(err)
		return 1
	}
	if len(opts.Files) == 0 {
		w.logger.Debug("no files to analyse", "args", args)
		return 0
	}

	spec, err := w.resolveCommand()
	if err != nil {
		w.fail(err)
		return 1
	}

	if opts.Version != "" {
		if verr := CheckVersion(ctx, w.deps.Runner, w.cfg.Tool, opts.Version); verr != nil {
			w.fail(verr)
			return 1
		}
		w.logger.Debug("version check passed", "tool", w.cfg.Tool, "want", opts.Version)
	}

	executor := NewCommandExecutor(spec, w.cfg.Timeout, w.deps)
	failures := make(map[string]string)
	exitCode := 0

	for _, file := range opts.Files {
		code, ferr := w.checkFile(ctx, executor, file, opts)
		if ferr != nil {
			w.fail(ferr)
			return 1
		}
		if code == 0 {
			continue
		}

		failures[file] = fmt.Sprintf("exit code %d", code)
		if exitCode == 0 {
			exitCode = code
		}
		if w.cfg.FailFast {
			break
		}
	}

	if len(failures) > 0 {
		summary := output.NewListRenderer().RenderMap(w.cfg.Tool+" failed", failures)
		_, _ = fmt.Fprint(w.deps.Stderr, summary)
	}

	return exitCode
}

// resolveCommand probes for the caching proxy once and makes sure whatever
// will be run is actually there.
func (w *Wrapper) resolveCommand() (CommandSpec, error) {
	proxyExists := false
	if !w.cfg.DisableCache && w.cfg.ProxyPath != "" {
		if _, err := w.deps.FS.Stat(w.cfg.ProxyPath); err == nil {
			proxyExists = true
		}
	}

	spec := ResolveCommand(w.cfg.Tool, w.cfg.ProxyPath, proxyExists)
	if !spec.Proxied() {
		if _, err := w.deps.Runner.LookPath(spec.Name); err != nil {
			return CommandSpec{}, fmt.Errorf("%w: %s not found: %w", ErrToolNotRunnable, spec.Name, err)
		}
	}

	w.logger.Debug("resolved command", "command", spec.String(), "proxied", spec.Proxied())
	return spec, nil
}

// checkFile runs the analyzer on one file and prints its output if it failed.
func (w *Wrapper) checkFile(ctx context.Context, executor *CommandExecutor, file string, opts *Options) (int, error) {
	result, err := executor.Execute(ctx, file, opts.Args)
	if err != nil {
		return 0, err
	}

	stderr := SanitizeStderr(result.Stderr)
	code := Decide(result.ExitCode, stderr, opts.FixMode)

	w.logger.Debug("analysed file",
		"file", file,
		"tool_exit_code", result.ExitCode,
		"exit_code", code,
		"fix_mode", opts.FixMode,
	)

	if result.TimedOut {
		_, _ = fmt.Fprintln(w.deps.Stderr, output.Blocking(result.Error.Error()))
	}
	if code != 0 {
		_, _ = w.deps.Stderr.Write(result.Stdout)
		_, _ = w.deps.Stderr.Write(stderr)
	}

	return code, nil
}

func (w *Wrapper) fail(err error) {
	w.logger.Debug("hook aborted", "error", err)
	_, _ = fmt.Fprintln(w.deps.Stderr, output.Blocking(err.Error()))
}

// Package main implements the clang-tidy-hook CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/clang-tidy-hook/internal/config"
	"github.com/Veraticus/clang-tidy-hook/internal/logging"
	"github.com/Veraticus/clang-tidy-hook/internal/output"
	"github.com/Veraticus/clang-tidy-hook/internal/tidy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, output.Blocking(err.Error()))
		os.Exit(1)
	}

	exitCode := 0
	cmd := newRootCmd(cfg, nil, &exitCode)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, output.Blocking(err.Error()))
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// newRootCmd builds the hook command. Flag parsing is disabled because every
// token belongs to clang-tidy or names a file; the wrapper sorts them out.
func newRootCmd(cfg *config.Config, deps *tidy.Dependencies, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "clang-tidy-hook [files...] [clang-tidy flags...]",
		Short: "Run clang-tidy on each file as a pre-commit hook",
		Long: `clang-tidy-hook runs clang-tidy once per file, through the cltcache.py
caching proxy when one is installed two directories above this binary.

"N warnings generated." banners are dropped from clang-tidy's stderr. Any
other stderr output fails the hook; with -fix or --fix-errors, leftover
stderr fails it with exit code 1.

Pass --version=<v> to require a specific clang-tidy version.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(logging.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
			})
			wrapper := tidy.NewWrapper(wrapperConfig(cfg, os.Executable), logger, deps)
			*exitCode = wrapper.Run(cmd.Context(), args)
			return nil
		},
	}
}

// wrapperConfig maps file/env configuration onto the wrapper. Without an
// explicit cache_proxy the proxy is looked for relative to the executable.
func wrapperConfig(cfg *config.Config, executable func() (string, error)) tidy.Config {
	proxy := cfg.Tidy.CacheProxy
	if proxy == "" {
		if exe, err := executable(); err == nil {
			proxy = tidy.DefaultProxyPath(exe)
		}
	}

	return tidy.Config{
		Tool:         cfg.Tidy.Command,
		ProxyPath:    proxy,
		DisableCache: cfg.Tidy.DisableCache,
		Timeout:      cfg.Tidy.Timeout(),
		FailFast:     cfg.Tidy.FailFast,
	}
}

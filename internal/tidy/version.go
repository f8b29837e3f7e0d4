package tidy

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// versionLookbehind precedes the version number in clang-tidy --version output.
const versionLookbehind = "LLVM version "

// ErrVersionMismatch means the installed tool is not the version the hook requires.
var ErrVersionMismatch = errors.New("version mismatch")

var versionPattern = regexp.MustCompile(regexp.QuoteMeta(versionLookbehind) + `([^\s]+)`)

// ParseVersion extracts the version from clang-tidy --version output.
func ParseVersion(output string) (string, bool) {
	match := versionPattern.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// CheckVersion runs "<tool> --version" and compares the reported version
// against want. "15" accepts 15.0.7 but not 150.1.
func CheckVersion(ctx context.Context, runner CommandRunner, tool, want string) error {
	output, err := runner.RunContext(ctx, tool, flagVersion)
	if err != nil {
		var exitErr exitCoder
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s: %w", ErrToolNotRunnable, tool, err)
		}
	}

	var text string
	if output != nil {
		text = string(output.Stdout) + string(output.Stderr)
	}

	got, ok := ParseVersion(text)
	if !ok {
		return fmt.Errorf("%w: could not find %q in %s %s output", ErrVersionMismatch, versionLookbehind, tool, flagVersion)
	}
	if got != want && !strings.HasPrefix(got, want+".") {
		return fmt.Errorf("%w: %s is version %s, hook requires %s", ErrVersionMismatch, tool, got, want)
	}
	return nil
}

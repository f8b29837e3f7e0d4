package tidy

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultTool is the analyzer invoked when nothing else is configured.
	DefaultTool = "clang-tidy"
	// CacheProxyName is the file name of the caching proxy script.
	CacheProxyName = "cltcache.py"
)

// CommandSpec is the executable chosen for one invocation of the hook.
type CommandSpec struct {
	Name   string
	Prefix []string
}

// ResolveCommand picks between running the tool directly and running it
// through the caching proxy, which receives the tool name as its first argument.
func ResolveCommand(tool, proxyPath string, proxyExists bool) CommandSpec {
	if !proxyExists || proxyPath == "" {
		return CommandSpec{Name: tool}
	}
	return CommandSpec{Name: proxyPath, Prefix: []string{tool}}
}

// Proxied reports whether the command goes through the caching proxy.
func (c CommandSpec) Proxied() bool {
	return len(c.Prefix) > 0
}

// Argv returns the arguments for analysing a single file.
func (c CommandSpec) Argv(file string, args []string) []string {
	argv := make([]string, 0, len(c.Prefix)+1+len(args))
	argv = append(argv, c.Prefix...)
	argv = append(argv, file)
	argv = append(argv, args...)
	return argv
}

// String renders the command line without the per-file part.
func (c CommandSpec) String() string {
	return strings.Join(append([]string{c.Name}, c.Prefix...), " ")
}

// DefaultProxyPath locates the caching proxy two directories above the
// wrapper executable.
func DefaultProxyPath(executable string) string {
	if executable == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(filepath.Dir(executable)), CacheProxyName)
}

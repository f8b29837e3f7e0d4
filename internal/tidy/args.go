package tidy

import (
	"errors"
	"fmt"
	"strings"
)

// Flags the wrapper interprets itself. Everything else goes to clang-tidy.
const (
	FlagFix       = "-fix"
	FlagFixErrors = "--fix-errors"
	flagVersion   = "--version"
)

// ErrUsage reports arguments the wrapper cannot make sense of.
var ErrUsage = errors.New("usage error")

// Options is the parsed form of the hook's command line.
type Options struct {
	// Files are the targets, one clang-tidy run each, in input order.
	Files []string
	// Args are forwarded verbatim after the file name.
	Args []string
	// FixMode is set by either -fix or --fix-errors.
	FixMode bool
	// FixErrors is set only by --fix-errors.
	FixErrors bool
	// Version, when non-empty, is the clang-tidy version the hook requires.
	Version string
}

// argSeparator ends clang-tidy's own options; the rest is the compile command.
const argSeparator = "--"

// valueOptions are clang-tidy options whose value may follow as the next
// token. Names are stored without leading dashes.
var valueOptions = map[string]bool{
	"checks":                true,
	"config":                true,
	"config-file":           true,
	"exclude-header-filter": true,
	"export-fixes":          true,
	"extra-arg":             true,
	"extra-arg-before":      true,
	"format-style":          true,
	"header-filter":         true,
	"line-filter":           true,
	"load":                  true,
	"p":                     true,
	"store-check-profile":   true,
	"vfsoverlay":            true,
	"warnings-as-errors":    true,
}

// takesValue reports whether arg is a value option in space-separated form.
func takesValue(arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}
	return valueOptions[strings.TrimLeft(arg, "-")]
}

// ParseArgs splits raw hook arguments into target files and pass-through
// flags. A token is a file when it does not look like a flag, is not the
// value of the preceding option, comes before a lone "--" and names an
// existing regular file. Everything else is forwarded in order.
func ParseArgs(args []string, fs FileSystem) (*Options, error) {
	opts := &Options{}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == argSeparator {
			opts.Args = append(opts.Args, args[i:]...)
			break
		}

		if takesValue(arg) && i+1 < len(args) {
			opts.Args = append(opts.Args, arg, args[i+1])
			i++
			continue
		}

		switch {
		case arg == flagVersion:
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return nil, fmt.Errorf("%w: %s requires a value", ErrUsage, flagVersion)
			}
			i++
			opts.Version = args[i]
			continue
		case strings.HasPrefix(arg, flagVersion+"="):
			opts.Version = strings.TrimPrefix(arg, flagVersion+"=")
			if opts.Version == "" {
				return nil, fmt.Errorf("%w: %s requires a value", ErrUsage, flagVersion)
			}
			continue
		case arg == FlagFix:
			opts.FixMode = true
		case arg == FlagFixErrors:
			opts.FixMode = true
			opts.FixErrors = true
		}

		if isTargetFile(arg, fs) {
			opts.Files = append(opts.Files, arg)
			continue
		}
		opts.Args = append(opts.Args, arg)
	}

	return opts, nil
}

func isTargetFile(arg string, fs FileSystem) bool {
	if arg == "" || strings.HasPrefix(arg, "-") {
		return false
	}
	info, err := fs.Stat(arg)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

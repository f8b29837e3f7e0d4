package tidy

import "regexp"

// bannerPattern matches clang-tidy's "N warnings generated." summaries.
var bannerPattern = regexp.MustCompile(`(?i)[\d,]+ warnings? \S+(\s+|$)`)

// SanitizeStderr drops warning-count banners and leaves everything else as is.
func SanitizeStderr(stderr []byte) []byte {
	if len(stderr) == 0 {
		return stderr
	}
	return bannerPattern.ReplaceAll(stderr, nil)
}

// Decide maps a finished run to the exit code reported for that file.
// Residual stderr always fails; in fix mode it fails with exit code 1 even if
// the tool itself reported success.
func Decide(returnCode int, sanitized []byte, fixMode bool) int {
	if len(sanitized) == 0 {
		return returnCode
	}
	if fixMode || returnCode == 0 {
		return 1
	}
	return returnCode
}

//go:build windows

package executor

import (
	"os"
	"strings"
)

var execSuffixes = []string{".exe", ".bat", ".cmd", ".com", ".ps1"}

// candidateNames returns the filenames tried for a command name: the
// bare name plus each executable suffix, in precedence order.
func candidateNames(name string) []string {
	candidates := make([]string, 0, len(execSuffixes)+1)
	candidates = append(candidates, name)
	for _, suffix := range execSuffixes {
		candidates = append(candidates, name+suffix)
	}
	return candidates
}

// IsExecutable reports whether path is a regular file with a known
// executable extension.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	lower := strings.ToLower(path)
	for _, suffix := range execSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// StripExecSuffix removes a known executable extension so completion
// offers the command name users actually type.
func StripExecSuffix(name string) string {
	lower := strings.ToLower(name)
	for _, suffix := range execSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}

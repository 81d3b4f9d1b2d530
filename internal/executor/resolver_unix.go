//go:build !windows

package executor

import "os"

// candidateNames returns the filenames tried for a command name. Unix
// has no executable suffixes, so the bare name is the only candidate.
func candidateNames(name string) []string {
	return []string{name}
}

// IsExecutable reports whether path is a regular file with any execute
// bit set.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&0111 != 0
}

// StripExecSuffix is the identity on unix; completion compares whole
// filenames.
func StripExecSuffix(name string) string {
	return name
}

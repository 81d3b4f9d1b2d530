// Package executor locates external commands on the search path and
// runs them with redirected streams.
package executor

import (
	"path/filepath"
)

// Resolver finds executables by walking an ordered list of search
// directories. The list is fixed at construction; PATH precedence is
// first directory, then first candidate filename, wins.
type Resolver struct {
	dirs []string
}

// NewResolver returns a Resolver over the given search directories.
func NewResolver(dirs []string) *Resolver {
	return &Resolver{dirs: dirs}
}

// Resolve returns the full path of the first executable matching name,
// trying platform suffix variants in each directory. ok is false when
// no directory holds an executable candidate.
func (r *Resolver) Resolve(name string) (string, bool) {
	candidates := candidateNames(name)
	for _, dir := range r.dirs {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if IsExecutable(path) {
				return path, true
			}
		}
	}
	return "", false
}

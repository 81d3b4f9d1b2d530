package executor

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/quocvuong92/gsh/internal/parser"
)

// OpenRedirect opens (creating, and truncating or appending) the
// target file of a redirect.
func OpenRedirect(r parser.Redirect) (*os.File, error) {
	flag := os.O_CREATE | os.O_WRONLY
	if r.Append {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	return os.OpenFile(r.Target, flag, 0644)
}

// Run invokes path as name with the given arguments and blocks until
// the child exits. Each redirect is bound to the matching child stream
// in order, so a later duplicate for the same stream wins; streams
// without an openable redirect fall back to stdout/stderr. The child
// inherits the shell's stdin.
//
// The returned error is the spawn failure, if any; a child that runs
// and exits non-zero is not an error here.
func Run(ctx context.Context, path, name string, args []string, redirects []parser.Redirect, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, path, args...)
	// The child sees the typed name as argv[0], not the resolved path.
	cmd.Args = append([]string{name}, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for _, r := range redirects {
		f, err := OpenRedirect(r)
		if err != nil {
			continue
		}
		files = append(files, f)
		switch r.Stream {
		case parser.Stdout:
			cmd.Stdout = f
		case parser.Stderr:
			cmd.Stderr = f
		}
	}

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
		return err
	}
	return nil
}

// Package parser turns a raw input line into an argument list plus
// redirection directives under POSIX-like quoting rules.
//
// Parsing is pure: no filesystem, no processes, no session state. A
// line always parses; unterminated quotes and target-less redirects
// degrade instead of erroring, matching interactive-shell forgiveness.
package parser

import "strings"

// Stream identifies which standard stream a redirect applies to.
type Stream int

const (
	// Stdout is the command's standard output stream.
	Stdout Stream = iota
	// Stderr is the command's standard error stream.
	Stderr
)

// String returns the stream's conventional name.
func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Redirect routes one output stream to a file, truncating or
// appending.
type Redirect struct {
	Stream Stream
	Target string
	Append bool
}

// Command is one parsed input line: ordered arguments plus ordered
// redirects. Values are transient, owned by the evaluation of a single
// line.
type Command struct {
	Args      []string
	Redirects []Redirect
}

// Split separates the command name from its arguments. An empty line
// yields an empty name.
func (c Command) Split() (string, Command) {
	if len(c.Args) == 0 {
		return "", c
	}
	return c.Args[0], Command{Args: c.Args[1:], Redirects: c.Redirects}
}

// Parse scans the trimmed line left to right once.
//
// Quoting: single quotes are fully literal; double quotes group text
// and recognize backslash escapes for `"`, `\`, `$` and backtick only;
// outside single quotes a backslash literalizes the next character.
// Redirects: `>`, `>>`, `1>`, `1>>`, `2>`, `2>>` followed by a
// (possibly quoted) filename token. A redirect whose target never
// materializes is dropped.
func Parse(line string) Command {
	var cmd Command
	var cur strings.Builder

	runes := []rune(strings.TrimSpace(line))

	inSingle := false
	inDouble := false
	expectingTarget := false
	var pending *Redirect

	flushArg := func() {
		if cur.Len() > 0 {
			cmd.Args = append(cmd.Args, cur.String())
			cur.Reset()
		}
	}

	openRedirect := func(stream Stream, append bool) {
		flushArg()
		pending = &Redirect{Stream: stream, Append: append}
		expectingTarget = true
	}

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		// A pending redirect target swallows everything up to an
		// unquoted space; quotes toggle in without closing it.
		if expectingTarget && !inSingle && !inDouble {
			switch ch {
			case ' ':
				if cur.Len() > 0 && pending != nil {
					pending.Target = cur.String()
					cmd.Redirects = append(cmd.Redirects, *pending)
					pending = nil
					cur.Reset()
					expectingTarget = false
				}
				continue
			case '\'':
				inSingle = true
				continue
			case '"':
				inDouble = true
				continue
			default:
				cur.WriteRune(ch)
				continue
			}
		}

		switch {
		case ch == '\\' && inDouble:
			if i+1 < len(runes) {
				switch runes[i+1] {
				case '"', '\\', '$', '`':
					cur.WriteRune(runes[i+1])
					i++
					continue
				}
			}
			cur.WriteRune('\\')

		case ch == '\\' && !inSingle:
			if i+1 < len(runes) {
				cur.WriteRune(runes[i+1])
				i++
			}

		case ch == '\'' && !inDouble:
			inSingle = !inSingle

		case ch == '"' && !inSingle:
			inDouble = !inDouble

		case ch == '2' && !inSingle && !inDouble && peekIs(runes, i+1, '>'):
			i++ // the >
			if peekIs(runes, i+1, '>') {
				i++
				openRedirect(Stderr, true)
			} else {
				openRedirect(Stderr, false)
			}

		case ch == '1' && !inSingle && !inDouble && peekIs(runes, i+1, '>'):
			i++
			if peekIs(runes, i+1, '>') {
				i++
				openRedirect(Stdout, true)
			} else {
				openRedirect(Stdout, false)
			}

		case ch == '>' && !inSingle && !inDouble:
			if peekIs(runes, i+1, '>') {
				i++
				openRedirect(Stdout, true)
			} else {
				openRedirect(Stdout, false)
			}

		case ch == ' ' && !inSingle && !inDouble:
			flushArg()

		default:
			cur.WriteRune(ch)
		}
	}

	// Trailing text closes the open redirect target, or lands as a
	// final argument.
	if cur.Len() > 0 {
		if pending != nil {
			pending.Target = cur.String()
			cmd.Redirects = append(cmd.Redirects, *pending)
		} else {
			cmd.Args = append(cmd.Args, cur.String())
		}
	}

	return cmd
}

func peekIs(runes []rune, i int, want rune) bool {
	return i < len(runes) && runes[i] == want
}

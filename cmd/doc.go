// Package cmd implements the gsh command-line entry point.
//
// # Architecture
//
//   - root.go: cobra root command, flags, and mode selection
//
// Three modes, picked in order:
//
//   - -c "<line>": evaluate a single command line, no editor
//   - piped stdin: evaluate each line with no raw mode or completion
//   - terminal stdin: the full interactive session (raw-mode line
//     editor, tab completion, in-memory history)
//
// Everything below the entry point lives in internal/: config
// (environment), logging (file-backed debug log), terminal (raw mode
// and key decoding), editor (line buffer), parser (tokenizer),
// executor (PATH resolution and spawning) and shell (the session).
package cmd

package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/quocvuong92/gsh/internal/executor"
)

// completionMenuLimit caps how many candidates the menu prints before
// summarizing the rest.
const completionMenuLimit = 10

// Complete returns the sorted, deduplicated builtin names and
// search-path executables starting with partial. An empty partial
// completes to nothing; completion is prefix-based, not
// list-everything. Unreadable directories contribute no candidates.
func (s *Shell) Complete(partial string) []string {
	if partial == "" {
		return nil
	}

	var completions []string

	for name := range s.builtins {
		if strings.HasPrefix(name, partial) {
			completions = append(completions, name)
		}
	}

	for _, dir := range s.cfg.SearchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := executor.StripExecSuffix(entry.Name())
			if !strings.HasPrefix(name, partial) {
				continue
			}
			if executor.IsExecutable(filepath.Join(dir, entry.Name())) {
				completions = append(completions, name)
			}
		}
	}

	slices.Sort(completions)
	return slices.Compact(completions)
}

// handleTab applies the completion policy for the word under the
// cursor: bell on no candidates, replace on exactly one, extend to the
// longest common prefix on several, and fall back to a menu when the
// prefix cannot grow.
func (s *Shell) handleTab() {
	start, end, word, ok := s.ed.WordAtCursor()
	if !ok {
		return
	}

	completions := s.Complete(word)
	switch len(completions) {
	case 0:
		fmt.Fprint(s.out, "\a")
	case 1:
		s.ed.ReplaceWord(start, end, completions[0])
		s.redraw()
	default:
		common := commonPrefix(completions)
		if len(common) > len(word) {
			s.ed.ReplaceWord(start, end, common)
			s.redraw()
		} else {
			s.showCompletions(completions)
			s.redraw()
		}
	}
}

// commonPrefix returns the longest prefix shared by every candidate,
// zipping each string against the prefix found so far.
func commonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	first := candidates[0]
	prefixLen := len(first)
	for _, c := range candidates[1:] {
		n := 0
		for n < prefixLen && n < len(c) && first[n] == c[n] {
			n++
		}
		prefixLen = n
	}
	return first[:prefixLen]
}

// showCompletions prints the candidate menu below the prompt line.
func (s *Shell) showCompletions(completions []string) {
	fmt.Fprintln(s.out)
	for i, c := range completions {
		if i == completionMenuLimit {
			break
		}
		fmt.Fprintln(s.out, s.menuStyle.Render("  "+c))
	}
	if len(completions) > completionMenuLimit {
		fmt.Fprintln(s.out, s.menuStyle.Render(fmt.Sprintf("  ... and %d more", len(completions)-completionMenuLimit)))
	}
}

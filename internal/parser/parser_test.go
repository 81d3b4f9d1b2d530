package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple command",
			input:    "echo hello",
			expected: []string{"echo", "hello"},
		},
		{
			name:     "multiple spaces collapse",
			input:    "echo    hello     world",
			expected: []string{"echo", "hello", "world"},
		},
		{
			name:     "leading and trailing whitespace trimmed",
			input:    "   ls -la   ",
			expected: []string{"ls", "-la"},
		},
		{
			name:     "single quotes preserve internal spaces",
			input:    "echo 'a  b'",
			expected: []string{"echo", "a  b"},
		},
		{
			name:     "single quotes are fully literal",
			input:    `echo 'hello\nworld'`,
			expected: []string{"echo", `hello\nworld`},
		},
		{
			name:     "double quotes group words",
			input:    `echo "hello world"`,
			expected: []string{"echo", "hello world"},
		},
		{
			name:     "escaped quote inside double quotes",
			input:    `echo "a\"b"`,
			expected: []string{"echo", `a"b`},
		},
		{
			name:     "escaped backslash inside double quotes",
			input:    `echo "a\\b"`,
			expected: []string{"echo", `a\b`},
		},
		{
			name:     "backslash before other chars kept inside double quotes",
			input:    `echo "a\nb"`,
			expected: []string{"echo", `a\nb`},
		},
		{
			name:     "backslash escapes space outside quotes",
			input:    `echo hello\ world`,
			expected: []string{"echo", "hello world"},
		},
		{
			name:     "backslash escapes quote outside quotes",
			input:    `echo \'hi\'`,
			expected: []string{"echo", "'hi'"},
		},
		{
			name:     "adjacent quoted pieces join into one argument",
			input:    `echo "hello"'world'`,
			expected: []string{"echo", "helloworld"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "     ",
			expected: nil,
		},
		{
			name:     "unterminated quote keeps accumulated text",
			input:    "echo 'abc",
			expected: []string{"echo", "abc"},
		},
		{
			name:     "trailing backslash is dropped",
			input:    `echo abc\`,
			expected: []string{"echo", "abc"},
		},
		{
			name:     "digits not followed by > stay literal",
			input:    "echo 12 21",
			expected: []string{"echo", "12", "21"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.input)
			assert.Equal(t, tt.expected, cmd.Args)
			assert.Empty(t, cmd.Redirects)
		})
	}
}

func TestParseRedirects(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantArgs      []string
		wantRedirects []Redirect
	}{
		{
			name:          "stdout truncate",
			input:         "echo hi > out.txt",
			wantArgs:      []string{"echo", "hi"},
			wantRedirects: []Redirect{{Stream: Stdout, Target: "out.txt", Append: false}},
		},
		{
			name:          "stdout append",
			input:         "echo hi >> out.txt",
			wantArgs:      []string{"echo", "hi"},
			wantRedirects: []Redirect{{Stream: Stdout, Target: "out.txt", Append: true}},
		},
		{
			name:          "explicit stdout descriptor",
			input:         "echo hi 1> out.txt",
			wantArgs:      []string{"echo", "hi"},
			wantRedirects: []Redirect{{Stream: Stdout, Target: "out.txt", Append: false}},
		},
		{
			name:          "explicit stdout append",
			input:         "echo hi 1>> out.txt",
			wantArgs:      []string{"echo", "hi"},
			wantRedirects: []Redirect{{Stream: Stdout, Target: "out.txt", Append: true}},
		},
		{
			name:          "stderr truncate",
			input:         "ls 2> err.txt",
			wantArgs:      []string{"ls"},
			wantRedirects: []Redirect{{Stream: Stderr, Target: "err.txt", Append: false}},
		},
		{
			name:          "stderr append",
			input:         "ls 2>> err.txt",
			wantArgs:      []string{"ls"},
			wantRedirects: []Redirect{{Stream: Stderr, Target: "err.txt", Append: true}},
		},
		{
			name:     "no space around operator",
			input:    "echo hello>out.txt",
			wantArgs: []string{"echo", "hello"},
			wantRedirects: []Redirect{
				{Stream: Stdout, Target: "out.txt", Append: false},
			},
		},
		{
			name:     "quoted target keeps spaces",
			input:    `echo hi > "a b.txt"`,
			wantArgs: []string{"echo", "hi"},
			wantRedirects: []Redirect{
				{Stream: Stdout, Target: "a b.txt", Append: false},
			},
		},
		{
			name:     "single-quoted target",
			input:    "echo hi > 'my out'",
			wantArgs: []string{"echo", "hi"},
			wantRedirects: []Redirect{
				{Stream: Stdout, Target: "my out", Append: false},
			},
		},
		{
			name:     "stdout and stderr in one line",
			input:    "cmd > out.txt 2> err.txt",
			wantArgs: []string{"cmd"},
			wantRedirects: []Redirect{
				{Stream: Stdout, Target: "out.txt", Append: false},
				{Stream: Stderr, Target: "err.txt", Append: false},
			},
		},
		{
			name:     "duplicate stream redirects are all kept in order",
			input:    "echo hi > a.txt > b.txt",
			wantArgs: []string{"echo", "hi"},
			wantRedirects: []Redirect{
				{Stream: Stdout, Target: "a.txt", Append: false},
				{Stream: Stdout, Target: "b.txt", Append: false},
			},
		},
		{
			name:          "redirect with no target is dropped",
			input:         "echo hi >",
			wantArgs:      []string{"echo", "hi"},
			wantRedirects: nil,
		},
		{
			name:          "quoted 2 is a plain argument",
			input:         "echo '2' hi",
			wantArgs:      []string{"echo", "2", "hi"},
			wantRedirects: nil,
		},
		{
			name:          "argument after closed redirect",
			input:         "cmd > out.txt more",
			wantArgs:      []string{"cmd", "more"},
			wantRedirects: []Redirect{{Stream: Stdout, Target: "out.txt", Append: false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.input)
			assert.Equal(t, tt.wantArgs, cmd.Args)
			assert.Equal(t, tt.wantRedirects, cmd.Redirects)
		})
	}
}

func TestSplit(t *testing.T) {
	t.Run("separates name from arguments", func(t *testing.T) {
		name, rest := Parse("echo a b > f").Split()
		assert.Equal(t, "echo", name)
		assert.Equal(t, []string{"a", "b"}, rest.Args)
		require.Len(t, rest.Redirects, 1)
	})

	t.Run("empty line yields empty name", func(t *testing.T) {
		name, rest := Parse("   ").Split()
		assert.Equal(t, "", name)
		assert.Empty(t, rest.Args)
	})
}

func TestStreamString(t *testing.T) {
	assert.Equal(t, "stdout", Stdout.String())
	assert.Equal(t, "stderr", Stderr.String())
}

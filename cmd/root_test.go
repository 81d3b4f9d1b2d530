package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlagDefaults(t *testing.T) {
	app := &App{}
	rootCmd := newRootCmd(app)

	require.NoError(t, rootCmd.ParseFlags(nil))
	assert.Equal(t, "", app.command)
	assert.Equal(t, "", app.logFile)
	assert.False(t, app.verbose)
}

func TestRootCmdFlagParsing(t *testing.T) {
	app := &App{}
	rootCmd := newRootCmd(app)

	require.NoError(t, rootCmd.ParseFlags([]string{
		"-c", "echo hi",
		"--log-file", "/tmp/gsh.log",
		"-v",
	}))

	assert.Equal(t, "echo hi", app.command)
	assert.Equal(t, "/tmp/gsh.log", app.logFile)
	assert.True(t, app.verbose)
}

func TestRootCmdRejectsPositionalArgs(t *testing.T) {
	rootCmd := newRootCmd(&App{})
	assert.Error(t, rootCmd.Args(rootCmd, []string{"stray"}))
}

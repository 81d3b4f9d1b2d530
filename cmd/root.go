package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/quocvuong92/gsh/internal/config"
	"github.com/quocvuong92/gsh/internal/logging"
	"github.com/quocvuong92/gsh/internal/shell"
)

// App holds the invocation state gathered from flags.
type App struct {
	command string
	logFile string
	verbose bool
}

// Execute runs the root command.
func Execute() {
	app := &App{}
	if err := newRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gsh",
		Short: "An interactive command shell",
		Long: `gsh is a small interactive shell: a raw-mode line editor with
cursor movement and tab completion, POSIX-like quoting, output
redirection, and the usual builtins (echo, type, pwd, cd, exit).

Examples:
  gsh                       # interactive session
  gsh -c "echo hi > out"    # evaluate one command line and exit
  cat script | gsh          # evaluate piped lines without an editor`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run()
		},
	}

	rootCmd.Flags().StringVarP(&app.command, "command", "c", "", "Evaluate a single command line and exit")
	rootCmd.Flags().StringVar(&app.logFile, "log-file", "", "Write debug logs to this file (overrides "+config.EnvLogFile+")")
	rootCmd.Flags().BoolVarP(&app.verbose, "verbose", "v", false, "Log at debug level")

	return rootCmd
}

func (app *App) run() {
	cfg := config.New()
	if app.logFile != "" {
		cfg.LogFile = app.logFile
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if app.verbose {
		level = logging.LevelDebug
	}
	logger := logging.OpenFile(cfg.LogFile, level)

	sh := shell.New(cfg, os.Stdout, os.Stderr, logger)
	ctx := context.Background()

	if app.command != "" {
		sh.Eval(ctx, app.command)
		return
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if err := sh.RunLines(ctx, os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, "gsh:", err)
			os.Exit(1)
		}
		return
	}

	if err := sh.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "gsh:", err)
		os.Exit(1)
	}
}

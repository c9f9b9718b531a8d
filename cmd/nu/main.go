// Command nu is an interactive POSIX-flavored shell: a tokenizer,
// pipeline splitter, redirection extractor, a fixed internal command
// catalog, and a runner for everything else on PATH.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cishocksr/nu-shell/internal/builtins"
	"github.com/cishocksr/nu-shell/internal/config"
	"github.com/cishocksr/nu-shell/internal/history"
	"github.com/cishocksr/nu-shell/internal/logging"
	"github.com/cishocksr/nu-shell/internal/shell"
	"github.com/spf13/cobra"
)

var (
	version     = "dev"
	flagHist    string
	flagDebug   bool
	flagCommand string
)

var rootCmd = &cobra.Command{
	Use:     "nu",
	Short:   "An interactive POSIX-flavored command shell",
	Version: version,
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVar(&flagHist, "histfile", "", "history file path (default $HOME/.nu_history)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging on stderr")
	rootCmd.Flags().StringVarP(&flagCommand, "command", "c", "", "run a single command line and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("nu: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("nu: %w", err)
	}
	ensureConfigFile(cfg)

	debug := flagDebug || env.DebugFlag || cfg.Debug
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	log := slog.New(logging.NewHandler(os.Stderr, level, isTerminal(os.Stderr)))

	histFile := flagHist
	if histFile == "" {
		histFile = env.HistFile
	}

	if flagCommand != "" {
		return runOnce(env.Home, env.Path, histFile, flagCommand, log)
	}

	sh, err := shell.New(env.Home, env.Path, histFile, log)
	if err != nil {
		return fmt.Errorf("nu: %w", err)
	}
	sh.History.SetMaxSize(cfg.HistorySize)
	os.Exit(sh.Run())
	return nil
}

// runOnce executes a single pipeline non-interactively, for `nu -c '...'`.
func runOnce(home, path, histFile, line string, log *slog.Logger) error {
	hist := history.NewStore()
	if histFile != "" {
		_ = hist.ReadFromFile(histFile)
	}
	hist.AddCommand(line)

	pipeline, err := shell.ParsePipeline(line)
	if err != nil {
		fmt.Println(err.Error())
		return nil
	}
	if pipeline == nil {
		return nil
	}

	ex := shell.NewExecutor(home, path, hist)
	runErr := ex.Run(pipeline)

	if histFile != "" {
		if err := hist.AppendToFile(histFile); err != nil {
			log.Debug("history append on shutdown failed", "err", err)
		}
	}

	var req *builtins.ExitRequest
	if errors.As(runErr, &req) {
		os.Exit(req.Code)
	}
	return nil
}

// ensureConfigFile persists cfg to disk on first run, the same way the
// teacher writes its config back out once a value the user supplied
// interactively needs to stick around for the next invocation. Failure
// to write is not fatal; the shell still runs against cfg in memory.
func ensureConfigFile(cfg *config.Config) {
	path, err := config.Path()
	if err != nil {
		return
	}
	if _, err := os.Stat(path); err == nil {
		return
	}
	_ = config.Save(cfg)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

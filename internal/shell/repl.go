package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cishocksr/nu-shell/internal/builtins"
	"github.com/cishocksr/nu-shell/internal/history"
	"github.com/cishocksr/nu-shell/internal/resource"
)

// Prompt is the literal, two-character prompt string the REPL surface
// always shows.
const Prompt = "$ "

// Shell is the interactive read-eval-print loop: it owns the readline
// instance, the shared history store, and the pipeline executor.
type Shell struct {
	RL       *readline.Instance
	Exec     *Executor
	History  *history.Store
	HistFile string
	Log      *slog.Logger
}

// New builds a Shell wired against the given environment and history
// file. The history file is read at startup if present; a missing file
// is not an error.
func New(home, path, histFile string, log *slog.Logger) (*Shell, error) {
	hist := history.NewStore()
	if histFile != "" {
		if err := hist.ReadFromFile(histFile); err != nil {
			log.Debug("no history file to load", "path", histFile, "err", err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		AutoComplete:    &Completer{Path: path},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		RL:       rl,
		Exec:     NewExecutor(home, path, hist),
		History:  hist,
		HistFile: histFile,
		Log:      log,
	}, nil
}

// Run drives the loop until EOF or an `exit` line, then flushes history
// to disk and returns the status the process should exit with: 0, or the
// code an exit builtin stage asked for. Ordinary shell errors do not end
// the loop; those are diagnostics printed in place, per spec.md §7.
func (sh *Shell) Run() int {
	defer sh.RL.Close()

	for {
		line, err := sh.RL.Readline()
		if err != nil { // io.EOF (Ctrl-D) or interrupt
			if !errors.Is(err, io.EOF) {
				continue
			}
			sh.shutdown()
			return 0
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		sh.History.AddCommand(trimmed)

		if trimmed == "exit" {
			sh.shutdown()
			return 0
		}

		pipeline, perr := ParsePipeline(trimmed)
		if perr != nil {
			fmt.Println(perr.Error())
			continue
		}
		if pipeline == nil {
			continue
		}

		if stages := externalStageCount(pipeline); stages >= 2 {
			if msg := resource.PreflightPipeline(stages); msg != "" {
				sh.Log.Debug(msg)
			}
		}

		runErr := sh.Exec.Run(pipeline)
		var req *builtins.ExitRequest
		if errors.As(runErr, &req) {
			sh.shutdown()
			return req.Code
		}
	}
}

func (sh *Shell) shutdown() {
	if sh.HistFile == "" {
		return
	}
	if err := sh.History.AppendToFile(sh.HistFile); err != nil {
		sh.Log.Debug("history append on shutdown failed", "err", err)
	}
}

func externalStageCount(p *Pipeline) int {
	n := 0
	for _, s := range p.Stages {
		if _, ok := classify(s.Head); !ok && s.Head != "" {
			n++
		}
	}
	return n
}

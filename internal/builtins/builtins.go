// Package builtins implements the shell's fixed internal command
// catalog: echo, exit, type, pwd, cd, and history. Every command takes
// its streams, $HOME, $PATH and history store from its Env and argument
// slice rather than from the executor. pwd and cd read and change the
// process-wide working directory, and a nil Env.Stdout falls back to
// the process's own stdout.
package builtins

import (
	"io"
	"os"

	"github.com/cishocksr/nu-shell/internal/history"
)

// Env is the execution context an internal command runs in. Stdin and
// Stdout are non-nil only when this stage is wired into a pipeline
// (piped from/to a neighboring stage, or redirected to a file); a nil
// field means "use the process's own standard stream."
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer

	Home string // $HOME, for cd with no argument
	Path string // $PATH, for type's external-command fallback

	History *history.Store
}

// Out returns the stream a command should write its payload and any
// diagnostics to: the stage's own output if it has one, else the
// process's real stdout.
func (e *Env) Out() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

// ExitRequest is returned by the exit builtin, wrapping its exit code.
// It is never a true failure from the pipeline's point of view. The
// REPL inspects for this type specifically and ends the session.
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string {
	return "exit requested"
}

// Func is the shape every builtin command implements.
type Func func(args []string, env *Env) error

// Registry is the fixed, read-only catalog of internal commands.
var Registry = map[string]Func{
	"echo":    Echo,
	"exit":    Exit,
	"type":    Type,
	"pwd":     Pwd,
	"cd":      Cd,
	"history": History,
}

// Lookup returns the named builtin and whether it exists.
func Lookup(name string) (Func, bool) {
	f, ok := Registry[name]
	return f, ok
}

// Names returns the catalog's command names, for completion.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	return names
}

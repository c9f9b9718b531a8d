package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/cishocksr/nu-shell/internal/builtins"
	"github.com/cishocksr/nu-shell/internal/history"
	"github.com/cishocksr/nu-shell/internal/pathsearch"
	"github.com/sourcegraph/conc"
)

// Executor wires and runs parsed pipelines against the process's
// environment and the session's shared history.
type Executor struct {
	Home    string
	Path    string
	History *history.Store
}

// NewExecutor builds an Executor from the environment the shell was
// started with.
func NewExecutor(home, path string, hist *history.Store) *Executor {
	return &Executor{Home: home, Path: path, History: hist}
}

// link is one inter-stage channel. Internal-internal, internal-external
// and external-internal adjacencies go over an io.Pipe, since an exec.Cmd
// has no file descriptor to hand a Go value that doesn't own one. Pure
// external-external adjacencies use os.Pipe so the kernel moves the bytes
// directly between the two children without passing through this process.
type link struct {
	r io.ReadCloser
	w io.WriteCloser
}

// Run executes a fully parsed pipeline. It returns a non-nil
// *builtins.ExitRequest (wrapped as error) if any stage was the exit
// builtin; the caller decides when to act on it. All other per-stage
// failures are reported as diagnostics on the relevant output stream and
// never abort sibling stages.
func (e *Executor) Run(p *Pipeline) error {
	if p == nil || len(p.Stages) == 0 {
		return nil
	}
	if len(p.Stages) == 1 {
		return e.runSingle(p.Stages[0])
	}
	return e.runMulti(p.Stages)
}

func (e *Executor) runSingle(stage *CommandPlan) error {
	if stage.Head == "" {
		return nil
	}
	if fn, ok := classify(stage.Head); ok {
		return e.runInternal(fn, stage, nil, nil)
	}
	return e.runExternal(stage, nil, nil, false)
}

func (e *Executor) runMulti(stages []*CommandPlan) error {
	n := len(stages)
	internal := make([]bool, n)
	fns := make([]builtins.Func, n)
	for i, s := range stages {
		if fn, ok := classify(s.Head); ok {
			internal[i] = true
			fns[i] = fn
		}
	}

	links := make([]*link, n-1)
	for i := 0; i < n-1; i++ {
		if internal[i] || internal[i+1] {
			pr, pw := io.Pipe()
			links[i] = &link{r: pr, w: pw}
			continue
		}
		pr, pw, err := os.Pipe()
		if err != nil {
			// Fall back to an in-memory pipe; the stage still completes,
			// just without a real kernel-level fd handoff.
			ipr, ipw := io.Pipe()
			links[i] = &link{r: ipr, w: ipw}
			continue
		}
		links[i] = &link{r: pr, w: pw}
	}

	wg := conc.NewWaitGroup()
	outcomes := make([]error, n)

	for i := 0; i < n; i++ {
		i := i
		var in io.ReadCloser
		var out io.WriteCloser
		if i > 0 {
			in = links[i-1].r
		}
		if i < n-1 {
			out = links[i].w
		}

		wg.Go(func() {
			if internal[i] {
				outcomes[i] = e.runInternal(fns[i], stages[i], in, out)
			} else {
				outcomes[i] = e.runExternal(stages[i], in, out, true)
			}
			if out != nil {
				out.Close()
			}
			if in != nil {
				io.Copy(io.Discard, in)
				in.Close()
			}
		})
	}
	wg.Wait()

	for _, err := range outcomes {
		var req *builtins.ExitRequest
		if errors.As(err, &req) {
			return req
		}
	}
	return nil
}

// runInternal invokes a builtin with in/out wired as pipeline channel
// ends (nil for the endpoints this stage doesn't own), honoring any
// redirection clause on this stage.
func (e *Executor) runInternal(fn builtins.Func, stage *CommandPlan, in io.Reader, out io.Writer) error {
	env := &builtins.Env{
		Stdin:   in,
		Stdout:  out,
		Home:    e.Home,
		Path:    e.Path,
		History: e.History,
	}

	if r := stage.Redirect; r != nil {
		switch r.FD {
		case 1:
			w, closer := openRedirectSink(r)
			env.Stdout = w
			defer closer()
		case 2:
			// Internal commands have no distinct stderr stream; honor
			// only the file's creation/truncation side effect.
			_, closer := openRedirectSink(r)
			closer()
		}
	}

	err := fn(stage.Args, env)
	var req *builtins.ExitRequest
	if errors.As(err, &req) {
		return req
	}
	return nil
}

// runExternal spawns an external command, wiring in/out as pipeline
// channel ends when piped is true (both derived from the stage's
// position), or inheriting the shell's own stdio for a standalone stage.
func (e *Executor) runExternal(stage *CommandPlan, in io.Reader, out io.Writer, piped bool) error {
	resolved, ok := pathsearch.Find(e.Path, stage.Head)
	if !ok {
		fmt.Fprintf(os.Stdout, "%s: command not found\n", stage.Head)
		return nil
	}

	cmd := exec.Command(resolved)
	cmd.Args = append([]string{stage.Head}, stage.Args...)

	if in != nil {
		cmd.Stdin = in
	} else {
		cmd.Stdin = os.Stdin
	}

	var stdout io.Writer = os.Stdout
	var stderr io.Writer = os.Stderr
	if out != nil {
		stdout = out
	}

	if r := stage.Redirect; r != nil {
		w, closer := openRedirectSink(r)
		defer closer()
		switch r.FD {
		case 1:
			if piped && out != nil {
				// The channel to the next stage keeps flowing, just
				// off descriptor 2 instead of 1.
				stderr = out
			}
			stdout = w
		case 2:
			stderr = w
		}
	}

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %s\n", err)
		return nil
	}
	_ = cmd.Wait() // child's exit status is never propagated or reported
	return nil
}

// openRedirectSink opens the file a redirection clause names, applying
// the fd-2-overwrite pre-truncate quirk, and returns a writer plus a
// closer to defer. A clause with no target, or one that fails to open,
// degrades to a discard sink rather than ever leaving stdio unset.
func openRedirectSink(r *Redirection) (io.Writer, func()) {
	if r.Target == "" {
		return io.Discard, func() {}
	}
	if r.FD == 2 && r.Mode == ModeOverwrite {
		if f, err := os.OpenFile(r.Target, os.O_WRONLY|os.O_TRUNC, 0o644); err == nil {
			f.Close()
		}
	}
	flags := os.O_WRONLY | os.O_CREATE
	if r.Mode == ModeAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(r.Target, flags, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

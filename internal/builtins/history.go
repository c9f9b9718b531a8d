package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// History implements `history [N] [-r F] [-w F] [-a F]`: with no flag,
// print the numbered history (all of it, or the last N entries); -r/-w/-a
// load, overwrite, or append-persist against a file.
func History(args []string, env *Env) error {
	if flag, missing := missingFlagValue(args); missing {
		fmt.Fprintf(env.Out(), "history: %s: option requires an argument\n", flag)
		return nil
	}

	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	fs.SetOutput(stubWriter{})
	readFile := fs.StringP("read", "r", "", "")
	writeFile := fs.StringP("write", "w", "", "")
	appendFile := fs.StringP("append", "a", "", "")

	reordered := reorderFlags(fs, args)
	if err := fs.Parse(reordered); err != nil {
		return nil
	}

	switch {
	case *readFile != "":
		if err := env.History.ReadFromFile(*readFile); err != nil {
			fmt.Fprintf(env.Out(), "history: %s: No such file or directory\n", *readFile)
		}
		return nil
	case *writeFile != "":
		if err := env.History.WriteToFile(*writeFile); err != nil {
			fmt.Fprintf(env.Out(), "history: %s: cannot write to file\n", *writeFile)
		}
		return nil
	case *appendFile != "":
		if err := env.History.AppendToFile(*appendFile); err != nil {
			fmt.Fprintf(env.Out(), "history: %s: cannot write to file\n", *appendFile)
		}
		return nil
	}

	entries := env.History.All()
	if rest := fs.Args(); len(rest) > 0 {
		if n, err := strconv.Atoi(rest[0]); err == nil {
			entries = env.History.Last(n)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(env.Out(), "%5d  %s\n", e.Index, e.Line)
	}
	return nil
}

// missingFlagValue reports whether -r, -w, or -a appears as the final
// token with nothing following it to serve as the path.
func missingFlagValue(args []string) (string, bool) {
	for i, a := range args {
		if a == "-r" || a == "-w" || a == "-a" {
			if i+1 >= len(args) {
				return a, true
			}
		}
	}
	return "", false
}

// reorderFlags moves -r/-w/-a (and the value following each) ahead of
// any bare positional argument, so "history 5 -w f" parses the same as
// "history -w f 5".
func reorderFlags(fs *pflag.FlagSet, args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "-") && a != "-" {
			flags = append(flags, a)
			name := strings.TrimLeft(a, "-")
			if f := fs.ShorthandLookup(name); f != nil && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
			continue
		}
		positional = append(positional, a)
	}
	return append(flags, positional...)
}

// stubWriter discards pflag's built-in usage/error output; this
// command reports its own diagnostics in the shell's own wording.
type stubWriter struct{}

func (stubWriter) Write(p []byte) (int, error) { return len(p), nil }

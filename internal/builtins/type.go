package builtins

import (
	"fmt"

	"github.com/cishocksr/nu-shell/internal/pathsearch"
)

// Type reports whether NAME is an internal command, an executable found
// on the search path, or neither. Internal-command status always wins
// over a same-named executable.
func Type(args []string, env *Env) error {
	if len(args) == 0 {
		fmt.Fprint(env.Out(), "type: missing argument\n")
		return nil
	}
	name := args[0]

	if _, ok := Lookup(name); ok {
		fmt.Fprintf(env.Out(), "%s is a shell builtin\n", name)
		return nil
	}
	if path, ok := pathsearch.Find(env.Path, name); ok {
		fmt.Fprintf(env.Out(), "%s is %s\n", name, path)
		return nil
	}
	fmt.Fprintf(env.Out(), "%s: not found\n", name)
	return nil
}

package builtins

import (
	"fmt"
	"strings"
)

// Echo writes its arguments joined by a single space, followed by a
// newline. It never reads Stdin.
func Echo(args []string, env *Env) error {
	fmt.Fprintln(env.Out(), strings.Join(args, " "))
	return nil
}

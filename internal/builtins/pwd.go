package builtins

import (
	"fmt"
	"os"
)

// Pwd emits the current working directory followed by a newline.
func Pwd(args []string, env *Env) error {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(env.Out(), "pwd: %s\n", err)
		return nil
	}
	fmt.Fprintln(env.Out(), wd)
	return nil
}

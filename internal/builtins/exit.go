package builtins

import "strconv"

// Exit returns an ExitRequest carrying the requested status code. With
// no argument the code is 0; a non-numeric argument also yields 0,
// matching the reference shell's lenient parsing.
func Exit(args []string, env *Env) error {
	code := 0
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			code = n
		}
	}
	return &ExitRequest{Code: code}
}

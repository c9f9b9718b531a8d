package shell

import "github.com/cishocksr/nu-shell/internal/builtins"

// classify reports whether head names an internal command. The fixed
// catalog always wins over an external program of the same name.
func classify(head string) (fn builtins.Func, internal bool) {
	fn, internal = builtins.Lookup(head)
	return fn, internal
}

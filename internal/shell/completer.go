package shell

import (
	"os"
	"sort"
	"strings"

	"github.com/cishocksr/nu-shell/internal/builtins"
)

// Completer offers tab completion for the first word of a line only,
// against the builtin catalog plus every executable name visible on PATH.
type Completer struct {
	Path string
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	if strings.ContainsAny(prefix, " \t") {
		return nil, 0
	}

	var matches []string
	for _, name := range builtins.Names() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	for _, name := range c.executablesOnPath() {
		if strings.HasPrefix(name, prefix) && !contains(matches, name) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	out := make([][]rune, 0, len(matches))
	for _, m := range matches {
		out = append(out, []rune(m[len(prefix):]+" "))
	}
	return out, len(prefix)
}

func (c *Completer) executablesOnPath() []string {
	var names []string
	for _, dir := range strings.Split(c.Path, ":") {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			info, err := e.Info()
			if err != nil || info.Mode().Perm()&0o111 == 0 {
				continue
			}
			names = append(names, e.Name())
		}
	}
	return names
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

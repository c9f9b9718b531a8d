// Package pathsearch resolves a bare command name against a colon
// separated PATH, the same lookup rule used by both the type builtin and
// the external command runner.
package pathsearch

import (
	"os"
	"path/filepath"
	"strings"
)

// Find returns the first directory entry on pathEnv named name that
// exists and has at least one executable bit set. Empty PATH segments
// (a leading, trailing, or doubled colon) are ignored.
func Find(pathEnv, name string) (string, bool) {
	for _, dir := range strings.Split(pathEnv, ":") {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode().Perm()&0o111 != 0 {
			return candidate, true
		}
	}
	return "", false
}

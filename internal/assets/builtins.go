// Package assets bundles static resources shipped inside the analyzer
// binary. Per spec.md §9 "Global state", the builtin function list is
// loaded once per process and never mutated afterward.
package assets

import (
	"bufio"
	"embed"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed php_builtins.txt
var builtinsFS embed.FS

var (
	builtinsOnce sync.Once
	builtinNames map[string]struct{}
)

// BuiltinNames returns the immutable set of builtin function names
// bundled with the analyzer (spec.md §6 "Builtin-names resource").
func BuiltinNames() map[string]struct{} {
	builtinsOnce.Do(func() {
		f, err := builtinsFS.Open("php_builtins.txt")
		if err != nil {
			builtinNames = make(map[string]struct{})
			return
		}
		defer f.Close()
		builtinNames = scanNames(f)
	})
	return builtinNames
}

// LoadBuiltinNames reads a user-supplied builtin-name list from disk,
// one name per line, in the same format as the embedded default
// (blank lines and #-prefixed comments skipped). It overrides
// BuiltinNames() for callers pointed at PHPAST_BUILTINS_FILE
// (internal/config).
func LoadBuiltinNames(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanNames(f), nil
}

func scanNames(r io.Reader) map[string]struct{} {
	names := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		names[name] = struct{}{}
	}
	return names
}

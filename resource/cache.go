package resource

import (
	"os"

	"github.com/oxhq/phpast/internal/store"
	"github.com/oxhq/phpast/parser"
)

// BuildTreesCached is BuildTrees augmented with internal/store's
// content-hash cache: every collected file's hash is compared against
// the last run's, and Tree.Stale records which files actually changed.
// Callers that persist analysis results keyed by file can skip
// re-running expensive passes (builtin-call matching, graph building)
// for files that come back unchanged, an "incremental process" in the
// sense of spec.md §4.4 even though spec.md itself has no caching
// requirement — this is additive per SPEC_FULL.md.
func BuildTreesCached(root string, cache *store.Store) (*Tree, error) {
	return BuildTreesCachedVersion(root, cache, parser.DefaultVersion)
}

// BuildTreesCachedVersion is BuildTreesCached with an explicit grammar
// version, mirroring BuildTreesVersion.
func BuildTreesCachedVersion(root string, cache *store.Store, version parser.Version) (*Tree, error) {
	t, err := BuildTreesVersion(root, version)
	if err != nil {
		return nil, err
	}

	t.Stale = make(map[string]bool)
	for path := range t.Trees {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Stale[path] = true
			continue
		}
		hash := store.Hash(content)
		if cache.Stale(path, hash) {
			t.Stale[path] = true
			_ = cache.Touch(path, hash)
		}
	}
	return t, nil
}

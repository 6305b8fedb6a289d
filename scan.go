package xlog

import (
	"os"
	"path/filepath"

	art "github.com/plar/go-adaptive-radix-tree/v2"
)

// Scan walks root recursively and returns the paths of every file for which
// IsXlogFile returns true, in directory-walk order (spec §6 operation 3).
func Scan(root string) []string {
	var found []string
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if IsXlogFile(path) {
			found = append(found, path)
		}
		return nil
	})
	return found
}

// BuildPathIndex indexes a set of scanned paths (as returned by Scan) in an
// adaptive radix tree so a host collaborator can run ordered prefix queries
// over a large device log directory (e.g. "every rotated file under today's
// device-id folder") without re-walking the filesystem (SPEC_FULL §3). Scan
// itself never depends on this; it's an opt-in convenience built on top of
// its result.
func BuildPathIndex(paths []string) art.Tree {
	tree := art.New()
	for _, p := range paths {
		tree.Insert(art.Key(p), p)
	}
	return tree
}

// PathsWithPrefix returns every path in idx that begins with prefix, in key
// order.
func PathsWithPrefix(idx art.Tree, prefix string) []string {
	var out []string
	idx.ForEachPrefix(art.Key(prefix), func(node art.Node) bool {
		out = append(out, node.Value().(string))
		return true
	})
	return out
}

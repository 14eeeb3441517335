// Package srcpath canonicalizes raw diagnostic paths against a repository
// root and classifies header files.
package srcpath

import (
	"path"
	"path/filepath"
	"strings"
)

// headerExts are the extensions recognized as C/C++ header files.
var headerExts = map[string]struct{}{
	".h":   {},
	".hh":  {},
	".hpp": {},
	".hxx": {},
}

// Normalize resolves a raw path as it appears in a log into canonical form.
// When the path exists on disk under root, the result is the root-relative
// path with forward slashes. In every other case (missing file, empty root,
// path outside the root) it falls back to Lexical without touching the
// filesystem. Normalize depends only on its arguments and filesystem state.
func Normalize(raw, root string) string {
	if raw == "" {
		return raw
	}
	if root != "" {
		if rel, ok := relativeToRoot(raw, root); ok {
			return rel
		}
	}
	return Lexical(raw)
}

// Lexical collapses "."/".." segments and redundant separators without
// filesystem access. Separators are unified to forward slashes for stable
// cross-platform output.
func Lexical(raw string) string {
	return path.Clean(filepath.ToSlash(raw))
}

// IsHeader reports whether the path's final segment has a header-like
// extension. Pure string check, independent of normalization.
func IsHeader(p string) bool {
	ext := strings.ToLower(path.Ext(filepath.ToSlash(p)))
	_, ok := headerExts[ext]
	return ok
}

func relativeToRoot(raw, root string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absRaw, err := filepath.Abs(raw)
	if err != nil {
		return "", false
	}
	// Resolve symlinks so that paths reported through /tmp-style links still
	// land under the root. Resolution failure means the file does not exist;
	// the caller falls back to lexical cleaning.
	resolvedRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", false
	}
	resolvedRaw, err := filepath.EvalSymlinks(absRaw)
	if err != nil {
		return "", false
	}
	if !pathWithin(resolvedRoot, resolvedRaw) {
		return "", false
	}
	rel, err := filepath.Rel(resolvedRoot, resolvedRaw)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func pathWithin(root, p string) bool {
	if root == "" || p == "" {
		return false
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

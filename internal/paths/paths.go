// Package paths provides canonical helpers for workspace-relative draft
// paths and the "draft.md#block" references that address outline blocks
// across files.
package paths

import (
	"path/filepath"
	"strings"
)

// Normalize converts a workspace-relative path to canonical slash form:
// OS separators become '/', leading "./" and "/" are trimmed, and repeated
// separators collapse. Block references embed these paths, so every caller
// must normalize before building one.
func Normalize(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// BlockRef builds the workspace-wide reference for a block within a draft,
// e.g. "contracts/msa.md#definitions".
func BlockRef(relPath, blockID string) string {
	return Normalize(relPath) + "#" + blockID
}

// SplitBlockRef splits a block reference into its draft path and block id.
// A reference without a '#' is treated as a bare draft path.
func SplitBlockRef(ref string) (draft, block string) {
	draft, block, ok := strings.Cut(ref, "#")
	if !ok {
		return ref, ""
	}
	return draft, block
}

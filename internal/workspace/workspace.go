// Package workspace locates and manages Vellum drafting workspaces.
//
// A workspace is a directory of markdown draft files with a .vellum/
// directory holding the config, the entity store, and the usage index.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vellumtools/vellum/internal/paths"
)

// MarkerDir is the directory whose presence marks a workspace root.
const MarkerDir = ".vellum"

// Find walks up from start looking for a workspace root. Returns the root
// path, or an error if no workspace is found.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, MarkerDir)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no workspace found from %s (run 'vlm init' to create one)", start)
		}
		dir = parent
	}
}

// Init creates a workspace at path: the .vellum directory and an empty
// entity store. Returns an error if a workspace already exists there.
func Init(path string) error {
	marker := filepath.Join(path, MarkerDir)
	if _, err := os.Stat(marker); err == nil {
		return fmt.Errorf("workspace already exists at %s", path)
	}
	if err := os.MkdirAll(marker, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", MarkerDir, err)
	}
	return SaveEntities(path, nil)
}

// WalkDrafts calls handler for every markdown draft in the workspace, in
// lexical path order. The .vellum directory is skipped.
func WalkDrafts(root string, handler func(path, relPath string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == MarkerDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".md") {
			return nil
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = path
		}
		return handler(path, paths.Normalize(relPath))
	})
}

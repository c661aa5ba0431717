package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rionnag/unblocked/internal/levels/formats"
)

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a level loader rooted at a directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files under the root.
// A .txt file may hold a whole level set; a .yaml/.yml file holds one
// level. Returns levels sorted by id for deterministic ordering. Any
// malformed level fails the whole load: a broken level set is a
// configuration error, not something to play around.
func (l *Loader) LoadAll() (*Set, error) {
	var lvls []Level
	textIndex := 0

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", path, readErr)
		}

		switch ext {
		case ".txt":
			for _, p := range formats.ParseText(data, textIndex) {
				lvl, convErr := fromParsed(p)
				if convErr != nil {
					return fmt.Errorf("parsing %s: %w", path, convErr)
				}
				lvls = append(lvls, lvl)
				textIndex++
			}
		case ".yaml", ".yml":
			p, parseErr := formats.ParseYAML(data)
			if parseErr != nil {
				return fmt.Errorf("parsing %s: %w", path, parseErr)
			}
			lvl, convErr := fromParsed(p)
			if convErr != nil {
				return fmt.Errorf("parsing %s: %w", path, convErr)
			}
			lvls = append(lvls, lvl)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(lvls, func(i, j int) bool {
		return lvls[i].ID < lvls[j].ID
	})
	return NewSet(lvls)
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

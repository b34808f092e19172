package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// LoadFS loads one nested catalog per locale from a filesystem whose
// top-level directories are locale codes:
//
//	en/common.json
//	en/features/admin-panel.json
//	de/common.yaml
//
// Each path element below the locale directory contributes one Section
// segment (hyphenated names are normalized at flatten time), and the decoded
// file content becomes a Verbatim subtree whose keys pass through unchanged.
// Locales load concurrently; the first failure aborts the whole load.
func LoadFS(fsys fs.FS) (map[string]Section, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading catalog root: %w", err)
	}

	var locales []string
	for _, entry := range entries {
		if entry.IsDir() {
			locales = append(locales, entry.Name())
		}
	}

	trees := make([]Section, len(locales))
	var g errgroup.Group
	for i, locale := range locales {
		i, locale := i, locale
		g.Go(func() error {
			tree, err := loadLocale(fsys, locale)
			if err != nil {
				return err
			}
			trees[i] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]Section, len(locales))
	for i, locale := range locales {
		out[locale] = trees[i]
	}
	return out, nil
}

func loadLocale(fsys fs.FS, locale string) (Section, error) {
	root := make(Section)

	err := fs.WalkDir(fsys, locale, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		var unmarshal func([]byte, any) error
		switch strings.ToLower(path.Ext(filePath)) {
		case ".json":
			unmarshal = json.Unmarshal
		case ".yaml", ".yml":
			unmarshal = yaml.Unmarshal
		default:
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var doc map[string]any
		if err := unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		content, err := FromValue(doc)
		if err != nil {
			return fmt.Errorf("%q: %w", filePath, err)
		}

		rel := strings.TrimPrefix(filePath, locale+"/")
		name := strings.TrimSuffix(path.Base(rel), path.Ext(rel))

		var segments []string
		if dir := path.Dir(rel); dir != "." {
			segments = strings.Split(dir, "/")
		}
		segments = append(segments, name)

		return insert(root, segments, content, filePath)
	})
	if err != nil {
		return nil, err
	}

	return root, nil
}

func insert(root Section, segments []string, content Node, source string) error {
	cur := root
	for i, seg := range segments[:len(segments)-1] {
		child, ok := cur[seg]
		if !ok {
			next := make(Section)
			cur[seg] = next
			cur = next
			continue
		}
		next, ok := child.(Section)
		if !ok {
			return fmt.Errorf("%w: %q is both a document and a directory (at %q)",
				ErrDuplicateKey, strings.Join(segments[:i+1], "/"), source)
		}
		cur = next
	}

	last := segments[len(segments)-1]
	if _, exists := cur[last]; exists {
		return fmt.Errorf("%w: %q defined more than once (at %q)",
			ErrDuplicateKey, strings.Join(segments, "/"), source)
	}
	cur[last] = content

	return nil
}

// Package assets copies static files (images, downloads, fonts) from the
// source assets directory into the build output, applying include/exclude
// glob patterns.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesInclude returns true if the given relative path matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support and also tries the bare filename so
// patterns like "*.psd" exclude files at any depth.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// Copy walks srcDir and copies every file matching the include patterns and
// not matching the exclude patterns into dstDir, preserving relative paths.
// A missing srcDir is not an error: sites without extra assets are fine.
// Progress is reported through the given Reporter.
func Copy(srcDir, dstDir string, include, exclude []string, reporter Reporter) (int, error) {
	info, err := os.Stat(srcDir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading assets dir: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("assets path %s is not a directory", srcDir)
	}

	var files []string
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != srcDir {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if !MatchesInclude(rel, include) || MatchesExclude(rel, exclude) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking assets dir: %w", err)
	}

	if reporter != nil {
		reporter.Start(len(files))
		defer reporter.Finish()
	}

	for i, rel := range files {
		if reporter != nil {
			reporter.Update(i+1, rel)
		}
		if err := copyFile(filepath.Join(srcDir, rel), filepath.Join(dstDir, rel)); err != nil {
			return i, err
		}
	}
	return len(files), nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating asset dir: %w", err)
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening asset: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating asset: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}

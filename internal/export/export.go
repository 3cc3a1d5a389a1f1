// Package export writes compilation results into an on-disk project
// layout: one subdirectory per platform under a root output directory.
// The compiler core itself never touches the file system; this is the
// packaging step that consumes its results.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/starford/dagaz/internal/models"
)

// Writer writes generated files under a root output directory.
type Writer struct {
	root string // absolute path to the output directory
}

// NewWriter creates a Writer rooted at dir, creating it if necessary.
func NewWriter(dir string) (*Writer, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("export: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("export: create root: %w", err)
	}
	return &Writer{root: abs}, nil
}

// Root returns the absolute output directory.
func (w *Writer) Root() string { return w.root }

// safePath resolves a relative path against the output root and rejects
// any result that escapes it (directory traversal).
func (w *Writer) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if cleaned == "" || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("export: bad path: %s", rel)
	}
	joined := filepath.Join(w.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("export: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, w.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("export: path escapes output root: %s", rel)
	}
	return abs, nil
}

// WriteResult writes every generated file of one platform result under
// <root>/<platform>/. Files are written even when the result carries
// errors: partial output is still output. Returns the number of files
// written.
func (w *Writer) WriteResult(res models.CompilationResult) (int, error) {
	written := 0
	for _, f := range res.Files {
		rel := filepath.Join(string(res.Platform), filepath.FromSlash(f.Path))
		if err := w.write(rel, []byte(f.Content)); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// WriteAll writes every platform's result in sorted platform order.
func (w *Writer) WriteAll(results map[models.Platform]models.CompilationResult) (int, error) {
	platforms := make([]string, 0, len(results))
	for p := range results {
		platforms = append(platforms, string(p))
	}
	sort.Strings(platforms)

	total := 0
	for _, p := range platforms {
		n, err := w.WriteResult(results[models.Platform(p)])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// write atomically writes content: tmp file → fsync → rename.
func (w *Writer) write(rel string, content []byte) error {
	abs, err := w.safePath(rel)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".dagaz-tmp-*")
	if err != nil {
		return fmt.Errorf("export: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("export: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("export: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("export: rename: %w", err)
	}
	success = true
	return nil
}

// Package store persists collections as Markdown files, one file per
// collection, inside a single data directory. It resolves collection
// names to file paths and performs the read/write I/O, delegating format
// work to internal/markdown.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/dukaforge/listicle/internal/markdown"
	"github.com/dukaforge/listicle/pkg/types"
)

// fileExt is the extension of collection files in the data directory.
const fileExt = ".md"

// unsafeChars matches characters that cannot appear in file names on at
// least one supported platform.
var unsafeChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// rename is overridden in tests to simulate a crash between writing the
// temp file and replacing the target.
var rename = os.Rename

// Store reads and writes collection files under a single data directory.
// The directory is created on first write.
type Store struct {
	dataDir string
}

// New returns a store rooted at the given data directory. The directory
// is supplied by configuration; the store never consults ambient state.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// DataDir returns the directory this store operates on.
func (s *Store) DataDir() string {
	return s.dataDir
}

// sanitizeName converts a collection name to a safe file stem: characters
// unsafe in file names become underscores, leading and trailing dots and
// spaces are stripped, and an empty result falls back to a fixed stem.
// The mapping is lossy, so List reads each file's metadata for the real
// name instead of trusting the stem.
func sanitizeName(name string) string {
	safe := unsafeChars.ReplaceAllString(name, "_")
	safe = strings.Trim(safe, ". ")
	if safe == "" {
		safe = "unnamed_collection"
	}
	return safe
}

// Resolve maps a collection name to its file path under the data directory.
func (s *Store) Resolve(name string) string {
	return filepath.Join(s.dataDir, sanitizeName(name)+fileExt)
}

// Exists reports whether a collection has a backing file.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Resolve(name))
	return err == nil
}

// Load reads and parses the collection with the given name.
// Returns ErrNotFound if no file matches; parse errors propagate as is.
func (s *Store) Load(name string) (*types.Collection, error) {
	path := s.Resolve(name)
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("collection %q: %w", name, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := markdown.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("collection %q: %w", name, err)
	}
	return c, nil
}

// Save renders the collection and writes it atomically using the
// temp-file, fsync, rename pattern. A failure at any stage leaves the
// previous file version intact.
func (s *Store) Save(c *types.Collection) error {
	raw, err := markdown.Render(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := s.Resolve(c.Name)
	tmp, err := os.CreateTemp(s.dataDir, ".collection-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Delete removes the collection's backing file.
// Returns ErrNotFound if there is none.
func (s *Store) Delete(name string) error {
	path := s.Resolve(name)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("collection %q: %w", name, types.ErrNotFound)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	return nil
}

// List scans the data directory and returns a summary per readable
// collection file, sorted by name. Only the metadata block of each file
// is parsed. Files that are not collections (or are corrupt) are skipped;
// Load is the strict path.
func (s *Store) List() ([]types.Summary, error) {
	entries, err := os.ReadDir(s.dataDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading data dir: %w", err)
	}

	var summaries []types.Summary
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dataDir, e.Name()))
		if err != nil {
			continue
		}
		sum, err := markdown.ParseSummary(raw)
		if err != nil {
			continue
		}
		summaries = append(summaries, *sum)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileBackend keeps the save as a JSON file. Retired pets are archived as
// individual files in a "legacy" directory next to it.
type FileBackend struct {
	path string
}

// NewFileBackend creates the save directory if needed.
func NewFileBackend(path string) (*FileBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}
	return &FileBackend{path: path}, nil
}

// Path returns the save file location.
func (b *FileBackend) Path() string {
	return b.path
}

func (b *FileBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (b *FileBackend) Write(ctx context.Context, doc []byte) error {
	return writeAtomic(b.path, doc)
}

func (b *FileBackend) Close() error {
	return nil
}

func (b *FileBackend) legacyDir() string {
	return filepath.Join(filepath.Dir(b.path), "legacy")
}

type archiveEntry struct {
	Retired
	Pet json.RawMessage `json:"pet"`
}

func (b *FileBackend) Archive(ctx context.Context, r Retired, doc []byte) error {
	dir := b.legacyDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create legacy directory: %w", err)
	}
	data, err := json.MarshalIndent(archiveEntry{Retired: r, Pet: doc}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal archive: %w", err)
	}
	return writeAtomic(filepath.Join(dir, r.ID+".json"), data)
}

func (b *FileBackend) History(ctx context.Context) ([]Retired, error) {
	entries, err := os.ReadDir(b.legacyDir())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Retired
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(b.legacyDir(), e.Name()))
		if err != nil {
			return nil, err
		}
		var entry archiveEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			// Skip files we cannot read rather than hiding the rest
			continue
		}
		out = append(out, entry.Retired)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RetiredAt.After(out[j].RetiredAt) })
	return out, nil
}

// writeAtomic writes data to a temporary file in the target directory and
// renames it over path, so readers see either the old or the new document.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}

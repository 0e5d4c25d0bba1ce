package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const recordExt = ".json"

type fileStore struct {
	root string
}

// NewFileStore creates a Store backed by the filesystem. Each record is
// one JSON file named <id>.json under root.
func NewFileStore(root string) Store {
	return &fileStore{root: root}
}

func (s *fileStore) path(id string) string {
	return filepath.Join(s.root, id+recordExt)
}

func (s *fileStore) List(_ context.Context) ([]string, error) {
	var ids []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.root {
				return fs.SkipAll
			}
			return err
		}

		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), recordExt) {
			return nil
		}

		ids = append(ids, strings.TrimSuffix(d.Name(), recordExt))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return ids, nil
}

func (s *fileStore) Load(_ context.Context, ids ...string) ([]Record, error) {
	records := make([]Record, 0, len(ids))

	for _, id := range ids {
		data, err := os.ReadFile(s.path(id))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, id, err)
		}

		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, id, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *fileStore) Save(_ context.Context, records ...Record) error {
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSaveFailed, rec.ID, err)
		}

		if err := os.MkdirAll(s.root, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSaveFailed, rec.ID, err)
		}

		tmp, err := os.CreateTemp(s.root, ".tmp-*")
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSaveFailed, rec.ID, err)
		}
		tmpName := tmp.Name()

		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("%w: %s: %v", ErrSaveFailed, rec.ID, err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmpName)
			return fmt.Errorf("%w: %s: %v", ErrSaveFailed, rec.ID, err)
		}

		if err := os.Rename(tmpName, s.path(rec.ID)); err != nil {
			os.Remove(tmpName)
			return fmt.Errorf("%w: %s: %v", ErrSaveFailed, rec.ID, err)
		}
	}

	return nil
}

func (s *fileStore) Delete(_ context.Context, ids ...string) error {
	for _, id := range ids {
		if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete failed: %s: %w", id, err)
		}
	}

	return nil
}

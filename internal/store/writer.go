package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solarsync/internal/buckets"
	"solarsync/internal/models"
	"solarsync/internal/reconcile"
)

// ErrEmptyTable marks an attempt to persist a bucket with no rows. An
// explicit failure beats writing a headerless file that could be mistaken
// for a successfully fetched, truly empty period.
var ErrEmptyTable = errors.New("no rows to write")

// WriteBucket materializes a bucket file: header row, then one row per
// record in input order. The write goes to a temp file first and is renamed
// into place, so a crash mid-write never leaves a truncated bucket file.
// Any existing file at the target path is replaced.
func (s *Store) WriteBucket(siteID int64, kind models.Kind, b buckets.Bucket, t *reconcile.Table) (string, error) {
	if len(t.Rows) == 0 {
		return "", fmt.Errorf("bucket %s: %w", b.Label, ErrEmptyTable)
	}

	path := s.BucketPath(siteID, kind, b)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %v", filepath.Dir(path), err)
	}

	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %v", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(t.Columns); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing header: %v", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			file.Close()
			os.Remove(tmpPath)
			return "", fmt.Errorf("writing row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("flushing csv: %v", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %v", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming into place: %v", err)
	}

	return path, nil
}

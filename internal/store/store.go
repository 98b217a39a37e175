// Package store owns the on-disk layout of downloaded buckets:
// <root>/<site_id>/<kind>/<label>.csv for complete buckets, with a .partial
// suffix for the most recent, still-accumulating one. Completeness lives in
// the filename, which is what makes repeated runs resumable.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"solarsync/internal/buckets"
	"solarsync/internal/models"
)

const partialSuffix = ".partial"

// Decision is the completion tracker's verdict for one bucket.
type Decision int

const (
	Skip Decision = iota
	Fetch
)

type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

func (s *Store) kindDir(siteID int64, kind models.Kind) string {
	return filepath.Join(s.root, fmt.Sprintf("%d", siteID), string(kind))
}

// BucketPath returns the file path for a bucket, encoding its completeness
// in the suffix.
func (s *Store) BucketPath(siteID int64, kind models.Kind, b buckets.Bucket) string {
	name := b.Label + ".csv"
	if b.Partial {
		name += partialSuffix
	}
	return filepath.Join(s.kindDir(siteID, kind), name)
}

// Decide returns Skip iff a complete file already exists for the bucket.
// Partial buckets are always fetched: the current period may still be
// accumulating data server-side.
func (s *Store) Decide(siteID int64, kind models.Kind, b buckets.Bucket) Decision {
	if b.Partial {
		return Fetch
	}
	if _, err := os.Stat(s.BucketPath(siteID, kind, b)); err == nil {
		return Skip
	}
	return Fetch
}

// CleanupPartials deletes every partial file under the site/kind directory.
// Any partial file found at the start of a run is stale: either the run that
// wrote it was interrupted, or its bucket has since closed and will be
// re-fetched as complete. Returns the number of files removed.
func (s *Store) CleanupPartials(siteID int64, kind models.Kind) (int, error) {
	dir := s.kindDir(siteID, kind)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading %s: %v", dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), partialSuffix) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("removing stale partial %s: %v", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}

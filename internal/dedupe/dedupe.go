// Package dedupe merges the records of one sweep into a unique set
package dedupe

import "github.com/ilexum-group/gamemarks/pkg/models"

// Dedupe collapses records sharing a (name, url) key. The later record's fields
// win, but it keeps the position where the key was first seen.
func Dedupe(records []models.BookmarkRecord) []models.BookmarkRecord {
	out := make([]models.BookmarkRecord, 0, len(records))
	index := make(map[models.RecordKey]int, len(records))

	for _, r := range records {
		key := r.Key()
		if i, ok := index[key]; ok {
			out[i] = r
			continue
		}
		index[key] = len(out)
		out = append(out, r)
	}
	return out
}

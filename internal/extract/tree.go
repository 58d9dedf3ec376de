package extract

import (
	"regexp"

	"github.com/ilexum-group/gamemarks/internal/utils"
	"github.com/ilexum-group/gamemarks/pkg/models"
)

var gamesFolderPattern = regexp.MustCompile(`(?i)^games?$`)

// IsGamesFolder reports whether a folder name is exactly "game" or "games", any case.
func IsGamesFolder(name string) bool {
	return gamesFolderPattern.MatchString(name)
}

// Kind tags a source node for the shared walk.
type Kind int

const (
	// KindOther is neither folder nor leaf; its children are still walked.
	KindOther Kind = iota
	KindFolder
	KindLeaf
)

// Node is the classified view of one source node of type T.
type Node[T any] struct {
	Kind     Kind
	Name     string
	URL      string
	Children []T
}

// Classifier turns a format-specific node into a Node.
type Classifier[T any] func(T) Node[T]

// Walk extracts every leaf that sits anywhere below a Games folder.
// insideGames is threaded by value: once true it stays true for the subtree.
func Walk[T any](nodes []T, classify Classifier[T], insideGames bool) []models.BookmarkRecord {
	records := make([]models.BookmarkRecord, 0)
	for _, raw := range nodes {
		n := classify(raw)
		switch n.Kind {
		case KindFolder:
			records = append(records, Walk(n.Children, classify, insideGames || IsGamesFolder(n.Name))...)
		case KindLeaf:
			if insideGames && n.URL != "" {
				records = append(records, NewRecord(n.Name, n.URL))
			}
		default:
			records = append(records, Walk(n.Children, classify, insideGames)...)
		}
	}
	return records
}

// NewRecord builds a record with a fresh id and no icon
func NewRecord(name, url string) models.BookmarkRecord {
	return models.BookmarkRecord{
		ID:   utils.GenerateRandomID(),
		Name: name,
		URL:  url,
	}
}

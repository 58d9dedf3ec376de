package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilexum-group/gamemarks/pkg/models"
)

func rec(id, name, url string) models.BookmarkRecord {
	return models.BookmarkRecord{ID: id, Name: name, URL: url}
}

func TestDedupeLaterRecordWins(t *testing.T) {
	out := Dedupe([]models.BookmarkRecord{
		rec("1", "Chess", "https://chess.com"),
		rec("2", "Go", "https://online-go.com"),
		rec("3", "Chess", "https://chess.com"),
	})

	require.Len(t, out, 2)
	assert.Equal(t, "3", out[0].ID)
	assert.Equal(t, "Chess", out[0].Name)
	assert.Equal(t, "2", out[1].ID)
}

func TestDedupeKeyIsNameAndURL(t *testing.T) {
	out := Dedupe([]models.BookmarkRecord{
		rec("1", "Chess", "https://chess.com"),
		rec("2", "chess", "https://chess.com"),
		rec("3", "Chess", "https://chess.com/play"),
		rec("4", "", "https://chess.com"),
	})
	assert.Len(t, out, 4)
}

func TestDedupeEmpty(t *testing.T) {
	out := Dedupe(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

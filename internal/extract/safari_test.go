package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func safariLeaf(title, url string) map[string]any {
	return map[string]any{
		"WebBookmarkType": "WebBookmarkTypeLeaf",
		"URLString":       url,
		"URIDictionary":   map[string]any{"title": title},
	}
}

func safariList(title string, children ...map[string]any) map[string]any {
	list := make([]any, 0, len(children))
	for _, c := range children {
		list = append(list, c)
	}
	return map[string]any{
		"WebBookmarkType": "WebBookmarkTypeList",
		"Title":           title,
		"Children":        list,
	}
}

func safariFixture() map[string]any {
	return safariList("",
		safariList("BookmarksBar",
			safariLeaf("Apple", "https://apple.com"),
			safariList("GAMES",
				safariLeaf("Wordle", "https://nytimes.com/games/wordle"),
				safariList("Strategy",
					safariLeaf("Chess", "https://chess.com"),
				),
			),
		),
		safariList("BookmarksMenu",
			safariList("Gaming",
				safariLeaf("Twitch", "https://twitch.tv"),
			),
		),
	)
}

func TestParseSafariXML(t *testing.T) {
	data, err := plist.MarshalIndent(safariFixture(), plist.XMLFormat, "\t")
	require.NoError(t, err)

	records, err := ParseSafari(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wordle", "Chess"}, names(records))
	assert.Equal(t, "https://chess.com", records[1].URL)
	assert.Nil(t, records[0].Icon)
}

func TestParseSafariBinary(t *testing.T) {
	data, err := plist.Marshal(safariFixture(), plist.BinaryFormat)
	require.NoError(t, err)

	records, err := ParseSafari(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wordle", "Chess"}, names(records))
}

func TestParseSafariMalformed(t *testing.T) {
	_, err := ParseSafari([]byte("bplist00 garbage"))
	require.ErrorIs(t, err, ErrFileParse)
}

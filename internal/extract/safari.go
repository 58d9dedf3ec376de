package extract

import (
	"fmt"

	"howett.net/plist"

	"github.com/ilexum-group/gamemarks/pkg/models"
)

// Safari WebBookmarkType values
const (
	safariLeafType = "WebBookmarkTypeLeaf"
	safariListType = "WebBookmarkTypeList"
)

type safariNode struct {
	Title         string       `plist:"Title"`
	Type          string       `plist:"WebBookmarkType"`
	URLString     string       `plist:"URLString"`
	URIDictionary safariURIs   `plist:"URIDictionary"`
	Children      []safariNode `plist:"Children"`
}

type safariURIs struct {
	Title string `plist:"title"`
}

// ParseSafari extracts Games-folder bookmarks from a Safari Bookmarks.plist,
// binary or XML.
func ParseSafari(data []byte) ([]models.BookmarkRecord, error) {
	var root safariNode
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
	}
	// the root list itself is never a Games folder, only its descendants
	return Walk(root.Children, classifySafari, false), nil
}

func classifySafari(n safariNode) Node[safariNode] {
	switch {
	case n.Type == safariLeafType:
		return Node[safariNode]{Kind: KindLeaf, Name: n.URIDictionary.Title, URL: n.URLString}
	case n.Type == safariListType || len(n.Children) > 0:
		return Node[safariNode]{Kind: KindFolder, Name: n.Title, Children: n.Children}
	}
	return Node[safariNode]{Kind: KindOther}
}

package extract

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"

	"github.com/ilexum-group/gamemarks/internal/artifactdetector"
	"github.com/ilexum-group/gamemarks/pkg/models"
)

// Places JSON node types written by Firefox bookmark backups
const (
	placeContainerType = "text/x-moz-place-container"
	placeType          = "text/x-moz-place"
)

// maxMozLz4Size caps the declared decompressed size of a backup.
const maxMozLz4Size = 256 << 20

// IsPlacesTree reports whether a decoded JSON object is a Firefox backup root.
func IsPlacesTree(doc map[string]any) bool {
	typ, _ := doc["type"].(string)
	_, hasRoot := doc["root"]
	return typ == placeContainerType && hasRoot
}

// ParsePlacesJSON extracts Games-folder bookmarks from a Firefox JSON backup.
func ParsePlacesJSON(data []byte) ([]models.BookmarkRecord, error) {
	doc, err := decodeJSONObject(data)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return make([]models.BookmarkRecord, 0), nil
	}
	return Walk([]any{doc}, classifyPlaces, false), nil
}

// ParseMozLz4 decodes a .jsonlz4 backup and extracts it like ParsePlacesJSON.
func ParseMozLz4(data []byte) ([]models.BookmarkRecord, error) {
	raw, err := DecodeMozLz4(data)
	if err != nil {
		return nil, err
	}
	return ParsePlacesJSON(raw)
}

// DecodeMozLz4 unwraps the mozLz4 container: 8-byte magic, little-endian
// uint32 decompressed size, then a single LZ4 block.
func DecodeMozLz4(data []byte) ([]byte, error) {
	header := len(artifactdetector.MozLz4Signature) + 4
	if len(data) < header || !bytes.HasPrefix(data, artifactdetector.MozLz4Signature) {
		return nil, fmt.Errorf("%w: not a mozLz4 file", ErrFileParse)
	}
	size := binary.LittleEndian.Uint32(data[len(artifactdetector.MozLz4Signature):header])
	if size > maxMozLz4Size {
		return nil, fmt.Errorf("%w: mozLz4 declares %d bytes", ErrFileParse, size)
	}
	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data[header:], out)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %w", ErrFileParse, err)
	}
	return out[:n], nil
}

func classifyPlaces(v any) Node[any] {
	node, ok := v.(map[string]any)
	if !ok {
		if list, ok := v.([]any); ok {
			return Node[any]{Kind: KindOther, Children: list}
		}
		return Node[any]{Kind: KindOther}
	}
	title, _ := node["title"].(string)
	children, _ := node["children"].([]any)
	switch node["type"] {
	case placeContainerType:
		return Node[any]{Kind: KindFolder, Name: title, Children: children}
	case placeType:
		uri, _ := node["uri"].(string)
		return Node[any]{Kind: KindLeaf, Name: title, URL: uri}
	}
	return Node[any]{Kind: KindOther, Children: children}
}

package extract

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ilexum-group/gamemarks/pkg/models"
)

// ParseChromium extracts Games-folder bookmarks from a Chromium Bookmarks file.
// Documents without a "roots" object yield no records.
func ParseChromium(data []byte) ([]models.BookmarkRecord, error) {
	doc, err := decodeJSONObject(data)
	if err != nil {
		return nil, err
	}
	return ExtractChromium(doc["roots"]), nil
}

func decodeJSONObject(data []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
	}
	doc, _ := v.(map[string]any)
	return doc, nil
}

// ExtractChromium walks a decoded "roots" value.
func ExtractChromium(roots any) []models.BookmarkRecord {
	if roots == nil {
		return make([]models.BookmarkRecord, 0)
	}
	return Walk([]any{roots}, classifyChromium, false)
}

// classifyChromium recognises {"type":"folder"} and {"type":"url"} objects.
// Anything else falls back to its values so unknown wrappers are still searched.
func classifyChromium(v any) Node[any] {
	switch node := v.(type) {
	case []any:
		return Node[any]{Kind: KindOther, Children: node}
	case map[string]any:
		typ, _ := node["type"].(string)
		name, _ := node["name"].(string)
		switch typ {
		case "folder":
			children, _ := node["children"].([]any)
			return Node[any]{Kind: KindFolder, Name: name, Children: children}
		case "url":
			url, _ := node["url"].(string)
			return Node[any]{Kind: KindLeaf, Name: name, URL: url}
		}
		if children, ok := node["children"].([]any); ok {
			return Node[any]{Kind: KindOther, Children: children}
		}
		return Node[any]{Kind: KindOther, Children: mapValues(node)}
	}
	return Node[any]{Kind: KindOther}
}

// mapValues returns the values of m ordered by key.
func mapValues(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]any, 0, len(keys))
	for _, k := range keys {
		values = append(values, m[k])
	}
	return values
}

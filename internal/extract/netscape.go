package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ilexum-group/gamemarks/pkg/models"
)

// ParseNetscapeHTML extracts Games-folder bookmarks from a Netscape bookmark
// export (<DT><H3>folder</H3><DL>...</DL>, <DT><A HREF>leaf</A>).
func ParseNetscapeHTML(data []byte) ([]models.BookmarkRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
	}
	root := doc.Find("dl").First()
	if root.Length() == 0 {
		return make([]models.BookmarkRecord, 0), nil
	}
	return Walk([]*goquery.Selection{root}, classifyNetscape, false), nil
}

func classifyNetscape(s *goquery.Selection) Node[*goquery.Selection] {
	if goquery.NodeName(s) == "dl" {
		return Node[*goquery.Selection]{Kind: KindOther, Children: entries(s)}
	}

	if h3 := s.ChildrenFiltered("h3").First(); h3.Length() > 0 {
		list := s.ChildrenFiltered("dl").First()
		if list.Length() == 0 {
			// some exporters close the <DT> before the folder's <DL>
			list = s.NextFiltered("dl")
		}
		return Node[*goquery.Selection]{
			Kind:     KindFolder,
			Name:     strings.TrimSpace(h3.Text()),
			Children: entries(list),
		}
	}

	if a := s.ChildrenFiltered("a").First(); a.Length() > 0 {
		href, _ := a.Attr("href")
		return Node[*goquery.Selection]{
			Kind: KindLeaf,
			Name: strings.TrimSpace(a.Text()),
			URL:  strings.TrimSpace(href),
		}
	}

	return Node[*goquery.Selection]{Kind: KindOther}
}

// entries returns the <dt> items of a <dl>, including ones a parser nested under <p>.
func entries(list *goquery.Selection) []*goquery.Selection {
	items := make([]*goquery.Selection, 0)
	list.ChildrenFiltered("dt, p").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "p" {
			s.ChildrenFiltered("dt").Each(func(_ int, dt *goquery.Selection) {
				items = append(items, dt)
			})
			return
		}
		items = append(items, s)
	})
	return items
}

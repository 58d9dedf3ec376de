// Package models defines the records produced by a bookmark sweep
package models

// Browser identifies a browser family whose profiles are scanned
type Browser string

const (
	BrowserChrome  Browser = "chrome"
	BrowserEdge    Browser = "edge"
	BrowserFirefox Browser = "firefox"
	BrowserOpera   Browser = "opera"
	BrowserOperaGX Browser = "operaGX"
	BrowserSafari  Browser = "safari"
)

// Browsers lists every known browser in sweep order.
var Browsers = []Browser{
	BrowserChrome,
	BrowserEdge,
	BrowserFirefox,
	BrowserOpera,
	BrowserOperaGX,
	BrowserSafari,
}

// BrowserPathSet maps each browser to the profile roots considered for it on the current OS
type BrowserPathSet map[Browser][]string

// NewBrowserPathSet returns a set with an empty entry for every known browser
func NewBrowserPathSet() BrowserPathSet {
	set := make(BrowserPathSet, len(Browsers))
	for _, b := range Browsers {
		set[b] = make([]string, 0)
	}
	return set
}

// Add appends roots for a browser.
func (s BrowserPathSet) Add(b Browser, dirs ...string) {
	s[b] = append(s[b], dirs...)
}

// CandidateFile is a file that plausibly holds bookmark data
type CandidateFile struct {
	Path string `json:"path"`
	Ext  string `json:"ext"` // lowercase, includes the leading dot; empty when none
}

// BookmarkRecord is one normalized game bookmark.
// Identity for deduplication is the (Name, URL) pair, never ID.
type BookmarkRecord struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	URL  string  `json:"url"`
	Icon *string `json:"icon"` // always nil at extraction time
}

// RecordKey is the (name, url) identity of a BookmarkRecord
type RecordKey struct {
	Name string
	URL  string
}

// Key returns the deduplication identity of the record
func (r BookmarkRecord) Key() RecordKey {
	return RecordKey{Name: r.Name, URL: r.URL}
}

// ScanResult is the outcome of one sweep
type ScanResult struct {
	Bookmarks    []BookmarkRecord `json:"bookmarks"`
	ArtifactPath string           `json:"artifact_path"`
	Report       *ScanReport      `json:"report,omitempty"`
}

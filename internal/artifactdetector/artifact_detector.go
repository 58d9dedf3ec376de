// Package artifactdetector provides signature-based detection of bookmark store formats
package artifactdetector

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// File signatures for artifact detection
var (
	// SQLite header signature
	SQLiteSignature = []byte("SQLite format 3\x00")

	// Binary property list
	BinaryPlistSignature = []byte("bplist00")

	// Firefox mozLz4 container (bookmarkbackups/*.jsonlz4)
	MozLz4Signature = []byte("mozLz40\x00")

	// UTF-8 byte order mark, skipped before text sniffing
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// HeaderSize is how many leading bytes are read for detection
const HeaderSize = 512

// Format is the detected content format of a file
type Format string

const (
	FormatUnknown     Format = ""
	FormatSQLite      Format = "sqlite"
	FormatBinaryPlist Format = "bplist"
	FormatXMLPlist    Format = "xml_plist"
	FormatMozLz4      Format = "mozlz4"
	FormatJSON        Format = "json"
	FormatHTML        Format = "html"
	FormatXML         Format = "xml"
)

// IsPlist reports whether f is either plist encoding
func (f Format) IsPlist() bool {
	return f == FormatBinaryPlist || f == FormatXMLPlist
}

// Classifier provides stateless artifact classification
type Classifier struct {
	headerReader func(path string) ([]byte, error)
}

// NewClassifier creates a classifier that reads headers from the live filesystem
func NewClassifier() *Classifier {
	return &Classifier{headerReader: readHeader}
}

// SetHeaderReader sets a custom header reader
func (c *Classifier) SetHeaderReader(reader func(path string) ([]byte, error)) {
	c.headerReader = reader
}

// Detect reads the head of path and classifies it.
func (c *Classifier) Detect(path string) (Format, error) {
	data, err := c.headerReader(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to read header: %w", err)
	}
	return DetectFileType(data), nil
}

// DetectFileType detects the file type based on magic bytes/signatures
func DetectFileType(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, SQLiteSignature):
		return FormatSQLite
	case bytes.HasPrefix(data, BinaryPlistSignature):
		return FormatBinaryPlist
	case bytes.HasPrefix(data, MozLz4Signature):
		return FormatMozLz4
	}

	text := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")
	if len(text) == 0 {
		return FormatUnknown
	}

	switch text[0] {
	case '{', '[':
		return FormatJSON
	case '<':
		lower := bytes.ToLower(text)
		switch {
		case bytes.Contains(lower, []byte("<!doctype plist")), bytes.Contains(lower, []byte("<plist")):
			return FormatXMLPlist
		case bytes.Contains(lower, []byte("netscape-bookmark-file")),
			bytes.HasPrefix(lower, []byte("<!doctype html")),
			bytes.Contains(lower, []byte("<html")),
			bytes.Contains(lower, []byte("<dl")):
			return FormatHTML
		case bytes.HasPrefix(lower, []byte("<?xml")):
			return FormatXML
		}
	}

	return FormatUnknown
}

func readHeader(path string) ([]byte, error) {
	//nolint:gosec // G304: paths come from the candidate scan
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

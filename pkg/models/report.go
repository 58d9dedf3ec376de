// Package models - Scan report structures
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// ScanReport records what a single sweep looked at and what it produced.
type ScanReport struct {
	// Unique identifier for this run (UUID v4)
	ID string `json:"id"`

	// Host operating system the paths were resolved for
	OS string `json:"os"`

	// UTC timestamps bounding the sweep
	StartTimestamp time.Time `json:"start_timestamp"`
	EndTimestamp   time.Time `json:"end_timestamp"`
	Duration       string    `json:"duration"`

	// Base directories that existed and were scanned
	ScannedDirs []string `json:"scanned_dirs"`

	// One entry per candidate file handed to the dispatcher
	Files []FileReport `json:"files"`

	// Records before and after deduplication
	ExtractedCount int `json:"extracted_count"`
	UniqueCount    int `json:"unique_count"`

	// Written artifact and its SHA-256
	ArtifactPath   string `json:"artifact_path"`
	ArtifactSHA256 string `json:"artifact_sha256"`
}

// FileReport describes the extraction outcome for one candidate file
type FileReport struct {
	Browser Browser `json:"browser"`
	Path    string  `json:"path"`
	Format  string  `json:"format"`
	Records int     `json:"records"`
	Error   string  `json:"error,omitempty"`
}

// NewScanReport starts a report for a sweep on the given OS.
func NewScanReport(osName string) *ScanReport {
	return &ScanReport{
		ID:             uuid.New().String(),
		OS:             osName,
		StartTimestamp: time.Now().UTC(),
		ScannedDirs:    make([]string, 0),
		Files:          make([]FileReport, 0),
	}
}

// AddFile appends a per-file outcome.
func (r *ScanReport) AddFile(f FileReport) {
	r.Files = append(r.Files, f)
	r.ExtractedCount += f.Records
}

// FailedFiles returns how many files produced an error.
func (r *ScanReport) FailedFiles() int {
	n := 0
	for _, f := range r.Files {
		if f.Error != "" {
			n++
		}
	}
	return n
}

// Finalize closes the report and hashes the artifact at artifactPath.
func (r *ScanReport) Finalize(artifactPath string, uniqueCount int) error {
	r.EndTimestamp = time.Now().UTC()
	r.Duration = r.EndTimestamp.Sub(r.StartTimestamp).String()
	r.UniqueCount = uniqueCount
	r.ArtifactPath = artifactPath

	//nolint:gosec // G304: artifact path is produced by the result writer
	f, err := os.Open(artifactPath)
	if err != nil {
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("failed to hash artifact: %w", err)
	}
	r.ArtifactSHA256 = hex.EncodeToString(h.Sum(nil))
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ilexum-group/gamemarks/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	urlStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func renderScanSummary(result models.ScanResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Game bookmark sweep") + "\n")

	if r := result.Report; r != nil {
		row(&b, "Run", r.ID)
		row(&b, "Profile roots", fmt.Sprintf("%d", len(r.ScannedDirs)))
		row(&b, "Files", fmt.Sprintf("%d (%d failed)", len(r.Files), r.FailedFiles()))
		row(&b, "Records", fmt.Sprintf("%d extracted, %d unique", r.ExtractedCount, r.UniqueCount))
		row(&b, "Duration", r.Duration)
		for _, f := range r.Files {
			if f.Error != "" {
				b.WriteString("  " + errStyle.Render("✗ "+f.Path) + labelStyle.Render(" "+f.Error) + "\n")
			}
		}
	}
	row(&b, "Artifact", result.ArtifactPath)
	return b.String()
}

func renderRecordList(path string, records []models.BookmarkRecord) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d game bookmark(s)", len(records))) + labelStyle.Render(" from "+path) + "\n")
	for _, r := range records {
		name := r.Name
		if name == "" {
			name = "(untitled)"
		}
		b.WriteString("  " + okStyle.Render("•") + " " + name + " " + urlStyle.Render(r.URL) + "\n")
	}
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString("  " + labelStyle.Render(fmt.Sprintf("%-14s", label)) + value + "\n")
}

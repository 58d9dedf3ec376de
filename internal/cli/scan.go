package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilexum-group/gamemarks/internal/scanner"
	"github.com/ilexum-group/gamemarks/pkg/gamemarks"
	"github.com/ilexum-group/gamemarks/pkg/models"
)

var scanFlags struct {
	ignore []string
	json   bool
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Sweep browser profiles and write a new bookmark artifact",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringSliceVar(&scanFlags.ignore, "ignore", nil, "Glob of candidate file names to skip (repeatable)")
	scanCmd.Flags().BoolVar(&scanFlags.json, "json", false, "Print the records as JSON instead of a summary")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	if err := scanner.ValidatePatterns(scanFlags.ignore); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.IgnorePatterns = append(cfg.IgnorePatterns, scanFlags.ignore...)

	result, err := gamemarks.Scan(cfg)
	if err != nil {
		return err
	}

	if scanFlags.json {
		return printJSON(cmd, result.Bookmarks)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderScanSummary(result))
	return nil
}

func printJSON(cmd *cobra.Command, records []models.BookmarkRecord) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

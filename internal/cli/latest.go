package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilexum-group/gamemarks/internal/output"
)

var latestFlags struct {
	json bool
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the records of the most recent artifact",
	Args:  cobra.NoArgs,
	RunE:  runLatest,
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every bookmark artifact in the results directory",
	Args:  cobra.NoArgs,
	RunE:  runPurge,
}

func init() {
	latestCmd.Flags().BoolVar(&latestFlags.json, "json", false, "Print the records as JSON instead of a list")
	rootCmd.AddCommand(latestCmd)
	rootCmd.AddCommand(purgeCmd)
}

func runLatest(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, err := output.Latest(cfg.ResultsDir)
	if err != nil {
		return err
	}
	records, err := output.Load(path)
	if err != nil {
		return err
	}

	if latestFlags.json {
		return printJSON(cmd, records)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderRecordList(path, records))
	return nil
}

func runPurge(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	n, err := output.Purge(cfg.ResultsDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d artifact(s) deleted from %s\n", okStyle.Render("✓"), n, cfg.ResultsDir)
	return nil
}

// Package cli implements the gamemarks command line
package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ilexum-group/gamemarks/internal/config"
	"github.com/ilexum-group/gamemarks/internal/utils"
)

var rootFlags struct {
	configPath string
	resultsDir string
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "gamemarks",
	Short: "Collect game bookmarks from every browser on this machine",
	Long: `gamemarks sweeps the profiles of Chrome, Edge, Firefox, Opera, Opera GX and
Safari, extracts every bookmark filed under a folder named "Game" or "Games",
removes duplicates and writes them to <results dir>/game_bookmarks_<timestamp>.json.

Configuration sources, lowest to highest precedence:
  defaults, gamemarks.yaml, .env, GAMEMARKS_* environment variables, flags`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.configPath, "config", "c", "", "Path to a YAML config file (default ./gamemarks.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootFlags.resultsDir, "results-dir", "o", "", "Directory holding bookmark artifacts")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")
}

// setupLogging sends log lines to stderr so stdout stays parseable
func setupLogging(cmd *cobra.Command, _ []string) error {
	if utils.DefaultLogger == nil {
		if err := utils.InitDefaultLogger(); err != nil {
			return err
		}
	}
	utils.DefaultLogger.SetOutput(cmd.ErrOrStderr())
	return nil
}

// loadConfig resolves the effective configuration for a command and applies its log level
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	_ = godotenv.Load()

	path := rootFlags.configPath
	if path == "" {
		path = config.ConfigFileName
	}
	cfg, err := config.LoadFile(path)
	switch {
	case errors.Is(err, config.ErrConfigNotFound) && rootFlags.configPath == "":
		cfg = config.Default()
	case err != nil:
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("results-dir") {
		cfg.ResultsDir = rootFlags.resultsDir
	}

	level, err := utils.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if rootFlags.verbose {
		level, _ = utils.ParseLevel("debug")
	}
	if utils.DefaultLogger != nil {
		utils.DefaultLogger.SetLevel(level)
	}
	return cfg, nil
}

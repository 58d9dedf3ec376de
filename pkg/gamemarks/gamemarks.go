// Package gamemarks is the library entry point for a game bookmark sweep.
//
// A sweep resolves the browser profile roots of the current host, scans them
// for bookmark stores, extracts every bookmark filed under a folder named
// "Game" or "Games" (any case), removes duplicates and writes the result to
// <results dir>/game_bookmarks_<timestamp>.json.
package gamemarks

import (
	"os"
	"runtime"

	"github.com/ilexum-group/gamemarks/internal/acquisition"
	"github.com/ilexum-group/gamemarks/internal/browserpath"
	"github.com/ilexum-group/gamemarks/internal/config"
	"github.com/ilexum-group/gamemarks/internal/extract"
	"github.com/ilexum-group/gamemarks/internal/output"
	"github.com/ilexum-group/gamemarks/internal/scanner"
	"github.com/ilexum-group/gamemarks/internal/utils"
	"github.com/ilexum-group/gamemarks/pkg/models"
)

// ScanBookmarks runs one sweep with the environment's configuration and returns
// the unique records. It fails only when the artifact cannot be written.
func ScanBookmarks() ([]models.BookmarkRecord, error) {
	result, err := Scan(config.Load())
	if err != nil {
		return nil, err
	}
	return result.Bookmarks, nil
}

// Scan runs one sweep with cfg and returns the full result including the report
func Scan(cfg *config.Config) (models.ScanResult, error) {
	if utils.DefaultLogger == nil {
		// only fails for an empty app name
		_ = utils.InitDefaultLogger()
	}

	paths := models.NewBrowserPathSet()
	if home, err := os.UserHomeDir(); err != nil {
		// no profile roots, the sweep still writes an empty artifact
		utils.LogWarn("Home directory unavailable", utils.ErrMeta(err))
	} else {
		paths = browserpath.Resolve(runtime.GOOS, home)
	}

	s := scanner.New(scanner.NewHostFileAccessor(), cfg.IgnorePatterns)
	a := acquisition.New(runtime.GOOS, paths, s, extract.NewDispatcher(), output.NewWriter(cfg.ResultsDir))
	return a.Run()
}

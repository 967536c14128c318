package main

import (
	"flag"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/level"
	"github.com/milk9111/platformer/levels"
)

func main() {
	configPath := flag.String("config", "", "path to a game.yaml config")
	levelsDir := flag.String("levels", "levels", "directory of level JSON files")
	watch := flag.Bool("watch", false, "reload the current level when its file changes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "platformer"})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config unavailable, using defaults", "err", err)
	}

	loader := newLevelSet(*levelsDir)
	lvl, err := loader.Load(0)
	if err != nil {
		logger.Warn("first level unavailable, using built-in level", "err", err)
		lvl = level.Default()
	}

	session := game.NewSession(lvl, loader, cfg.Tuning, logger)
	session.Camera.SetSmooth(cfg.Camera.Smooth)

	var watcher *level.Watcher
	if *watch {
		w, err := level.NewWatcher(*levelsDir)
		if err != nil {
			logger.Warn("level watcher unavailable", "dir", *levelsDir, "err", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle(cfg.Window.Title)

	logger.Info("starting", "levels", loader.Len(), "zoom", cfg.Window.Zoom)

	if err := ebiten.RunGame(NewShell(session, cfg, logger, watcher)); err != nil {
		logger.Fatal("game loop exited", "err", err)
	}
}

// newLevelSet lists level JSON files from dir in name order, falling back to
// the embedded set when the directory is empty or missing.
func newLevelSet(dir string) *level.FileSet {
	var paths []string
	if entries, err := os.ReadDir(dir); err == nil {
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
				continue
			}
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
		sort.Strings(paths)
	}
	if len(paths) == 0 {
		paths = append(paths, levels.Names...)
	}
	return &level.FileSet{Paths: paths, FS: levels.FS}
}

package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"relicrun/internal/config"
	"relicrun/internal/game"
	"relicrun/internal/levels"
)

func main() {
	tuningPath := flag.String("tuning", config.DefaultFile, "tuning file, embedded defaults when missing")
	watch := flag.Bool("watch", true, "reload tuning and level files when they change")
	debug := flag.Bool("debug", false, "start with the debug panel open")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if execPath, err := os.Executable(); err == nil {
		useExecutableDir(execPath, log)
	} else {
		log.Warn("locate executable", "error", err)
	}

	tuning, err := config.Load(*tuningPath)
	if err != nil {
		log.Error("load tuning", "error", err)
		os.Exit(1)
	}

	session, err := game.NewSession(tuning, levels.Names(), log)
	if err != nil {
		log.Error("start session", "error", err)
		os.Exit(1)
	}

	g := game.New(session, log)
	g.TuningPath = *tuningPath
	g.DebugMode = *debug

	if *watch {
		var dirs []string
		for _, dir := range []string{levels.DiskDir, filepath.Dir(*tuningPath)} {
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				dirs = append(dirs, dir)
			}
		}
		w, err := config.NewWatcher(dirs...)
		if err != nil {
			log.Warn("hot reload disabled", "error", err)
		} else {
			defer w.Close()
			g.Watcher = w
			log.Info("watching", "dirs", dirs)
		}
	}

	g.Run()
}

// useExecutableDir changes to the executable's directory for deployed builds
// so relative asset and level paths resolve. "go run" binaries live in a
// go-build temp directory and are left alone. Reports whether it changed.
func useExecutableDir(execPath string, log *slog.Logger) bool {
	execDir := filepath.Dir(execPath)
	if strings.Contains(execDir, "go-build") {
		return false
	}
	if err := os.Chdir(execDir); err != nil {
		log.Warn("change to executable dir", "dir", execDir, "error", err)
		return false
	}
	return true
}

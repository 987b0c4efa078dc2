package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vecdraw/internal/editor"
	"vecdraw/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vecdraw:", err)
		os.Exit(1)
	}
}

func run() error {
	logPath := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "log at debug level")
	tolerance := flag.Float64("tolerance", editor.DefaultConfig().CloseTolerance, "ring closing tolerance in canonical units")
	flag.Parse()

	if *logPath != "" {
		f, err := setupLogging(*logPath, *debug)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	cfg := editor.DefaultConfig()
	cfg.CloseTolerance = *tolerance
	m := tui.New(editor.NewSession(cfg))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		editor.Logger().Error("program exited", "err", err)
		return err
	}
	return nil
}

// setupLogging routes editor logs to the file at path. The caller closes it.
func setupLogging(path string, debug bool) (*os.File, error) {
	f, err := tea.LogToFile(path, "vecdraw")
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	editor.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}

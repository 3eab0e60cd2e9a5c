package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/donthitclouds/internal/config"
	"github.com/tomz197/donthitclouds/internal/loop"
)

const defaultSettingsPath = "donthitclouds.yaml"

func main() {
	logger, closeLog := newLogger()
	defer closeLog()

	settingsPath := config.GetEnv("CLOUDS_SETTINGS", defaultSettingsPath)
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// Ask the terminal for its background before raw mode takes over stdin.
	out := termenv.NewOutput(os.Stdout)
	dark := settings.DarkMode(out.HasDarkBackground)
	logger.Info("settings loaded", "path", settingsPath, "appearance", settings.Appearance, "dark", dark)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// Ctrl-C arrives as a key in raw mode; SIGTERM still needs handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	session := loop.NewSession(os.Stdin, os.Stdout, loop.Options{
		Settings: settings,
		DarkMode: dark,
		Output:   out,
		Logger:   logger,
	})
	if err := session.Run(ctx); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs to CLOUDS_LOG_FILE when set. Stdout is the game screen,
// so without a file the log is discarded.
func newLogger() (*log.Logger, func()) {
	path := config.GetEnv("CLOUDS_LOG_FILE", "")
	if path == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "clouds",
	})
	if level, err := log.ParseLevel(config.GetEnv("CLOUDS_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	return logger, func() { _ = f.Close() }
}

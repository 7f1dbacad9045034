// cmd/textwriter/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // standard log for FATAL errors before the logger is ready
	"os"

	"github.com/bethropolis/textwriter/internal/app"
	"github.com/bethropolis/textwriter/internal/config"
	"github.com/bethropolis/textwriter/internal/logger"
	"github.com/bethropolis/textwriter/internal/theme"
)

func main() {
	// --- Argument & Flag Parsing ---
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [file...]\n", config.AppName)
		fs.PrintDefaults()
	}
	flags := config.NewFlags(fs)
	files, err := flags.Parse(os.Args[1:])
	if err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppTitle, config.Version)
		return
	}

	// --- Configuration ---
	cfg, res := config.Load(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	logPath := cfg.Logger.LogFilePath
	if logPath == "" {
		logPath = logger.DefaultLogPath(config.AppName, config.DefaultLogFileName)
	}
	logOut, err := logger.OpenOutput(logPath)
	if err != nil {
		stlog.Fatalf("Failed to open log output '%s': %v", logPath, err)
	}
	defer logOut.Close()
	logger.Init(cfg.Logger, logOut)

	logger.Infof("Starting %s %s...", config.AppTitle, config.Version)
	logger.Debugf("Log file: %s", logPath)
	if res.FileErr != nil {
		logger.Warnf("Config: %v (using defaults)", res.FileErr)
	} else if res.Path != "" {
		logger.Debugf("Config file: %s", res.Path)
	}
	for _, key := range res.Undecoded {
		logger.Warnf("Config: unknown key '%s' ignored", key)
	}
	if len(files) > 0 {
		logger.Debugf("Files specified: %v", files)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Theme ---
	th, err := theme.Load(cfg.Editor.ThemeFile)
	if err != nil {
		logger.Warnf("Theme: %v (using built-in theme)", err)
	}

	// --- Create and Run App ---
	editor, err := app.New(app.Options{Config: cfg, Theme: th, Files: files})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := editor.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppTitle)
}

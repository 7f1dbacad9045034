package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// DefaultLogPath returns <UserCacheDir>/<app>/<file>, or file itself if no cache dir exists.
func DefaultLogPath(app, file string) string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return file
	}
	return filepath.Join(dir, app, file)
}

// OpenOutput opens the log destination. "-" writes to stderr; any other path
// is a size-rotated file.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log dir '%s': %w", dir, err)
		}
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}, nil
}

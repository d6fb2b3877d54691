package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures rotating file output.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Output returns the writer for log records. With an empty path it returns
// fallback unchanged; otherwise a size-rotated file writer that the caller
// must close on shutdown.
func Output(opts FileOptions, fallback io.Writer) io.Writer {
	if opts.Path == "" {
		return fallback
	}
	return &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
}

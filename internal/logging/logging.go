package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the rotating log file inside the log directory.
const LogFileName = "shiptracker.log"

// Init installs the global logger with dual sinks: os.Stderr and a rotating file in logDir.
func Init(verbose bool, logDir string) {
	fileWriter, err := FileWriter(logDir)
	if err != nil {
		// A read-only install still gets console logging.
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	log.Logger = New(os.Stderr, fileWriter, verbose)
}

// New builds a logger writing to a console sink and, when fileWriter is non-nil, a file sink.
func New(console io.Writer, fileWriter io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	noColor := true
	if f, ok := console.(*os.File); ok {
		noColor = !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	var out io.Writer = consoleWriter
	if fileWriter != nil {
		out = zerolog.MultiLevelWriter(io.Writer(consoleWriter), fileWriter)
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Logger()
}

// FileWriter returns a rotating writer for dir, creating it if needed.
func FileWriter(dir string) (io.Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %q: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return nil, fmt.Errorf("log directory %q is not writable: %w", dir, err)
	}
	_ = os.Remove(testFile)

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, LogFileName),
		MaxSize:    16, // megabytes
		MaxBackups: 8,
		MaxAge:     90, // days
		Compress:   true,
	}, nil
}

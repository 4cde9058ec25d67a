package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/ezrec/mipsu/mips"
	"github.com/ezrec/mipsu/stream"
	"github.com/ezrec/mipsu/translate"
)

var f = translate.From

var errInternal = errors.New(f("internal error"))

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF6B6B"))

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// parseError reports whether err comes from the content of the input.
func parseError(err error) bool {
	var skipped stream.ErrSkipped
	var unit *stream.ErrUnit
	return errors.As(err, &skipped) ||
		errors.As(err, &unit) ||
		errors.Is(err, mips.ErrSyntax) ||
		errors.Is(err, mips.ErrSemantic) ||
		errors.Is(err, mips.ErrRange)
}

// internalError marks errors that are neither usage nor parse errors, such as
// failing file I/O, as internal.
func internalError(err error) error {
	if err == nil || errors.Is(err, stream.ErrUsage) || parseError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", errInternal, err)
}

// exitCode maps an error onto the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return EXIT_OK
	case errors.Is(err, errInternal):
		return EXIT_INTERNAL
	case parseError(err):
		return EXIT_PARSE
	default:
		// Usage errors, including those raised by the flag parser.
		return EXIT_USAGE
	}
}

// reportError prints the fatal error line.
func reportError(w io.Writer, err error) {
	msg := fmt.Sprintf("mipsu: %v.", err)
	if isTerminal(w) {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

// newLogger builds the console logger that carries stream warnings.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	config := zapcore.EncoderConfig{
		NameKey:        "logger",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeName:     zapcore.FullNameEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if isTerminal(w) {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(w), level)

	return zap.New(core).Named("mipsu")
}

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"go.trai.ch/meowstrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
}

// New creates a Logger writing to w, as JSON when jsonMode is set.
func New(w io.Writer, jsonMode bool) *Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = NewPrettyHandler(w, opts)
	}

	return &Logger{
		logger:   slog.New(handler),
		jsonMode: jsonMode,
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Success logs the successful completion of a step.
func (l *Logger) Success(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, SuccessKey, true)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// WarnError logs a non-fatal error with its cause chain and metadata.
func (l *Logger) WarnError(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Warn("operation degraded", "error", err)
		return
	}

	l.logger.Warn(formatErrorEntries(collectErrorEntries(err), warningHeadline))
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err), errorHeadline))
}

// errorEntry is one message of an error chain with the metadata attached to it.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

type entryCollector struct {
	entries []errorEntry
	pending map[string]any
}

// collectErrorEntries flattens err into its messages.
// Joined errors are walked depth-first; metadata-only zerr wrappers are folded
// into the entry they decorate.
func collectErrorEntries(err error) []errorEntry {
	c := &entryCollector{}
	c.walk(err)
	if len(c.pending) > 0 && len(c.entries) > 0 {
		last := &c.entries[len(c.entries)-1]
		last.Metadata = merge(last.Metadata, c.pending)
	}
	return c.entries
}

func (c *entryCollector) walk(err error) {
	for err != nil {
		switch e := err.(type) { //nolint:errorlint // each link of the chain is inspected on purpose
		case *zerr.Error:
			c.add(e.Message(), e.Metadata())
			err = e.Unwrap()
		case interface{ Unwrap() []error }:
			for _, child := range e.Unwrap() {
				c.walk(child)
			}
			return
		default:
			c.add(err.Error(), nil)
			return
		}
	}
}

func (c *entryCollector) add(msg string, meta map[string]any) {
	if msg == "" {
		c.pending = merge(c.pending, meta)
		return
	}
	c.entries = append(c.entries, errorEntry{Message: msg, Metadata: merge(c.pending, meta)})
	c.pending = nil
}

func merge(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

const (
	errorHeadline   = "Error: "
	warningHeadline = "Warning: "
)

// formatErrorEntries renders entries as a headline followed by its causes.
//
//	Error: package sync failed
//	       argv: [meow --root /mnt/lfs sync]
//
//	  Caused by:
//	    → exit status 1
func formatErrorEntries(entries []errorEntry, headline string) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var indent string
		if i == 0 {
			lines = append(lines, headline+msgLines[0])
			indent = strings.Repeat(" ", utf8.RuneCountInString(headline))
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+msgLines[0])
			indent = "      "
		}

		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			value := strings.ReplaceAll(fmt.Sprint(entry.Metadata[key]), "\n", "\n"+indent+"  ")
			lines = append(lines, indent+key+": "+value)
		}
	}

	return strings.Join(lines, "\n")
}

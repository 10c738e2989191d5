// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// Format selects the log output handler.
type Format string

const (
	// FormatJSON writes JSON records to stderr.
	FormatJSON Format = "json"
	// FormatText writes key=value records to stderr.
	FormatText Format = "text"
	// FormatJournal sends records to the systemd journal.
	FormatJournal Format = "journal"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatText), string(FormatJournal)}
}

// ParseLogLevel converts a level name to slog.Level. Unknown names map to INFO.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger creates a JSON logger on stderr tagged with module and
// version. Source locations are added at debug level.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newLogger(os.Stderr, module, version, ParseLogLevel(level), FormatJSON)
}

// NewLogger creates a logger with the given format. FormatJournal falls back
// to JSON on stderr when the journal is not available.
func NewLogger(module, version, level string, format Format) *slog.Logger {
	return newLogger(os.Stderr, module, version, ParseLogLevel(level), format)
}

func newLogger(w io.Writer, module, version string, lvl slog.Level, format Format) *slog.Logger {
	var h slog.Handler
	switch format {
	case FormatJournal:
		if journalEnabled() {
			h = NewJournalHandler(lvl)
			break
		}
		h = newJSONHandler(w, lvl)
		defer slog.New(h).Warn("systemd journal not available, logging to stderr")
	case FormatText:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: lvl <= slog.LevelDebug,
		})
	default:
		h = newJSONHandler(w, lvl)
	}

	return slog.New(h).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

func newJSONHandler(w io.Writer, lvl slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
}

// SetDefaultStructuredLogger installs a JSON logger as the slog default,
// reading the level from LOG_LEVEL.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv("LOG_LEVEL"))
}

// SetDefaultStructuredLoggerWithLevel installs a JSON logger with an explicit level.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// SetDefaultLogger installs a logger with the given level and format.
func SetDefaultLogger(module, version, level string, format Format) {
	slog.SetDefault(NewLogger(module, version, level, format))
}

// NewLogLogger returns a standard library logger that writes through the
// default slog handler at the given level.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	h := slog.Default().Handler()
	if addSource {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level, AddSource: true})
	}
	return slog.NewLogLogger(h, level)
}

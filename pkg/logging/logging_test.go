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
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "osinfo", "v1.2.3", slog.LevelInfo, FormatJSON)

	logger.Debug("hidden")
	logger.Info("collector finished", "collector", "cpu", "points", 5)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "collector finished", rec["msg"])
	assert.Equal(t, "osinfo", rec["module"])
	assert.Equal(t, "v1.2.3", rec["version"])
	assert.Equal(t, "cpu", rec["collector"])
	assert.InDelta(t, 5, rec["points"], 0)
	assert.NotContains(t, rec, slog.SourceKey)
}

func TestNewLogger_DebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "osinfo", "dev", slog.LevelDebug, FormatJSON)
	logger.Debug("sample")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Contains(t, rec, slog.SourceKey)
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "osinfo", "dev", slog.LevelInfo, FormatText)
	logger.Warn("disk skipped", "disk", "/dev/sda1")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=\"disk skipped\"")
	assert.Contains(t, out, "disk=/dev/sda1")
	assert.Contains(t, out, "module=osinfo")
}

func TestNewLogger_JournalFallback(t *testing.T) {
	orig := journalEnabled
	journalEnabled = func() bool { return false }
	t.Cleanup(func() { journalEnabled = orig })

	var buf bytes.Buffer
	logger := newLogger(&buf, "osinfo", "dev", slog.LevelInfo, FormatJournal)
	logger.Info("after")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "systemd journal not available")
	assert.Contains(t, string(lines[1]), "after")
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "text", "journal"}, Formats())
}

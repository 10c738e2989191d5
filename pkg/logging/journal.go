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
	"context"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/coreos/go-systemd/v22/journal"
)

// journal hooks, replaced in tests
var (
	journalEnabled = journal.Enabled
	journalSend    = journal.Send
)

// JournalHandler is a slog.Handler writing to the systemd journal. The
// record message is the journal MESSAGE; attributes become journal fields
// with upper-cased names, groups joined by underscores.
type JournalHandler struct {
	level  slog.Leveler
	fields map[string]string
	group  string
}

// NewJournalHandler creates a handler emitting records at or above level.
func NewJournalHandler(level slog.Leveler) *JournalHandler {
	return &JournalHandler{
		level:  level,
		fields: map[string]string{},
	}
}

// Enabled implements slog.Handler.
func (h *JournalHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *JournalHandler) Handle(_ context.Context, r slog.Record) error {
	vars := make(map[string]string, len(h.fields)+r.NumAttrs()+1)
	for k, v := range h.fields {
		vars[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		addField(vars, h.group, a)
		return true
	})
	vars["SYSLOG_IDENTIFIER"] = identifier(vars)

	return journalSend(r.Message, priority(r.Level), vars)
}

// WithAttrs implements slog.Handler.
func (h *JournalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	for _, a := range attrs {
		addField(nh.fields, nh.group, a)
	}
	return nh
}

// WithGroup implements slog.Handler.
func (h *JournalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	nh.group = joinField(h.group, name)
	return nh
}

func (h *JournalHandler) clone() *JournalHandler {
	fields := make(map[string]string, len(h.fields))
	for k, v := range h.fields {
		fields[k] = v
	}
	return &JournalHandler{level: h.level, fields: fields, group: h.group}
}

func addField(vars map[string]string, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinField(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			addField(vars, prefix, ga)
		}
		return
	}
	name := fieldName(joinField(group, a.Key))
	if name == "" {
		return
	}
	vars[name] = a.Value.String()
}

func joinField(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}

// fieldName converts a key to a valid journal field name: upper-case
// letters, digits and underscores, not starting with an underscore.
func fieldName(key string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return unicode.ToUpper(r)
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	name = strings.TrimLeft(name, "_")
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "F_" + name
	}
	if slices.Contains(reservedFields, name) {
		name = "ATTR_" + name
	}
	return name
}

// fields the journal or this handler sets itself
var reservedFields = []string{"MESSAGE", "PRIORITY", "SYSLOG_IDENTIFIER"}

func identifier(vars map[string]string) string {
	if m := vars["MODULE"]; m != "" {
		return m
	}
	return "osinfo"
}

func priority(l slog.Level) journal.Priority {
	switch {
	case l >= slog.LevelError:
		return journal.PriErr
	case l >= slog.LevelWarn:
		return journal.PriWarning
	case l >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

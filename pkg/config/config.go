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

package config

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/osinfo/pkg/defaults"
	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
)

// Key is a connection setting name.
type Key string

const (
	KeyHostname Key = "hostname"
	KeyPort     Key = "port"
	KeyUsername Key = "username"
	KeyPassword Key = "password"
	KeyDatabase Key = "database"
)

// Keys lists every recognized setting in canonical order.
var Keys = []Key{KeyHostname, KeyPort, KeyUsername, KeyPassword, KeyDatabase}

// RedactedValue replaces secrets in Redacted output.
const RedactedValue = "******"

// ConnectionConfig holds the resolved settings. A key is present only when
// the file or the environment supplied it.
type ConnectionConfig map[Key]string

// Get returns the value for k and whether it was supplied.
func (c ConnectionConfig) Get(k Key) (string, bool) {
	v, ok := c[k]
	return v, ok
}

// Value returns the value for k, or "" when absent.
func (c ConnectionConfig) Value(k Key) string {
	return c[k]
}

// Redacted returns a copy with the password masked.
func (c ConnectionConfig) Redacted() ConnectionConfig {
	out := maps.Clone(c)
	if out == nil {
		out = ConnectionConfig{}
	}
	if _, ok := out[KeyPassword]; ok {
		out[KeyPassword] = RedactedValue
	}
	return out
}

// Document returns the settings keyed by name for printing. The port is
// rendered as a number when it parses as one; every other value keeps its
// string form.
func (c ConnectionConfig) Document() map[string]any {
	out := make(map[string]any, len(c))
	for k, v := range c {
		if k == KeyPort {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				out[string(k)] = n
				continue
			}
		}
		out[string(k)] = v
	}
	return out
}

// Status describes what happened when the config file was loaded.
type Status int

const (
	// StatusLoaded means the file was read and parsed.
	StatusLoaded Status = iota
	// StatusAbsent means there was no file at the path.
	StatusAbsent
	// StatusMalformed means the file exists but could not be read or parsed.
	StatusMalformed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusAbsent:
		return "absent"
	case StatusMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// LoadResult reports the outcome of reading the config file. Err is set only
// for StatusMalformed and carries the CONFIG_LOAD code.
type LoadResult struct {
	Path   string
	Status Status
	Err    error
}

// LookupFunc reads an environment variable. It matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Option is a functional option for configuring a Resolver.
type Option func(*Resolver)

// WithLookup replaces the environment lookup, which defaults to os.LookupEnv.
func WithLookup(fn LookupFunc) Option {
	return func(r *Resolver) {
		r.lookup = fn
	}
}

// WithPrefix replaces the environment variable prefix.
func WithPrefix(prefix string) Option {
	return func(r *Resolver) {
		r.prefix = prefix
	}
}

// Resolver merges the config file with environment overrides.
type Resolver struct {
	path   string
	prefix string
	lookup LookupFunc
}

// NewResolver creates a resolver reading the file at path.
func NewResolver(path string, opts ...Option) *Resolver {
	r := &Resolver{
		path:   path,
		prefix: defaults.EnvPrefix,
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve loads the file and applies environment overrides. A variable that
// is set, even to the empty string, wins over the file.
func (r *Resolver) Resolve() (ConnectionConfig, LoadResult) {
	base, res := Load(r.path)
	return Merge(base, r.prefix, r.lookup), res
}

// EnvName returns the environment variable that overrides k.
func EnvName(prefix string, k Key) string {
	return prefix + "_" + strings.ToUpper(string(k))
}

// Merge applies environment overrides on top of base and returns a new config.
func Merge(base ConnectionConfig, prefix string, lookup LookupFunc) ConnectionConfig {
	out := ConnectionConfig{}
	for _, k := range Keys {
		if v, ok := base[k]; ok {
			out[k] = v
		}
		if lookup == nil {
			continue
		}
		if v, ok := lookup(EnvName(prefix, k)); ok {
			out[k] = v
		}
	}
	return out
}

// Load reads the config file at path. It never fails: an absent or
// malformed file yields an empty config and the reason in LoadResult.
func Load(path string) (ConnectionConfig, LoadResult) {
	res := LoadResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			res.Status = StatusAbsent
			return ConnectionConfig{}, res
		}
		res.Status = StatusMalformed
		res.Err = apperrors.WrapWithContext(apperrors.ErrCodeConfigLoad, "failed to read config file", err,
			map[string]any{"path": path})
		return ConnectionConfig{}, res
	}

	cfg, err := Parse(data)
	if err != nil {
		res.Status = StatusMalformed
		res.Err = apperrors.WrapWithContext(apperrors.ErrCodeConfigLoad, "failed to parse config file", err,
			map[string]any{"path": path})
		return ConnectionConfig{}, res
	}

	res.Status = StatusLoaded
	return cfg, res
}

// Parse decodes a YAML document and extracts the recognized keys of the
// influx section. Unknown keys are ignored, null values are treated as
// absent and scalars are kept in their string form.
func Parse(data []byte) (ConnectionConfig, error) {
	cfg := ConnectionConfig{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	raw, ok := doc[defaults.ConfigSection]
	if !ok || raw == nil {
		return cfg, nil
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q must be a mapping, got %T", defaults.ConfigSection, raw)
	}

	for _, k := range Keys {
		v, ok := section[string(k)]
		if !ok || v == nil {
			continue
		}
		switch v.(type) {
		case string, int, int64, uint64, float64, bool:
			cfg[k] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("%s.%s must be a scalar, got %T", defaults.ConfigSection, k, v)
		}
	}
	return cfg, nil
}

// DefaultPath returns the config file next to the running executable, or
// the bare file name when the executable cannot be located.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return defaults.ConfigFileName
	}
	return filepath.Join(filepath.Dir(exe), defaults.ConfigFileName)
}

// PresentKeys returns the supplied keys in canonical order.
func (c ConnectionConfig) PresentKeys() []Key {
	return slices.DeleteFunc(slices.Clone(Keys), func(k Key) bool {
		_, ok := c[k]
		return !ok
	})
}

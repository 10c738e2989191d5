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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/osinfo/pkg/config"
	"github.com/NVIDIA/osinfo/pkg/defaults"
	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
)

// clearEnv unsets every connection override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range config.Keys {
		env := config.EnvName(defaults.EnvPrefix, k)
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
	t.Setenv(defaults.EnvPrefix+"_CONFIG", "")
	require.NoError(t, os.Unsetenv(defaults.EnvPrefix+"_CONFIG"))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &out
	cmd.ErrWriter = &bytes.Buffer{}
	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCmd_Definition(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, name, cmd.Name)
	assert.NotNil(t, cmd.Action)
	assert.NotNil(t, cmd.Before)

	for _, flagName := range []string{"log-level", "log-format", "config", "sink", "format", "summary", "metrics-file", "cpu-interval", "all-partitions"} {
		found := false
		for _, f := range cmd.Flags {
			for _, n := range f.Names() {
				if n == flagName {
					found = true
				}
			}
		}
		assert.True(t, found, "flag %q not found", flagName)
	}

	require.Len(t, cmd.Commands, 1)
	assert.Equal(t, "config", cmd.Commands[0].Name)
}

func TestRootCmd_EmptyConfigFailsWithConnectionError(t *testing.T) {
	clearEnv(t)
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "--cpu-interval", "1ms")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConnection, apperrors.CodeOf(err))
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"log format", []string{"--log-format", "xml"}, "unknown log format"},
		{"sink format", []string{"--sink", "stdout", "--format", "csv"}, "unknown format"},
		{"summary", []string{"--sink", "stdout", "--summary", "csv"}, "invalid summary"},
		{"sink", []string{"--sink", "kafka"}, "unknown sink"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRootCmd_UnknownSinkCode(t *testing.T) {
	clearEnv(t)
	_, err := run(t, "--sink", "kafka")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
}

func TestConfigCmd(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `influx:
  hostname: influx.local
  port: 8086
  password: secret
`)
	t.Setenv(config.EnvName(defaults.EnvPrefix, config.KeyDatabase), "telegraf")

	out, err := run(t, "--config", path, "config")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{
		"hostname": "influx.local",
		"port":     float64(8086),
		"password": "secret",
		"database": "telegraf",
	}, got)
}

func TestConfigCmd_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "influx:\n  hostname: from-file\n")
	t.Setenv(config.EnvName(defaults.EnvPrefix, config.KeyHostname), "from-env")
	t.Setenv(defaults.EnvPrefix+"_CONFIG", path)

	out, err := run(t, "config", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "hostname: from-env\n", out)
}

func TestConfigCmd_YAMLPortIsNumber(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "influx:\n  port: 8086\n")

	out, err := run(t, "--config", path, "config", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "port: 8086\n", out)
}

func TestConfigCmd_Redact(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "influx:\n  username: admin\n  password: secret\n")

	out, err := run(t, "--config", path, "config", "--redact")
	require.NoError(t, err)
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, config.RedactedValue)
	assert.Contains(t, out, "admin")
}

func TestConfigCmd_NoSources(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "config")
	require.NoError(t, err)
	assert.JSONEq(t, "{}", out)
}

func TestConfigCmd_MalformedFileIsNotFatal(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "influx: [unclosed\n")
	t.Setenv(config.EnvName(defaults.EnvPrefix, config.KeyPort), "9999")

	out, err := run(t, "--config", path, "config")
	require.NoError(t, err)
	assert.JSONEq(t, `{"port":9999}`, out)
}

func TestConfigCmd_InvalidFormat(t *testing.T) {
	clearEnv(t)
	_, err := run(t, "config", "--format", "xml")
	require.Error(t, err)
}

func TestRootCmd_FileSinkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("reads host counters")
	}
	clearEnv(t)

	dir := t.TempDir()
	points := filepath.Join(dir, "points.json")
	metrics := filepath.Join(dir, "osinfo.prom")

	out, err := run(t,
		"--config", filepath.Join(dir, "missing.yml"),
		"--sink", "file:"+points,
		"--cpu-interval", "10ms",
		"--summary", "json",
		"--metrics-file", metrics,
	)
	if err != nil {
		t.Logf("run reported failures: %v", err)
	}

	data, readErr := os.ReadFile(points)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), `"cpu_info"`)
	assert.Contains(t, string(data), `"memory_info"`)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "RunReport", report["kind"])

	_, statErr := os.Stat(metrics)
	assert.NoError(t, statErr)
}

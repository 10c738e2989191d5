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

package sink

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/influxdata/influxdb1-client/models"
	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/osinfo/pkg/config"
	"github.com/NVIDIA/osinfo/pkg/defaults"
	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/measurement"
)

var testTime = measurement.NewTimestamp(time.Date(2025, 1, 15, 10, 30, 0, 123456000, time.UTC))

func testBatch() measurement.Batch {
	stamp := measurement.NewStamp("node-1", testTime)
	return measurement.Batch{
		stamp.Builder(measurement.NameCPU).
			Tag(measurement.TagCPU, "cpu").
			SetFloat64("cpu", 75).
			SetFloat64("idle", 25).
			SetFloat64("user", 60.3).
			Build(),
		stamp.Builder(measurement.NameDisk).
			Tag(measurement.TagDisk, "/dev/sda1").
			SetString("device", "/dev/sda1").
			SetString("mountpoint", "/").
			SetUint64("total", 512110190592).
			SetFloat64("percent", 41.7).
			Build(),
	}
}

// influxServer records line protocol writes.
type influxServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	bodies   [][]byte
}

func newInfluxServer(t *testing.T, status int, resp string) *influxServer {
	s := &influxServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, r)
		s.bodies = append(s.bodies, body)
		s.mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, resp)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *influxServer) recorded() ([]*http.Request, [][]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests, s.bodies
}

func influxConfig(url string) config.ConnectionConfig {
	return config.ConnectionConfig{
		config.KeyHostname: url,
		config.KeyUsername: "osinfo",
		config.KeyPassword: "secret",
		config.KeyDatabase: "telegraf",
	}
}

func TestNewInflux_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ConnectionConfig
	}{
		{"empty config", config.ConnectionConfig{}},
		{"nil config", nil},
		{"missing hostname", config.ConnectionConfig{config.KeyDatabase: "db"}},
		{"missing database", config.ConnectionConfig{config.KeyHostname: "localhost"}},
		{"blank database", config.ConnectionConfig{config.KeyHostname: "localhost", config.KeyDatabase: "  "}},
		{"non numeric port", config.ConnectionConfig{config.KeyHostname: "localhost", config.KeyDatabase: "db", config.KeyPort: "http"}},
		{"port out of range", config.ConnectionConfig{config.KeyHostname: "localhost", config.KeyDatabase: "db", config.KeyPort: "70000"}},
		{"unsupported scheme", config.ConnectionConfig{config.KeyHostname: "udp://localhost", config.KeyDatabase: "db"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewInflux(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.Equal(t, apperrors.ErrCodeConnection, apperrors.CodeOf(err))
		})
	}
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.ConnectionConfig
		defaultPort string
		want        string
	}{
		{"plain host gets default port", config.ConnectionConfig{config.KeyHostname: "influx"}, "8086", "http://influx:8086"},
		{"explicit port", config.ConnectionConfig{config.KeyHostname: "influx", config.KeyPort: "9999"}, "8086", "http://influx:9999"},
		{"scheme kept", config.ConnectionConfig{config.KeyHostname: "https://influx.example.com"}, "8086", "https://influx.example.com:8086"},
		{"port in hostname", config.ConnectionConfig{config.KeyHostname: "http://influx:1234"}, "8086", "http://influx:1234"},
		{"port setting wins over hostname", config.ConnectionConfig{config.KeyHostname: "http://influx:1234", config.KeyPort: "4321"}, "8086", "http://influx:4321"},
		{"no default port", config.ConnectionConfig{config.KeyHostname: "prom"}, "", "http://prom"},
		{"empty port uses default", config.ConnectionConfig{config.KeyHostname: "influx", config.KeyPort: ""}, "8086", "http://influx:8086"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := endpoint(tt.cfg, tt.defaultPort)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestInflux_BatchPrecision(t *testing.T) {
	bp, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  "telegraf",
		Precision: defaults.InfluxPrecision,
	})
	require.NoError(t, err)
	assert.Equal(t, defaults.InfluxPrecision, bp.Precision())
}

func TestInflux_SubmitRoundTrip(t *testing.T) {
	srv := newInfluxServer(t, http.StatusNoContent, "")

	s, err := NewInflux(influxConfig(srv.URL), WithUserAgent("osinfo/test"))
	require.NoError(t, err)
	defer s.Close()

	batch := testBatch()
	require.NoError(t, s.Submit(context.Background(), batch))

	requests, bodies := srv.recorded()
	require.Len(t, requests, 1, "one batch is one backend write")
	req := requests[0]
	assert.Equal(t, "/write", req.URL.Path)
	assert.Equal(t, "telegraf", req.URL.Query().Get("db"))
	assert.Equal(t, defaults.InfluxPrecision, req.URL.Query().Get("precision"))
	assert.Equal(t, "osinfo/test", req.UserAgent())
	user, pass, ok := req.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "osinfo", user)
	assert.Equal(t, "secret", pass)

	points, err := models.ParsePointsWithPrecision(bodies[0], time.Now().UTC(), req.URL.Query().Get("precision"))
	require.NoError(t, err)
	require.Len(t, points, len(batch))

	for i, want := range batch {
		got := points[i]
		assert.Equal(t, want.Measurement, string(got.Name()))
		assert.Equal(t, map[string]string(want.Tags), got.Tags().Map())
		assert.True(t, want.Time.Equal(got.Time()), "time %v != %v", got.Time(), want.Time)
		assert.Zero(t, got.Time().Nanosecond()%int(time.Microsecond), "time keeps microsecond precision")

		fields, err := got.Fields()
		require.NoError(t, err)
		require.Len(t, fields, len(want.Fields))
		for k, r := range want.Fields {
			if f, ok := measurement.ToFloat64(r); ok {
				gf, ok := measurement.ToFloat64(measurement.ToReading(fields[k]))
				require.True(t, ok, "field %s should be numeric, got %T", k, fields[k])
				assert.Equal(t, f, gf, "field %s", k)
				continue
			}
			assert.Equal(t, r.Any(), fields[k], "field %s", k)
		}
	}
}

func TestInflux_UnsignedWrittenAsSigned(t *testing.T) {
	fields := influxFields(measurement.Fields{
		"small": measurement.Uint64(7),
		"huge":  measurement.Uint64(1<<64 - 1),
		"pct":   measurement.Float64(1.5),
		"name":  measurement.Str("eth0"),
		"skip":  nil,
	})

	assert.Equal(t, int64(7), fields["small"])
	assert.Equal(t, int64(1<<63-1), fields["huge"])
	assert.Equal(t, 1.5, fields["pct"])
	assert.Equal(t, "eth0", fields["name"])
	assert.NotContains(t, fields, "skip")
}

func TestInflux_SubmitErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   apperrors.ErrorCode
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"authorization failed"}`, apperrors.ErrCodeUnauthorized},
		{"forbidden", http.StatusForbidden, `{"error":"user not found"}`, apperrors.ErrCodeUnauthorized},
		{"type conflict", http.StatusBadRequest, `{"error":"field type conflict"}`, apperrors.ErrCodeBackendRejected},
		{"missing database", http.StatusNotFound, `{"error":"database not found: \"telegraf\""}`, apperrors.ErrCodeBackendRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newInfluxServer(t, tt.status, tt.body)

			s, err := NewInflux(influxConfig(srv.URL))
			require.NoError(t, err)

			err = s.Submit(context.Background(), testBatch())
			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.CodeOf(err))
		})
	}
}

func TestInflux_ConnectionRefused(t *testing.T) {
	srv := newInfluxServer(t, http.StatusNoContent, "")
	url := srv.URL
	srv.Close()

	s, err := NewInflux(influxConfig(url), WithTimeout(2*time.Second))
	require.NoError(t, err, "construction does not connect")

	err = s.Submit(context.Background(), testBatch())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConnection, apperrors.CodeOf(err))
}

func TestInflux_EmptyBatchAndCanceledContext(t *testing.T) {
	srv := newInfluxServer(t, http.StatusNoContent, "")
	s, err := NewInflux(influxConfig(srv.URL))
	require.NoError(t, err)

	require.NoError(t, s.Submit(context.Background(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Submit(ctx, testBatch()), context.Canceled)

	requests, _ := srv.recorded()
	assert.Empty(t, requests)
}

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
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/golang/snappy"
	"github.com/prometheus/prometheus/prompb"

	"github.com/NVIDIA/osinfo/pkg/config"
	"github.com/NVIDIA/osinfo/pkg/defaults"
	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/measurement"
)

// LabelDatabase carries the configured database on every remote-write series.
const LabelDatabase = "db"

const maxErrorBody = 512

// RemoteWrite posts batches to a Prometheus remote-write endpoint.
type RemoteWrite struct {
	client    *http.Client
	url       string
	username  string
	password  string
	database  string
	userAgent string
}

// NewRemoteWrite builds the sink from the resolved config. Hostname is
// required; basic auth is used when a username is configured.
func NewRemoteWrite(cfg config.ConnectionConfig, opts ...Option) (*RemoteWrite, error) {
	u, err := endpoint(cfg, "")
	if err != nil {
		return nil, err
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = defaults.RemoteWritePath
	}

	o := newHTTPOptions(opts)
	c := o.client
	if c == nil {
		c = &http.Client{Timeout: o.timeout, Transport: newDefaultHTTPTransport()}
	}

	slog.Debug("remote-write sink ready", slog.String("url", u.String()))

	return &RemoteWrite{
		client:    c,
		url:       u.String(),
		username:  cfg.Value(config.KeyUsername),
		password:  cfg.Value(config.KeyPassword),
		database:  cfg.Value(config.KeyDatabase),
		userAgent: o.userAgent,
	}, nil
}

// Submit converts the batch into one WriteRequest and posts it.
func (s *RemoteWrite) Submit(ctx context.Context, b measurement.Batch) error {
	if len(b) == 0 {
		return nil
	}

	wr := ToWriteRequest(b, s.database)
	raw, err := wr.Marshal()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to encode write request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(snappy.Encode(nil, raw)))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeConnection, "failed to create request", err)
	}
	req.Header.Set("Content-Encoding", "snappy")
	req.Header.Set("Content-Type", "application/x-protobuf")
	req.Header.Set("X-Prometheus-Remote-Write-Version", "0.1.0")
	req.Header.Set("User-Agent", s.userAgent)
	if s.username != "" {
		req.SetBasicAuth(s.username, s.password)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return apperrors.WrapWithContext(apperrors.ErrCodeConnection, "failed to reach remote-write endpoint", err,
			map[string]any{"url": s.url})
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	errCtx := map[string]any{"url": s.url, "status": resp.StatusCode}
	cause := fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return apperrors.WrapWithContext(apperrors.ErrCodeUnauthorized, "remote-write rejected credentials", cause, errCtx)
	}
	return apperrors.WrapWithContext(apperrors.ErrCodeBackendRejected, "remote-write rejected write", cause, errCtx)
}

// Close releases idle connections.
func (s *RemoteWrite) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// ToWriteRequest maps points to series: each numeric field becomes the
// series <measurement>_<field>; tags and string fields become labels, as
// does database when set. Timestamps are in milliseconds.
func ToWriteRequest(b measurement.Batch, database string) *prompb.WriteRequest {
	wr := &prompb.WriteRequest{}
	for _, p := range b {
		base := make([]prompb.Label, 0, len(p.Tags)+4)
		for _, k := range p.TagKeys() {
			base = append(base, prompb.Label{Name: k, Value: p.Tags[k]})
		}
		for _, k := range p.FieldKeys() {
			if s, err := p.GetString(k); err == nil {
				base = append(base, prompb.Label{Name: k, Value: s})
			}
		}
		if database != "" {
			base = append(base, prompb.Label{Name: LabelDatabase, Value: database})
		}

		ts := p.Time.UnixMilli()
		for _, k := range p.FieldKeys() {
			v, ok := sampleValue(p.Fields[k])
			if !ok {
				continue
			}
			labels := make([]prompb.Label, 0, len(base)+1)
			labels = append(labels, prompb.Label{Name: "__name__", Value: p.Measurement + "_" + k})
			labels = append(labels, base...)
			sort.Slice(labels, func(i, j int) bool { return labels[i].Name < labels[j].Name })

			wr.Timeseries = append(wr.Timeseries, prompb.TimeSeries{
				Labels:  labels,
				Samples: []prompb.Sample{{Value: v, Timestamp: ts}},
			})
		}
	}
	return wr
}

func sampleValue(r measurement.Reading) (float64, bool) {
	if r == nil {
		return 0, false
	}
	if v, ok := measurement.ToFloat64(r); ok {
		return v, true
	}
	if v, ok := r.Any().(bool); ok {
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

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
	"errors"
	"log/slog"
	"net/url"
	"strings"

	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/NVIDIA/osinfo/pkg/config"
	"github.com/NVIDIA/osinfo/pkg/defaults"
	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/measurement"
)

// Influx writes batches to an InfluxDB 1.x database over HTTP.
type Influx struct {
	client   client.Client
	addr     string
	database string
}

// NewInflux builds the client from the resolved config. Hostname and
// database are required; port defaults to 8086. No request is made until
// the first Submit.
func NewInflux(cfg config.ConnectionConfig, opts ...Option) (*Influx, error) {
	database := strings.TrimSpace(cfg.Value(config.KeyDatabase))
	if database == "" {
		return nil, apperrors.New(apperrors.ErrCodeConnection, "database is not configured")
	}

	u, err := endpoint(cfg, defaults.InfluxPort)
	if err != nil {
		return nil, err
	}

	o := newHTTPOptions(opts)
	c, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:      u.String(),
		Username:  cfg.Value(config.KeyUsername),
		Password:  cfg.Value(config.KeyPassword),
		UserAgent: o.userAgent,
		Timeout:   o.timeout,
	})
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeConnection, "failed to create influx client", err,
			map[string]any{"addr": u.String()})
	}

	slog.Debug("influx sink ready", slog.String("addr", u.String()), slog.String("database", database))

	return &Influx{
		client:   c,
		addr:     u.String(),
		database: database,
	}, nil
}

// Submit writes the batch as one request. Point times carry microsecond
// precision.
func (s *Influx) Submit(ctx context.Context, b measurement.Batch) error {
	if len(b) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	bp, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  s.database,
		Precision: defaults.InfluxPrecision,
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create batch", err)
	}

	for _, p := range b {
		pt, err := client.NewPoint(p.Measurement, p.Tags, influxFields(p.Fields), p.Time.Time)
		if err != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest, "invalid point", err,
				map[string]any{"measurement": p.Measurement})
		}
		bp.AddPoint(pt)
	}

	if err := s.client.Write(bp); err != nil {
		return classifyInfluxError(err, s.addr, s.database)
	}
	return nil
}

// Close releases idle connections.
func (s *Influx) Close() error {
	return s.client.Close()
}

// influxFields converts readings to the value types InfluxDB 1.x accepts.
// Unsigned integers are written as signed, clamped at MaxInt64.
func influxFields(fields measurement.Fields) map[string]any {
	out := make(map[string]any, len(fields))
	for k, r := range fields {
		if r == nil {
			continue
		}
		if v, ok := measurement.ToInt64(r); ok {
			out[k] = v
			continue
		}
		out[k] = r.Any()
	}
	return out
}

func classifyInfluxError(err error, addr, database string) error {
	ctx := map[string]any{"addr": addr, "database": database}

	var ue *url.Error
	if errors.As(err, &ue) {
		return apperrors.WrapWithContext(apperrors.ErrCodeConnection, "failed to reach influx", err, ctx)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "authorization failed") ||
		strings.Contains(msg, "authentication credentials") ||
		strings.Contains(msg, "user not found") {
		return apperrors.WrapWithContext(apperrors.ErrCodeUnauthorized, "influx rejected credentials", err, ctx)
	}
	return apperrors.WrapWithContext(apperrors.ErrCodeBackendRejected, "influx rejected write", err, ctx)
}

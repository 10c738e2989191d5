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
	"fmt"
	"strings"

	"github.com/NVIDIA/osinfo/pkg/config"
	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/measurement"
	"github.com/NVIDIA/osinfo/pkg/serializer"
)

// Sink accepts batches for storage.
type Sink interface {
	// Submit writes every point of b as one backend write.
	Submit(ctx context.Context, b measurement.Batch) error
	// Close releases the connection.
	Close() error
}

// Supported sink kinds.
const (
	KindInflux      = "influx"
	KindRemoteWrite = "remote-write"
	KindStdout      = "stdout"
	KindFilePrefix  = "file:"
)

// Kinds returns the accepted --sink values.
func Kinds() []string {
	return []string{KindInflux, KindRemoteWrite, KindStdout, KindFilePrefix + "<path>"}
}

// Options configures the sinks created by New.
type Options struct {
	// Version is reported in the User-Agent of HTTP sinks.
	Version string
	// Format is used by the stdout and file sinks.
	Format serializer.Format
}

// New creates the sink named by kind from the resolved connection config.
func New(kind string, cfg config.ConnectionConfig, opts Options) (Sink, error) {
	switch {
	case kind == "" || kind == KindInflux:
		return NewInflux(cfg, WithUserAgent(userAgent(opts.Version)))
	case kind == KindRemoteWrite:
		return NewRemoteWrite(cfg, WithUserAgent(userAgent(opts.Version)))
	case kind == KindStdout:
		return NewStdout(opts.Format), nil
	case strings.HasPrefix(kind, KindFilePrefix):
		return NewFile(opts.Format, strings.TrimPrefix(kind, KindFilePrefix))
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown sink %q, supported: %s", kind, strings.Join(Kinds(), ", ")))
	}
}

func userAgent(version string) string {
	if version == "" {
		version = "dev"
	}
	return "osinfo/" + version
}

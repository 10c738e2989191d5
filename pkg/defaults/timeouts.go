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

package defaults

import "time"

// Collector defaults.
const (
	// CPUSampleInterval is the window over which per-core CPU utilization is
	// measured. The CPU collector blocks for this long on every run.
	CPUSampleInterval = 1 * time.Second
)

// Sink defaults.
const (
	// InfluxPort is used when the resolved configuration has no port.
	InfluxPort = "8086"

	// InfluxPrecision is the wire precision of Influx batches. Point times are
	// already truncated to microseconds; "ns" is the unit accepted both by
	// the client (time.ParseDuration) and by influxd's precision parameter.
	InfluxPrecision = "ns"

	// SinkWriteTimeout bounds a single batch write to the backend.
	SinkWriteTimeout = 30 * time.Second

	// RemoteWritePath is appended to the remote-write address when the
	// configured hostname carries no path.
	RemoteWritePath = "/api/v1/write"
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Configuration defaults.
const (
	// EnvPrefix prefixes every environment override, e.g. INFLUX_OSINFO_HOSTNAME.
	EnvPrefix = "INFLUX_OSINFO"

	// ConfigFileName is looked up next to the executable when no path is given.
	ConfigFileName = "config.yml"

	// ConfigSection is the top-level key of the configuration file.
	ConfigSection = "influx"
)

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
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/osinfo/pkg/config"
	"github.com/NVIDIA/osinfo/pkg/defaults"
	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
)

// Option configures the HTTP based sinks.
type Option func(*httpOptions)

type httpOptions struct {
	userAgent string
	timeout   time.Duration
	client    *http.Client
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *httpOptions) {
		o.userAgent = ua
	}
}

// WithTimeout bounds a single write.
func WithTimeout(d time.Duration) Option {
	return func(o *httpOptions) {
		o.timeout = d
	}
}

// WithHTTPClient replaces the HTTP client of the remote-write sink.
func WithHTTPClient(c *http.Client) Option {
	return func(o *httpOptions) {
		o.client = c
	}
}

func newHTTPOptions(opts []Option) httpOptions {
	o := httpOptions{
		userAgent: userAgent(""),
		timeout:   defaults.SinkWriteTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newDefaultHTTPTransport() *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		MaxIdleConns:          10,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// endpoint builds the base URL of the backend from the hostname and port
// settings. The hostname may carry its own scheme; plain hostnames use http.
// An empty defaultPort leaves the port to the scheme.
func endpoint(cfg config.ConnectionConfig, defaultPort string) (*url.URL, error) {
	host := strings.TrimSpace(cfg.Value(config.KeyHostname))
	if host == "" {
		return nil, apperrors.New(apperrors.ErrCodeConnection, "hostname is not configured")
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	u, err := url.Parse(host)
	if err != nil || u.Hostname() == "" {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeConnection, "invalid hostname", err,
			map[string]any{"hostname": cfg.Value(config.KeyHostname)})
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeConnection, "unsupported scheme",
			map[string]any{"scheme": u.Scheme})
	}

	port, ok := cfg.Get(config.KeyPort)
	port = strings.TrimSpace(port)
	if !ok || port == "" {
		port = u.Port()
	}
	if port == "" {
		port = defaultPort
	}
	if port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n <= 0 || n > 65535 {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeConnection, "invalid port",
				map[string]any{"port": port})
		}
		u.Host = net.JoinHostPort(u.Hostname(), port)
	}
	return u, nil
}

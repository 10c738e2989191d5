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

// Package defaults provides centralized configuration constants for osinfo.
//
// This package defines the CPU sampling window, sink timeouts, and other
// defaults used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Categories
//
//   - Collector defaults: sampling window for CPU utilization
//   - Sink defaults: Influx port, write precision, HTTP client timeouts
//   - Configuration defaults: environment prefix and config file name
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/osinfo/pkg/defaults"
//
//	client := &http.Client{Timeout: defaults.HTTPClientTimeout}
//
// # Guidelines
//
//   - The CPU sampling window sets the floor of a run's wall-clock time
//   - Sink timeouts bound a single batch write, not the whole run
package defaults

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

// Package cli implements the osinfo command line.
//
// # Commands
//
// osinfo - run one collection-and-submit cycle:
//
//	osinfo [--sink influx|remote-write|stdout|file:<path>] [--summary json|yaml|table]
//
// Samples CPU (over a one second window), memory, swap, mounted disks and
// network interfaces, tags every point with the host name and a shared
// timestamp, and submits each batch to the sink. Failures are isolated per
// collector and per batch; the process exits 1 if any occurred.
//
// config - print the resolved connection configuration:
//
//	osinfo config [--format json|yaml|table] [--redact]
//
// # Global Flags
//
//	--config, -c   Config file (default: config.yml next to the executable)
//	--log-level    debug, info, warn, error (env LOG_LEVEL, default: info)
//	--log-format   json, text, journal (env LOG_FORMAT, default: json)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Run Flags
//
//	--sink            influx (default), remote-write, stdout, file:<path>
//	--format, -t      Format of the stdout and file sinks (default: json)
//	--summary         Print a run report in the given format
//	--metrics-file    Write Prometheus text metrics to a file
//	--cpu-interval    CPU sampling window (default: 1s)
//	--all-partitions  Include pseudo filesystems in disk collection
//
// # Usage Examples
//
// Submit to InfluxDB with settings from the environment:
//
//	INFLUX_OSINFO_HOSTNAME=influx.local INFLUX_OSINFO_DATABASE=telegraf osinfo
//
// Dry run printing points as YAML:
//
//	osinfo --sink stdout --format yaml
//
// Run from a systemd timer logging to the journal:
//
//	osinfo --log-format journal --metrics-file /var/lib/node_exporter/osinfo.prom
//
// # Exit Codes
//
//	0  every collector ran and every batch was accepted
//	1  invalid flags, sink construction failed, or any collector/submission failed
package cli

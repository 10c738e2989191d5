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

// Package runner performs one collection-and-submit cycle on the local host.
//
// # Overview
//
// A Runner resolves the run-wide Stamp (host and instant) once, then invokes
// the five collectors sequentially in a fixed order:
//
//	cpu, memory, swap, disk, network
//
// Every batch a collector produces is submitted to the Sink immediately.
// Failures are isolated: a collector that cannot read its counters, or a
// batch the sink rejects, is recorded and the run moves on. The Report
// returned by Run lists the outcome of every collector and Err joins all
// failures.
//
// # Usage
//
//	s, err := sink.New(sink.KindInflux, cfg, sink.Options{Version: version})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	r := &runner.Runner{Version: version, Sink: s}
//	report, err := r.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	if err := report.Err(); err != nil {
//	    // at least one collector or submission failed
//	}
//
// # Cancellation
//
// The context is checked before each collector and each batch. Once it is
// canceled the remaining collectors are reported as skipped.
//
// # Metrics
//
// Runs record Prometheus metrics in the default registry:
//
//   - osinfo_run_duration_seconds
//   - osinfo_run_total{status}
//   - osinfo_collector_duration_seconds{collector}
//   - osinfo_submissions_total{collector,status}
//   - osinfo_points_total{collector}
//
// WriteMetrics exports them in the textfile collector format.
package runner

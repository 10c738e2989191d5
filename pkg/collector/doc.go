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

// Package collector provides the interface and factory for the host samplers.
//
// # Overview
//
// Each collector reads one family of OS counters, converts the library's
// representation into a typed raw record and normalizes it into measurement
// points. Collectors keep no state between invocations: every value is either
// a point-in-time counter or a percentage computed over the sampling window.
//
// # Core Interface
//
//	type Collector interface {
//	    Collect(ctx context.Context, stamp measurement.Stamp) ([]measurement.Batch, error)
//	}
//
// The stamp carries the host tag and the run-wide timestamp. It is computed
// once by the caller so every point of a run shares the same time and host.
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation so the run coordinator
// can be tested with fakes:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithCPUSampleInterval(time.Second),
//	)
//	batches, err := factory.CreateMemoryCollector().Collect(ctx, stamp)
//
// # Available Collectors
//
//   - cpu: per-core and aggregate system/user/nice/idle percentages over a
//     blocking sampling window (cpu_info)
//   - memory: virtual memory counters (memory_info) and swap counters (swap_info)
//   - disk: usage of every mounted physical partition, one batch per disk (disk_info)
//   - network: cumulative per-interface I/O counters (network_info)
//
// # Error Handling
//
// Read failures are returned as StructuredError values with code
// COLLECTOR_READ. A canceled context is returned unwrapped.
package collector

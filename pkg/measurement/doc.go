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

// Package measurement defines the canonical telemetry record produced by the
// collectors and consumed by the sinks.
//
// # Core Types
//
//   - Point: one measurement record with a name, a run-wide Timestamp,
//     indexed Tags and non-indexed Fields
//   - Batch: an ordered sequence of Points submitted together
//   - Reading: interface for type-safe scalar field values (int, uint64,
//     float64, string, bool, etc.)
//   - Timestamp: UTC instant rendered with microsecond precision
//   - Stamp: the host and Timestamp shared by every Point of a run
//
// # Creating Points
//
// Collectors receive a Stamp holding the run-wide host and time and start
// every point from it:
//
//	p := stamp.Builder(measurement.NameMemory).
//	    SetUint64("total", vm.Total).
//	    SetFloat64("percent", vm.Percent).
//	    Build()
//
// Or construct directly; NewPoint copies the maps it is given:
//
//	p := measurement.NewPoint("swap_info", ts,
//	    measurement.Tags{"host": "node-1"},
//	    measurement.Fields{"total": measurement.Uint64(1 << 30)},
//	)
//
// # Rounding
//
// Percentages derived by this program are rounded to one decimal place with
// Round1 (or PointBuilder.SetPercent). Values passed through from the OS
// library are left as reported.
//
// # Serialization
//
// Points marshal to JSON and YAML with fields rendered as bare scalars and the
// time rendered in TimestampFormat:
//
//	{
//	  "measurement": "cpu_info",
//	  "time": "2025-01-15T10:30:00.123456Z",
//	  "tags": {"cpu": "cpu", "host": "node-1"},
//	  "fields": {"cpu": 75, "idle": 25, "nice": 5, "system": 10, "user": 60}
//	}
//
// Unmarshalling restores Readings with ToReading; integral JSON numbers come
// back as Int64 and fractional ones as Float64.
package measurement

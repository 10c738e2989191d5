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

// Package sink submits measurement batches to a storage backend.
//
// # Sinks
//
//   - influx: InfluxDB 1.x HTTP write API (default)
//   - remote-write: Prometheus remote-write endpoint (snappy-compressed protobuf)
//   - stdout, file:<path>: serialized output for dry runs
//
// Every sink writes one batch per Submit call as a single backend write and
// never retries. Failures are StructuredError values with one of the codes
// CONNECTION, UNAUTHORIZED or BACKEND_REJECTED.
//
// # Usage
//
//	s, err := sink.New(sink.KindInflux, cfg)
//	if err != nil {
//	    return err // CONNECTION when hostname or database is missing
//	}
//	defer s.Close()
//	if err := s.Submit(ctx, batch); err != nil {
//	    slog.Error("submit failed", slog.String("code", string(apperrors.CodeOf(err))))
//	}
package sink

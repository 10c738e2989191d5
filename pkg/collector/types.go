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

package collector

import (
	"context"

	"github.com/NVIDIA/osinfo/pkg/measurement"
)

// Collector samples one family of OS counters and normalizes them into
// batches of points carrying the run-wide stamp.
//
// A collector may return batches together with a non-nil error when only part
// of its input could be read; callers should submit what was returned and
// still report the error. Zero batches with a nil error means there was
// nothing to report.
type Collector interface {
	Collect(ctx context.Context, stamp measurement.Stamp) ([]measurement.Batch, error)
}

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

package memory

import (
	"context"
	"log/slog"

	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/measurement"
)

// Collector reports virtual memory as a single memory_info point.
type Collector struct {
	Source Source
}

// Collect returns one batch holding one point.
func (c *Collector) Collect(ctx context.Context, stamp measurement.Stamp) ([]measurement.Batch, error) {
	slog.Debug("collecting virtual memory")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vm, err := c.Source.Virtual(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCollectorRead, "failed to read virtual memory", err)
	}

	return []measurement.Batch{{NormalizeVirtual(stamp, vm)}}, nil
}

// NormalizeVirtual converts the raw counters into a memory_info point.
// Values are passed through without rounding.
func NormalizeVirtual(stamp measurement.Stamp, vm Virtual) measurement.Point {
	return stamp.Builder(measurement.NameMemory).
		SetUint64("total", vm.Total).
		SetUint64("available", vm.Available).
		SetFloat64("percent", vm.Percent).
		SetUint64("used", vm.Used).
		SetUint64("free", vm.Free).
		SetUint64("active", vm.Active).
		SetUint64("inactive", vm.Inactive).
		Build()
}

// SwapCollector reports swap usage as a single swap_info point.
type SwapCollector struct {
	Source Source
}

// Collect returns one batch holding one point.
func (c *SwapCollector) Collect(ctx context.Context, stamp measurement.Stamp) ([]measurement.Batch, error) {
	slog.Debug("collecting swap")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sw, err := c.Source.Swap(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCollectorRead, "failed to read swap", err)
	}

	return []measurement.Batch{{NormalizeSwap(stamp, sw)}}, nil
}

// NormalizeSwap converts the raw counters into a swap_info point.
func NormalizeSwap(stamp measurement.Stamp, sw Swap) measurement.Point {
	return stamp.Builder(measurement.NameSwap).
		SetUint64("total", sw.Total).
		SetFloat64("percent", sw.Percent).
		SetUint64("used", sw.Used).
		SetUint64("free", sw.Free).
		Build()
}

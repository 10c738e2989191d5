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

package cpu

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/measurement"
)

// AggregateTag is the cpu tag value of the point averaged across all cores.
const AggregateTag = "cpu"

// Collector reports per-core and aggregate CPU utilization.
type Collector struct {
	Source   Source
	Interval time.Duration
}

// Collect takes two snapshots Interval apart and returns a single batch with
// one point per core followed by the aggregate point. A host reporting no
// cores yields no batches.
func (c *Collector) Collect(ctx context.Context, stamp measurement.Stamp) ([]measurement.Batch, error) {
	slog.Debug("collecting cpu times", slog.Duration("interval", c.Interval))

	cores, err := Sample(ctx, c.Source, c.Interval)
	if err != nil {
		return nil, err
	}

	b := Normalize(stamp, cores)
	if len(b) == 0 {
		slog.Warn("no cpu cores reported")
		return nil, nil
	}
	return []measurement.Batch{b}, nil
}

// Sample reads src twice, interval apart, and returns per-core percentages.
func Sample(ctx context.Context, src Source, interval time.Duration) ([]Percent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	before, err := src.Times(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCollectorRead, "failed to read cpu times", err)
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	after, err := src.Times(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCollectorRead, "failed to read cpu times", err)
	}

	return TimesPercent(before, after), nil
}

// Normalize builds the cpu_info points: one per core tagged core<N> by
// enumeration index, then the aggregate tagged cpu.
func Normalize(stamp measurement.Stamp, cores []Percent) measurement.Batch {
	agg, ok := Aggregate(cores)
	if !ok {
		return nil
	}

	b := make(measurement.Batch, 0, len(cores)+1)
	for i, p := range cores {
		b = append(b, point(stamp, fmt.Sprintf("core%d", i), p))
	}
	return append(b, point(stamp, AggregateTag, agg))
}

func point(stamp measurement.Stamp, tag string, p Percent) measurement.Point {
	return stamp.Builder(measurement.NameCPU).
		Tag(measurement.TagCPU, tag).
		SetPercent("cpu", p.Busy()).
		SetPercent("system", p.System).
		SetPercent("user", p.User).
		SetPercent("nice", p.Nice).
		SetPercent("idle", p.Idle).
		Build()
}

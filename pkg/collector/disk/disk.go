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

package disk

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/measurement"
)

// Collector reports one disk_info point per mounted partition.
type Collector struct {
	Source Source

	// All includes pseudo and virtual filesystems.
	All bool
}

// Collect returns one single-point batch per readable partition. A partition
// whose usage cannot be read is skipped and its error is joined into the
// returned error, alongside the batches of the partitions that were read.
// No mounted partitions yields no batches and no error.
func (c *Collector) Collect(ctx context.Context, stamp measurement.Stamp) ([]measurement.Batch, error) {
	slog.Debug("collecting disk usage", slog.Bool("all", c.All))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parts, err := c.Source.Partitions(ctx, c.All)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCollectorRead, "failed to list partitions", err)
	}

	var (
		batches []measurement.Batch
		errs    []error
	)
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return batches, errors.Join(append(errs, err)...)
		}

		u, err := c.Source.Usage(ctx, p.Mountpoint)
		if err != nil {
			slog.Warn("failed to read disk usage",
				slog.String("device", p.Device),
				slog.String("mountpoint", p.Mountpoint),
				slog.String("error", err.Error()))
			errs = append(errs, apperrors.WrapWithContext(apperrors.ErrCodeCollectorRead,
				"failed to read disk usage", err, map[string]any{
					"device":     p.Device,
					"mountpoint": p.Mountpoint,
				}))
			continue
		}

		batches = append(batches, measurement.Batch{Normalize(stamp, p, u)})
	}

	return batches, errors.Join(errs...)
}

// Normalize converts one partition and its usage into a disk_info point
// tagged with the device path.
func Normalize(stamp measurement.Stamp, p Partition, u Usage) measurement.Point {
	return stamp.Builder(measurement.NameDisk).
		Tag(measurement.TagDisk, p.Device).
		SetString("device", p.Device).
		SetString("mountpoint", p.Mountpoint).
		SetString("fstype", p.Fstype).
		SetUint64("total", u.Total).
		SetUint64("used", u.Used).
		SetUint64("free", u.Free).
		SetFloat64("percent", u.Percent).
		Build()
}

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

	psdisk "github.com/shirou/gopsutil/disk"
)

// Partition is a mounted filesystem.
type Partition struct {
	Device     string
	Mountpoint string
	Fstype     string
}

// Usage holds a filesystem's capacity counters in bytes, plus the used percentage.
type Usage struct {
	Total   uint64
	Used    uint64
	Free    uint64
	Percent float64
}

// Source enumerates partitions and reads their usage.
type Source interface {
	// Partitions lists mounted partitions. When all is false pseudo and
	// virtual filesystems are excluded.
	Partitions(ctx context.Context, all bool) ([]Partition, error)
	Usage(ctx context.Context, mountpoint string) (Usage, error)
}

// NewSource returns a Source backed by gopsutil.
func NewSource() Source {
	return psSource{}
}

type psSource struct{}

func (psSource) Partitions(ctx context.Context, all bool) ([]Partition, error) {
	parts, err := psdisk.PartitionsWithContext(ctx, all)
	if err != nil {
		return nil, err
	}

	res := make([]Partition, 0, len(parts))
	for _, p := range parts {
		res = append(res, Partition{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
		})
	}
	return res, nil
}

func (psSource) Usage(ctx context.Context, mountpoint string) (Usage, error) {
	u, err := psdisk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		return Usage{}, err
	}
	return Usage{
		Total:   u.Total,
		Used:    u.Used,
		Free:    u.Free,
		Percent: u.UsedPercent,
	}, nil
}

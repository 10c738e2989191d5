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

	"github.com/shirou/gopsutil/mem"
)

// Virtual holds the virtual memory counters in bytes, plus the used percentage.
type Virtual struct {
	Total     uint64
	Available uint64
	Used      uint64
	Free      uint64
	Active    uint64
	Inactive  uint64
	Percent   float64
}

// Swap holds the swap counters in bytes, plus the used percentage.
type Swap struct {
	Total   uint64
	Used    uint64
	Free    uint64
	Percent float64
}

// Source reads memory counters.
type Source interface {
	Virtual(ctx context.Context) (Virtual, error)
	Swap(ctx context.Context) (Swap, error)
}

// NewSource returns a Source backed by gopsutil.
func NewSource() Source {
	return psSource{}
}

type psSource struct{}

func (psSource) Virtual(ctx context.Context) (Virtual, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Virtual{}, err
	}
	return Virtual{
		Total:     vm.Total,
		Available: vm.Available,
		Used:      vm.Used,
		Free:      vm.Free,
		Active:    vm.Active,
		Inactive:  vm.Inactive,
		Percent:   vm.UsedPercent,
	}, nil
}

func (psSource) Swap(ctx context.Context) (Swap, error) {
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return Swap{}, err
	}
	return Swap{
		Total:   sw.Total,
		Used:    sw.Used,
		Free:    sw.Free,
		Percent: sw.UsedPercent,
	}, nil
}

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

	pscpu "github.com/shirou/gopsutil/cpu"
)

// Source reads cumulative per-core CPU times.
type Source interface {
	Times(ctx context.Context) ([]Times, error)
}

// NewSource returns a Source backed by gopsutil.
func NewSource() Source {
	return psSource{}
}

type psSource struct{}

// Times returns one entry per logical core in enumeration order.
func (psSource) Times(ctx context.Context) ([]Times, error) {
	stats, err := pscpu.TimesWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	res := make([]Times, 0, len(stats))
	for _, s := range stats {
		res = append(res, Times{
			User:      s.User,
			Nice:      s.Nice,
			System:    s.System,
			Idle:      s.Idle,
			Iowait:    s.Iowait,
			Irq:       s.Irq,
			Softirq:   s.Softirq,
			Steal:     s.Steal,
			Guest:     s.Guest,
			GuestNice: s.GuestNice,
		})
	}
	return res, nil
}

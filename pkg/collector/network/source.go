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

package network

import (
	"context"

	psnet "github.com/shirou/gopsutil/net"
)

// Counters are one interface's cumulative I/O counters.
type Counters struct {
	Name        string
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
	Errin       uint64
	Errout      uint64
	Dropin      uint64
	Dropout     uint64
}

// Source reads per-interface counters.
type Source interface {
	Counters(ctx context.Context) ([]Counters, error)
}

// NewSource returns a Source backed by gopsutil.
func NewSource() Source {
	return psSource{}
}

type psSource struct{}

// Counters returns one entry per interface in the order the OS lists them.
func (psSource) Counters(ctx context.Context) ([]Counters, error) {
	stats, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	res := make([]Counters, 0, len(stats))
	for _, s := range stats {
		res = append(res, Counters{
			Name:        s.Name,
			BytesSent:   s.BytesSent,
			BytesRecv:   s.BytesRecv,
			PacketsSent: s.PacketsSent,
			PacketsRecv: s.PacketsRecv,
			Errin:       s.Errin,
			Errout:      s.Errout,
			Dropin:      s.Dropin,
			Dropout:     s.Dropout,
		})
	}
	return res, nil
}

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
	"time"

	"github.com/NVIDIA/osinfo/pkg/collector/cpu"
	"github.com/NVIDIA/osinfo/pkg/collector/disk"
	"github.com/NVIDIA/osinfo/pkg/collector/memory"
	"github.com/NVIDIA/osinfo/pkg/collector/network"
	"github.com/NVIDIA/osinfo/pkg/defaults"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateCPUCollector() Collector
	CreateMemoryCollector() Collector
	CreateSwapCollector() Collector
	CreateDiskCollector() Collector
	CreateNetworkCollector() Collector
}

// Option is a functional option for configuring DefaultFactory instances.
type Option func(*DefaultFactory)

// WithCPUSampleInterval sets the window over which CPU percentages are computed.
func WithCPUSampleInterval(d time.Duration) Option {
	return func(f *DefaultFactory) {
		f.CPUSampleInterval = d
	}
}

// WithAllPartitions includes pseudo and virtual filesystems in the disk collector.
func WithAllPartitions(all bool) Option {
	return func(f *DefaultFactory) {
		f.AllPartitions = all
	}
}

// DefaultFactory creates collectors backed by the host's OS counters.
type DefaultFactory struct {
	CPUSampleInterval time.Duration
	AllPartitions     bool
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		CPUSampleInterval: defaults.CPUSampleInterval,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateCPUCollector creates the per-core and aggregate CPU collector.
func (f *DefaultFactory) CreateCPUCollector() Collector {
	return &cpu.Collector{
		Source:   cpu.NewSource(),
		Interval: f.CPUSampleInterval,
	}
}

// CreateMemoryCollector creates the virtual memory collector.
func (f *DefaultFactory) CreateMemoryCollector() Collector {
	return &memory.Collector{Source: memory.NewSource()}
}

// CreateSwapCollector creates the swap collector.
func (f *DefaultFactory) CreateSwapCollector() Collector {
	return &memory.SwapCollector{Source: memory.NewSource()}
}

// CreateDiskCollector creates the mounted partition collector.
func (f *DefaultFactory) CreateDiskCollector() Collector {
	return &disk.Collector{
		Source: disk.NewSource(),
		All:    f.AllPartitions,
	}
}

// CreateNetworkCollector creates the per-interface network collector.
func (f *DefaultFactory) CreateNetworkCollector() Collector {
	return &network.Collector{Source: network.NewSource()}
}

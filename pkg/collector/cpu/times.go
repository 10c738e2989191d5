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
	"math"

	"github.com/NVIDIA/osinfo/pkg/measurement"
)

// Times holds one core's cumulative CPU time counters in seconds.
type Times struct {
	User      float64
	Nice      float64
	System    float64
	Idle      float64
	Iowait    float64
	Irq       float64
	Softirq   float64
	Steal     float64
	Guest     float64
	GuestNice float64
}

// total is the busy plus idle time. Guest time is already accounted for in
// user and nice, so it is left out.
func (t Times) total() float64 {
	return t.User + t.Nice + t.System + t.Idle + t.Iowait + t.Irq + t.Softirq + t.Steal
}

// Percent is one core's utilization over a sampling window. Every component
// is already rounded to one decimal place.
type Percent struct {
	System float64
	User   float64
	Nice   float64
	Idle   float64
}

// Busy is the non-idle share, rounded to one decimal place.
func (p Percent) Busy() float64 {
	return measurement.Round1(100.0 - p.Idle)
}

// TimesPercent converts two per-core snapshots into per-core percentages.
// Cores are paired by index; a core missing from either snapshot is dropped.
func TimesPercent(before, after []Times) []Percent {
	n := min(len(before), len(after))
	res := make([]Percent, 0, n)
	for i := range n {
		res = append(res, percentOf(before[i], after[i]))
	}
	return res
}

func percentOf(t1, t2 Times) Percent {
	delta := t2.total() - t1.total()
	if delta <= 0 {
		return Percent{}
	}
	scale := 100.0 / delta
	pct := func(a, b float64) float64 {
		d := math.Max(0, b-a) * scale
		return math.Min(math.Max(0, measurement.Round1(d)), 100)
	}
	return Percent{
		System: pct(t1.System, t2.System),
		User:   pct(t1.User, t2.User),
		Nice:   pct(t1.Nice, t2.Nice),
		Idle:   pct(t1.Idle, t2.Idle),
	}
}

// Aggregate returns the per-component arithmetic mean across cores, each
// rounded to one decimal place. It reports false when there are no cores.
func Aggregate(cores []Percent) (Percent, bool) {
	if len(cores) == 0 {
		return Percent{}, false
	}
	var sys, usr, nice, idle []float64
	for _, c := range cores {
		sys = append(sys, c.System)
		usr = append(usr, c.User)
		nice = append(nice, c.Nice)
		idle = append(idle, c.Idle)
	}
	return Percent{
		System: measurement.Round1(measurement.Mean(sys)),
		User:   measurement.Round1(measurement.Mean(usr)),
		Nice:   measurement.Round1(measurement.Mean(nice)),
		Idle:   measurement.Round1(measurement.Mean(idle)),
	}, true
}

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

package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "osinfo_run_duration_seconds",
			Help:    "Time taken by a complete collection-and-submit cycle",
			Buckets: []float64{1, 2, 5, 10, 30, 60},
		},
	)

	runTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osinfo_run_total",
			Help: "Total number of collection runs",
		},
		[]string{"status"}, // success or error
	)

	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "osinfo_collector_duration_seconds",
			Help:    "Time taken by individual collectors including submission",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"collector"}, // cpu, memory, swap, disk, network
	)

	submissionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osinfo_submissions_total",
			Help: "Total number of batch submissions to the sink",
		},
		[]string{"collector", "status"},
	)

	pointsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osinfo_points_total",
			Help: "Total number of points submitted successfully",
		},
		[]string{"collector"},
	)
)

// WriteMetrics writes the default registry to path in the text exposition
// format, suitable for the node_exporter textfile collector.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write metrics file", err)
	}
	return nil
}

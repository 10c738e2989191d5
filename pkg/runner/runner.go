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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/osinfo/pkg/collector"
	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/header"
	"github.com/NVIDIA/osinfo/pkg/measurement"
	"github.com/NVIDIA/osinfo/pkg/sink"
)

// Collector names in invocation order.
const (
	CollectorCPU     = "cpu"
	CollectorMemory  = "memory"
	CollectorSwap    = "swap"
	CollectorDisk    = "disk"
	CollectorNetwork = "network"
)

type step struct {
	name   string
	create func(collector.Factory) collector.Collector
}

var steps = []step{
	{CollectorCPU, collector.Factory.CreateCPUCollector},
	{CollectorMemory, collector.Factory.CreateMemoryCollector},
	{CollectorSwap, collector.Factory.CreateSwapCollector},
	{CollectorDisk, collector.Factory.CreateDiskCollector},
	{CollectorNetwork, collector.Factory.CreateNetworkCollector},
}

// Order returns the collector names in the order a run invokes them.
func Order() []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.name
	}
	return names
}

// Hostname is the process-wide host identity, resolved on first use.
var Hostname = sync.OnceValues(os.Hostname)

// Runner performs one collection-and-submit cycle.
type Runner struct {
	// Version is recorded in the report header.
	Version string

	// Factory creates the collectors. If nil, the default factory is used.
	Factory collector.Factory

	// Sink receives every batch. Required.
	Sink sink.Sink

	// Host overrides the hostname tag. If empty, Hostname is used.
	Host string

	// Now returns the run instant. If nil, time.Now is used.
	Now func() time.Time

	// NewID returns the run id. If nil, a random UUID is used.
	NewID func() string
}

// Run invokes every collector in order and submits each produced batch
// immediately. Failures are isolated per collector and per batch: the run
// continues and every failure is recorded in the returned Report. A canceled
// context stops the run before the next collector or batch.
//
// The returned error is only set when the run could not start.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.Sink == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "runner requires a sink")
	}
	if r.Factory == nil {
		r.Factory = collector.NewDefaultFactory()
	}

	stamp, err := r.stamp()
	if err != nil {
		return nil, err
	}

	report := NewReport(r.runID(), stamp, r.Version)
	log := slog.With(
		slog.String("run_id", report.RunID()),
		slog.String("host", stamp.Host),
	)
	log.Info("starting collection run",
		slog.String("timestamp", stamp.Time.String()),
		slog.Any("collectors", Order()))

	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	for _, s := range steps {
		if ctxErr := ctx.Err(); ctxErr != nil {
			report.cancel(s.name, ctxErr)
			log.Warn("run canceled", slog.String("next", s.name))
			break
		}
		res := r.runStep(ctx, log, s, stamp)
		report.Collectors = append(report.Collectors, res)
	}

	report.finish(time.Since(start))
	if report.OK() {
		runTotal.WithLabelValues(statusSuccess).Inc()
		log.Info("collection run complete",
			slog.Int("points", report.Points()),
			slog.Duration("duration", time.Since(start)))
	} else {
		runTotal.WithLabelValues(statusError).Inc()
		log.Error("collection run finished with failures",
			slog.Int("points", report.Points()),
			slog.Int("failed", len(report.Failed())),
			slog.String("error", report.Err().Error()))
	}

	return report, nil
}

func (r *Runner) runStep(ctx context.Context, log *slog.Logger, s step, stamp measurement.Stamp) (res CollectorResult) {
	res = CollectorResult{Name: s.name, Status: StatusOK}
	log = log.With(slog.String("collector", s.name))

	collectorStart := time.Now()
	defer func() {
		d := time.Since(collectorStart)
		res.Duration = d
		collectorDuration.WithLabelValues(s.name).Observe(d.Seconds())
	}()

	log.Debug("collecting")
	c := s.create(r.Factory)
	batches, err := c.Collect(ctx, stamp)
	if err != nil {
		log.Error("collector failed",
			slog.String("error", err.Error()),
			slog.String("code", string(apperrors.CodeOf(err))),
			slog.Int("partial_batches", len(batches)))
		res.fail(err)
	}
	log.Debug("collected",
		slog.Int("batches", len(batches)),
		slog.Int("points", measurement.Count(batches)))

	for i, b := range batches {
		if len(b) == 0 {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			res.fail(apperrors.Wrap(apperrors.ErrCodeTimeout,
				fmt.Sprintf("run canceled before batch %d", i), ctxErr))
			break
		}
		res.Batches++
		if subErr := r.Sink.Submit(ctx, b); subErr != nil {
			submissionTotal.WithLabelValues(s.name, statusError).Inc()
			log.Error("failed to submit batch",
				slog.String("error", subErr.Error()),
				slog.String("code", string(apperrors.CodeOf(subErr))),
				slog.Any("measurements", b.Measurements()),
				slog.Int("batch", i),
				slog.Int("points", len(b)))
			res.fail(subErr)
			continue
		}
		submissionTotal.WithLabelValues(s.name, statusSuccess).Inc()
		pointsTotal.WithLabelValues(s.name).Add(float64(len(b)))
		res.Submitted++
		res.Points += len(b)
	}

	if res.Status == StatusOK {
		log.Debug("collector finished",
			slog.Int("points", res.Points),
			slog.Int("batches", res.Batches))
	}
	return res
}

func (r *Runner) stamp() (measurement.Stamp, error) {
	host := r.Host
	if host == "" {
		h, err := Hostname()
		if err != nil {
			return measurement.Stamp{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve hostname", err)
		}
		host = h
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return measurement.NewStamp(host, measurement.NewTimestamp(now())), nil
}

func (r *Runner) runID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return uuid.NewString()
}

// Status is the outcome of one collector.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// CollectorResult records what one collector produced and submitted.
type CollectorResult struct {
	Name      string        `json:"name" yaml:"name"`
	Status    Status        `json:"status" yaml:"status"`
	Points    int           `json:"points" yaml:"points"`
	Batches   int           `json:"batches" yaml:"batches"`
	Submitted int           `json:"submitted" yaml:"submitted"`
	Duration  time.Duration `json:"-" yaml:"-"`
	Elapsed   string        `json:"duration" yaml:"duration"`
	Errors    []string      `json:"errors,omitempty" yaml:"errors,omitempty"`

	errs []error
}

func (c *CollectorResult) fail(err error) {
	c.Status = StatusFailed
	c.errs = append(c.errs, err)
	c.Errors = append(c.Errors, err.Error())
}

// Err joins the collector's failures, each prefixed with its name.
func (c CollectorResult) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	wrapped := make([]error, len(c.errs))
	for i, err := range c.errs {
		wrapped[i] = fmt.Errorf("%s: %w", c.Name, err)
	}
	return errors.Join(wrapped...)
}

// Report summarizes one run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Collectors []CollectorResult `json:"collectors" yaml:"collectors"`
	Elapsed    string            `json:"duration" yaml:"duration"`
	Canceled   string            `json:"canceled,omitempty" yaml:"canceled,omitempty"`

	cancelErr error
}

// NewReport creates an empty report for the run identified by id.
func NewReport(id string, stamp measurement.Stamp, version string) *Report {
	r := &Report{Collectors: make([]CollectorResult, 0, len(steps))}
	r.Init(header.KindRunReport, stamp.Time.Time, version)
	r.Set(header.MetadataRunID, id)
	r.Set(header.MetadataHost, stamp.Host)
	return r
}

// RunID returns the run id recorded in the header.
func (r *Report) RunID() string {
	return r.Metadata[header.MetadataRunID]
}

// Points returns the number of points submitted successfully.
func (r *Report) Points() int {
	n := 0
	for _, c := range r.Collectors {
		n += c.Points
	}
	return n
}

// Failed returns the names of collectors that recorded a failure.
func (r *Report) Failed() []string {
	var names []string
	for _, c := range r.Collectors {
		if c.Status == StatusFailed {
			names = append(names, c.Name)
		}
	}
	return names
}

// OK reports whether every collector ran and nothing failed.
func (r *Report) OK() bool {
	return r.Err() == nil
}

// Err joins every failure of the run, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, c := range r.Collectors {
		if err := c.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.cancelErr != nil {
		errs = append(errs, r.cancelErr)
	}
	return errors.Join(errs...)
}

func (r *Report) cancel(next string, err error) {
	r.cancelErr = apperrors.Wrap(apperrors.ErrCodeTimeout,
		fmt.Sprintf("run canceled before %s collector", next), err)
	r.Canceled = r.cancelErr.Error()
	skipping := false
	for _, s := range steps {
		if s.name == next {
			skipping = true
		}
		if skipping {
			r.Collectors = append(r.Collectors, CollectorResult{Name: s.name, Status: StatusSkipped, Elapsed: "0s"})
		}
	}
}

func (r *Report) finish(d time.Duration) {
	r.Elapsed = d.Round(time.Millisecond).String()
	for i := range r.Collectors {
		c := &r.Collectors[i]
		if c.Status != StatusSkipped {
			c.Elapsed = c.Duration.Round(time.Millisecond).String()
		}
	}
}

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
	"log/slog"

	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/measurement"
)

// Collector reports one network_info point per interface.
type Collector struct {
	Source Source
}

// Collect returns a single batch with every interface, or no batches when
// the host lists no interfaces.
func (c *Collector) Collect(ctx context.Context, stamp measurement.Stamp) ([]measurement.Batch, error) {
	slog.Debug("collecting network counters")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counters, err := c.Source.Counters(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCollectorRead, "failed to read network counters", err)
	}

	b := Normalize(stamp, counters)
	if len(b) == 0 {
		return nil, nil
	}
	return []measurement.Batch{b}, nil
}

// Normalize converts the counters into network_info points tagged with the
// interface name, preserving order.
func Normalize(stamp measurement.Stamp, counters []Counters) measurement.Batch {
	b := make(measurement.Batch, 0, len(counters))
	for _, n := range counters {
		b = append(b, stamp.Builder(measurement.NameNetwork).
			Tag(measurement.TagInterface, n.Name).
			SetUint64("bytes_sent", n.BytesSent).
			SetUint64("bytes_recv", n.BytesRecv).
			SetUint64("packets_sent", n.PacketsSent).
			SetUint64("packets_recv", n.PacketsRecv).
			SetUint64("errin", n.Errin).
			SetUint64("errout", n.Errout).
			SetUint64("dropin", n.Dropin).
			SetUint64("dropout", n.Dropout).
			Build())
	}
	return b
}

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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/osinfo/pkg/collector"
	"github.com/NVIDIA/osinfo/pkg/config"
	"github.com/NVIDIA/osinfo/pkg/runner"
	"github.com/NVIDIA/osinfo/pkg/serializer"
	"github.com/NVIDIA/osinfo/pkg/sink"
)

// runAction performs one collection-and-submit cycle. It returns the joined
// run failures so the process exits non-zero when anything failed.
func runAction(ctx context.Context, cmd *cli.Command) error {
	format, err := serializer.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	var summary serializer.Format
	if s := cmd.String("summary"); s != "" {
		if summary, err = serializer.ParseFormat(s); err != nil {
			return fmt.Errorf("invalid summary: %w", err)
		}
	}

	cfg := resolveConfig(cmd)

	out, err := sink.New(cmd.String("sink"), cfg, sink.Options{
		Version: version,
		Format:  format,
	})
	if err != nil {
		return fmt.Errorf("failed to create sink: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			slog.Warn("failed to close sink", slog.String("error", closeErr.Error()))
		}
	}()

	r := &runner.Runner{
		Version: version,
		Factory: collector.NewDefaultFactory(
			collector.WithCPUSampleInterval(cmd.Duration("cpu-interval")),
			collector.WithAllPartitions(cmd.Bool("all-partitions")),
		),
		Sink: out,
	}

	report, err := r.Run(ctx)
	if err != nil {
		return err
	}

	if path := cmd.String("metrics-file"); path != "" {
		if mErr := runner.WriteMetrics(path); mErr != nil {
			slog.Warn("failed to write metrics", slog.String("path", path), slog.String("error", mErr.Error()))
		} else {
			slog.Debug("metrics written", slog.String("path", path))
		}
	}

	if summary != "" {
		w := serializer.NewWriter(summary, cmd.Root().Writer)
		if sErr := w.Serialize(context.WithoutCancel(ctx), report); sErr != nil {
			return fmt.Errorf("failed to print summary: %w", sErr)
		}
	}

	return report.Err()
}

// resolveConfig loads the config file named by --config and applies the
// environment overrides. File problems are logged, never fatal.
func resolveConfig(cmd *cli.Command) config.ConnectionConfig {
	path := cmd.String("config")
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, res := config.NewResolver(path).Resolve()
	switch res.Status {
	case config.StatusAbsent:
		slog.Debug("config file not found, using environment only", slog.String("path", res.Path))
	case config.StatusMalformed:
		slog.Warn("ignoring malformed config file",
			slog.String("path", res.Path),
			slog.String("error", res.Err.Error()))
	case config.StatusLoaded:
		slog.Debug("config file loaded", slog.String("path", res.Path))
	}
	slog.Debug("resolved connection config", slog.Any("keys", cfg.PresentKeys()))
	return cfg
}

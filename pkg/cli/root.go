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
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/osinfo/pkg/logging"
)

const (
	name           = "osinfo"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Collect host CPU, memory, swap, disk and network counters",
		Description: fmt.Sprintf(`osinfo samples host-level resource counters once and submits them as
tagged measurement points to a time-series backend.

Version: %s
Commit:  %s
Built:   %s

Invoked without a command, osinfo runs one collection-and-submit cycle:
collectors run in the order cpu, memory, swap, disk, network and every batch
they produce is written to the sink immediately. A failing collector or
rejected batch does not stop the run; the exit code is 1 when anything failed.

# Connection settings

Read from the "influx" section of the config file and overridden by
environment variables:

  INFLUX_OSINFO_HOSTNAME, INFLUX_OSINFO_PORT, INFLUX_OSINFO_USERNAME,
  INFLUX_OSINFO_PASSWORD, INFLUX_OSINFO_DATABASE

# Examples

Submit to InfluxDB using config.yml next to the binary:
  osinfo

Print the points instead of submitting them:
  osinfo --sink stdout --format yaml

Submit through Prometheus remote-write and print a summary:
  osinfo --sink remote-write --summary table

Export self-metrics for the node_exporter textfile collector:
  osinfo --metrics-file /var/lib/node_exporter/osinfo.prom`, version, commit, date),
		Flags:    rootFlags(),
		Before:   initLogger,
		Action:   runAction,
		Commands: []*cli.Command{configCmd()},
	}
}

// Execute runs the command line. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures slog after flags are parsed so --log-level and
// --log-format take effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	format := logging.Format(strings.ToLower(cmd.String("log-format")))
	if !slices.Contains(logging.Formats(), string(format)) {
		return ctx, fmt.Errorf("unknown log format %q, supported: %s",
			format, strings.Join(logging.Formats(), ", "))
	}

	logLevel := cmd.String("log-level")
	logging.SetDefaultLogger(name, version, logLevel, format)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}

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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/osinfo/pkg/defaults"
	"github.com/NVIDIA/osinfo/pkg/logging"
	"github.com/NVIDIA/osinfo/pkg/serializer"
	"github.com/NVIDIA/osinfo/pkg/sink"
)

// rootFlags returns the flags of the root command.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level (debug, info, warn, error)",
			Sources: cli.EnvVars("LOG_LEVEL"),
			Value:   "info",
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   fmt.Sprintf("log output (%s)", strings.Join(logging.Formats(), ", ")),
			Sources: cli.EnvVars("LOG_FORMAT"),
			Value:   string(logging.FormatJSON),
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to the YAML config file (default: config.yml next to the executable)",
			Sources: cli.EnvVars(defaults.EnvPrefix + "_CONFIG"),
		},
		&cli.StringFlag{
			Name:  "sink",
			Usage: fmt.Sprintf("where to submit points (%s)", strings.Join(sink.Kinds(), ", ")),
			Value: sink.KindInflux,
			Local: true,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Usage:   fmt.Sprintf("format of the stdout and file sinks (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
			Value:   string(serializer.FormatJSON),
			Local:   true,
		},
		&cli.StringFlag{
			Name:  "summary",
			Usage: fmt.Sprintf("print a run report to stdout (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
			Local: true,
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "write run metrics in Prometheus text format to this path",
			Local: true,
		},
		&cli.DurationFlag{
			Name:  "cpu-interval",
			Usage: "window over which CPU utilization is measured",
			Value: defaults.CPUSampleInterval,
			Local: true,
		},
		&cli.BoolFlag{
			Name:  "all-partitions",
			Usage: "include pseudo and virtual filesystems in disk collection",
			Local: true,
		},
	}
}

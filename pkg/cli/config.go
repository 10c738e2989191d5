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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/osinfo/pkg/config"
	"github.com/NVIDIA/osinfo/pkg/serializer"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:                  "config",
		EnableShellCompletion: true,
		Usage:                 "Print the resolved connection configuration",
		Description: `Print the connection configuration after merging the config file with
the INFLUX_OSINFO_* environment overrides. Keys supplied by neither source are
omitted. Nothing is collected or submitted.

# Examples

Show the effective configuration:
  osinfo config

Hide the password:
  osinfo config --redact --format yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Usage:   "output format (json, yaml, table)",
				Value:   string(serializer.FormatJSON),
			},
			&cli.BoolFlag{
				Name:  "redact",
				Usage: "replace the password with " + config.RedactedValue,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := serializer.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			cfg := resolveConfig(cmd)
			if cmd.Bool("redact") {
				cfg = cfg.Redacted()
			}

			w := serializer.NewWriter(format, cmd.Root().Writer)
			if err := w.Serialize(ctx, cfg.Document()); err != nil {
				return fmt.Errorf("failed to print config: %w", err)
			}
			return nil
		},
	}
}

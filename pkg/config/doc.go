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

// Package config resolves the storage backend connection settings.
//
// Settings come from an optional YAML file with a top-level "influx" mapping
// and are overridden per key by environment variables named
// INFLUX_OSINFO_<KEY>:
//
//	influx:
//	  hostname: influx.example.com
//	  port: 8086
//	  username: osinfo
//	  password: secret
//	  database: telegraf
//
// A missing or malformed file is not fatal; it yields an empty base and the
// LoadResult tells the two cases apart. Keys supplied by neither the file nor
// the environment are absent from the result. Values are not validated here;
// the sink validates them when it is constructed.
//
// Usage:
//
//	cfg, res := config.NewResolver(config.DefaultPath()).Resolve()
//	if res.Status == config.StatusMalformed {
//	    slog.Warn("ignoring config file", slog.String("path", res.Path), slog.String("error", res.Err.Error()))
//	}
package config

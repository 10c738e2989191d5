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

// Package header provides the common header embedded in osinfo documents.
//
// The Header follows Kubernetes-style resource conventions with Kind,
// APIVersion and a flat string Metadata map:
//
//	type Header struct {
//	    Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
//	    APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
//	    Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
//	}
//
// # Usage
//
// The run report embeds a Header initialized at the start of a run:
//
//	var h header.Header
//	h.Init(header.KindRunReport, stamp.Time.Time, version)
//	h.Set(header.MetadataRunID, runID)
//	h.Set(header.MetadataHost, stamp.Host)
//
// # Serialization
//
// Headers are embedded inline, so a report renders as:
//
//	{
//	  "kind": "RunReport",
//	  "apiVersion": "osinfo.nvidia.com/v1alpha1",
//	  "metadata": {
//	    "host": "node-1",
//	    "run-id": "5f0c...",
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  },
//	  ...
//	}
package header

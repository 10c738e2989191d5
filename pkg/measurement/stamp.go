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

package measurement

// Stamp is the run-wide identity applied to every Point of one run: the
// host tag and the shared sampling instant. It is computed once by the
// caller and handed read-only to every collector.
type Stamp struct {
	Host string    `json:"host" yaml:"host"`
	Time Timestamp `json:"time" yaml:"time"`
}

// NewStamp creates a Stamp for host at the given instant.
func NewStamp(host string, ts Timestamp) Stamp {
	return Stamp{Host: host, Time: ts}
}

// Builder starts a PointBuilder for the named measurement that already
// carries the stamp's time and host tag.
func (s Stamp) Builder(name string) *PointBuilder {
	return NewPointBuilder(name, s.Time).Tag(TagHost, s.Host)
}

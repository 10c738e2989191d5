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

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Measurement names, one per collector family.
const (
	NameCPU     = "cpu_info"
	NameMemory  = "memory_info"
	NameSwap    = "swap_info"
	NameDisk    = "disk_info"
	NameNetwork = "network_info"
)

// Tag keys. Tags are indexed by the backend; everything else is a field.
const (
	TagHost      = "host"
	TagCPU       = "cpu"
	TagDisk      = "disk"
	TagInterface = "interface"
)

// TimestampFormat renders ISO-8601 UTC with microsecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000000Z07:00"

// Timestamp is the single instant shared by every Point of a run.
type Timestamp struct {
	time.Time
}

// NewTimestamp normalizes t to UTC at microsecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Microsecond)}
}

// String returns the timestamp in TimestampFormat.
func (ts Timestamp) String() string {
	return ts.Time.UTC().Format(TimestampFormat)
}

// MarshalText implements encoding.TextMarshaler (used by JSON and YAML).
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(text []byte) error {
	t, err := time.Parse(time.RFC3339Nano, string(text))
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", string(text), err)
	}
	*ts = NewTimestamp(t)
	return nil
}

// MarshalJSON shadows the embedded time.Time encoder so the fixed
// microsecond format is used.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON parses a quoted timestamp.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return ts.UnmarshalText([]byte(s))
}

// Tags are the indexed string dimensions of a Point.
type Tags map[string]string

// Fields are the measured values of a Point.
type Fields map[string]Reading

// UnmarshalJSON custom unmarshaler for Fields to handle Reading interface.
func (f *Fields) UnmarshalJSON(data []byte) error {
	var tmp map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&tmp); err != nil {
		return err
	}
	*f = fieldsFrom(tmp)
	return nil
}

// UnmarshalYAML custom unmarshaler for Fields to handle Reading interface.
func (f *Fields) UnmarshalYAML(node *yaml.Node) error {
	var tmp map[string]any
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	*f = fieldsFrom(tmp)
	return nil
}

func fieldsFrom(raw map[string]any) Fields {
	out := make(Fields, len(raw))
	for k, v := range raw {
		out[k] = ToReading(v)
	}
	return out
}

// Point is one normalized, tagged, timestamped measurement record.
// Points are built once and never mutated afterwards; use PointBuilder or
// NewPoint, both of which copy the supplied maps.
type Point struct {
	Measurement string    `json:"measurement" yaml:"measurement"`
	Time        Timestamp `json:"time" yaml:"time"`
	Tags        Tags      `json:"tags" yaml:"tags"`
	Fields      Fields    `json:"fields" yaml:"fields"`
}

// NewPoint creates a Point owning copies of tags and fields.
func NewPoint(name string, ts Timestamp, tags Tags, fields Fields) Point {
	return Point{
		Measurement: name,
		Time:        ts,
		Tags:        maps.Clone(tags),
		Fields:      maps.Clone(fields),
	}
}

// Tag returns the value of a tag and whether it is set.
func (p Point) Tag(key string) (string, bool) {
	v, ok := p.Tags[key]
	return v, ok
}

// Field returns a field reading, or nil when absent.
func (p Point) Field(key string) Reading {
	return p.Fields[key]
}

// FieldKeys returns the field names in sorted order.
func (p Point) FieldKeys() []string {
	return slices.Sorted(maps.Keys(p.Fields))
}

// TagKeys returns the tag names in sorted order.
func (p Point) TagKeys() []string {
	return slices.Sorted(maps.Keys(p.Tags))
}

// GetFloat64 attempts to retrieve a numeric field as float64.
func (p Point) GetFloat64(key string) (float64, error) {
	reading := p.Fields[key]
	if reading == nil {
		return 0, fmt.Errorf("field %q not found", key)
	}
	v, ok := ToFloat64(reading)
	if !ok {
		return 0, fmt.Errorf("field %q is not numeric", key)
	}
	return v, nil
}

// GetString attempts to retrieve a string field.
func (p Point) GetString(key string) (string, error) {
	reading := p.Fields[key]
	if reading == nil {
		return "", fmt.Errorf("field %q not found", key)
	}
	v, ok := reading.Any().(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", key)
	}
	return v, nil
}

// Validate checks if the point is properly formed.
func (p Point) Validate() error {
	if p.Measurement == "" {
		return errors.New("measurement name cannot be empty")
	}
	if p.Time.IsZero() {
		return errors.New("point time cannot be zero")
	}
	if len(p.Fields) == 0 {
		return errors.New("point must have at least one field")
	}
	for k := range p.Tags {
		if k == "" {
			return errors.New("tag key cannot be empty")
		}
	}
	for k, v := range p.Fields {
		if k == "" {
			return errors.New("field key cannot be empty")
		}
		if v == nil {
			return fmt.Errorf("field %q has no value", k)
		}
	}
	return nil
}

// Batch is an ordered sequence of Points submitted together.
type Batch []Point

// Validate checks every point in the batch.
func (b Batch) Validate() error {
	if len(b) == 0 {
		return errors.New("batch cannot be empty")
	}
	for i, p := range b {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("point[%d]: %w", i, err)
		}
	}
	return nil
}

// Measurements returns the distinct measurement names in order of first appearance.
func (b Batch) Measurements() []string {
	var names []string
	for _, p := range b {
		if !slices.Contains(names, p.Measurement) {
			names = append(names, p.Measurement)
		}
	}
	return names
}

// Count returns the total number of points across batches.
func Count(batches []Batch) int {
	n := 0
	for _, b := range batches {
		n += len(b)
	}
	return n
}

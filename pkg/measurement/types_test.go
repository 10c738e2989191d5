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
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 123456789, time.UTC)

func testPoint() Point {
	return NewPoint(NameDisk, NewTimestamp(testTime),
		Tags{TagHost: "node-1", TagDisk: "/dev/sda1"},
		Fields{
			"device":     Str("/dev/sda1"),
			"mountpoint": Str("/"),
			"total":      Uint64(512110190592),
			"percent":    Float64(41.7),
		},
	)
}

func TestNewTimestamp(t *testing.T) {
	local := time.FixedZone("CEST", 2*60*60)
	ts := NewTimestamp(testTime.In(local))

	if ts.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", ts.Location())
	}
	if ts.Nanosecond() != 123456000 {
		t.Errorf("Nanosecond() = %d, want truncation to microseconds (123456000)", ts.Nanosecond())
	}
	if got, want := ts.String(), "2025-01-15T10:30:00.123456Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTimestamp_StringKeepsTrailingZeros(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))
	if got, want := ts.String(), "2025-01-15T10:30:00.000000Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTimestamp_JSON(t *testing.T) {
	ts := NewTimestamp(testTime)

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2025-01-15T10:30:00.123456Z"` {
		t.Errorf("Marshal() = %s", data)
	}

	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Errorf("round trip = %v, want %v", back, ts)
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &back); err == nil {
		t.Error("expected error for invalid timestamp")
	}
}

func TestNewPoint_CopiesMaps(t *testing.T) {
	tags := Tags{TagHost: "node-1"}
	fields := Fields{"total": Uint64(1)}

	p := NewPoint(NameSwap, NewTimestamp(testTime), tags, fields)

	tags[TagHost] = "changed"
	fields["extra"] = Int(1)

	if host, _ := p.Tag(TagHost); host != "node-1" {
		t.Errorf("tag host = %q, want node-1 (tags must be copied)", host)
	}
	if p.Field("extra") != nil {
		t.Error("fields must be copied")
	}
}

func TestPoint_Accessors(t *testing.T) {
	p := testPoint()

	if got := p.TagKeys(); strings.Join(got, ",") != "disk,host" {
		t.Errorf("TagKeys() = %v", got)
	}
	if got := p.FieldKeys(); strings.Join(got, ",") != "device,mountpoint,percent,total" {
		t.Errorf("FieldKeys() = %v", got)
	}

	if v, err := p.GetFloat64("percent"); err != nil || v != 41.7 {
		t.Errorf("GetFloat64(percent) = %v, %v", v, err)
	}
	if _, err := p.GetFloat64("device"); err == nil {
		t.Error("GetFloat64(device) should fail for a string field")
	}
	if _, err := p.GetFloat64("missing"); err == nil {
		t.Error("GetFloat64(missing) should fail")
	}
	if v, err := p.GetString("mountpoint"); err != nil || v != "/" {
		t.Errorf("GetString(mountpoint) = %v, %v", v, err)
	}
	if _, err := p.GetString("total"); err == nil {
		t.Error("GetString(total) should fail for a numeric field")
	}
	if _, ok := p.Tag("interface"); ok {
		t.Error("Tag(interface) should be absent")
	}
}

func TestPoint_Validate(t *testing.T) {
	ts := NewTimestamp(testTime)
	tests := []struct {
		name    string
		point   Point
		wantErr bool
	}{
		{"valid", testPoint(), false},
		{"empty name", NewPoint("", ts, nil, Fields{"a": Int(1)}), true},
		{"zero time", NewPoint(NameCPU, Timestamp{}, nil, Fields{"a": Int(1)}), true},
		{"no fields", NewPoint(NameCPU, ts, Tags{TagHost: "h"}, nil), true},
		{"empty tag key", NewPoint(NameCPU, ts, Tags{"": "x"}, Fields{"a": Int(1)}), true},
		{"empty field key", NewPoint(NameCPU, ts, nil, Fields{"": Int(1)}), true},
		{"nil reading", NewPoint(NameCPU, ts, nil, Fields{"a": nil}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.point.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBatch_Validate(t *testing.T) {
	if err := (Batch{}).Validate(); err == nil {
		t.Error("empty batch should not validate")
	}

	bad := Batch{testPoint(), NewPoint("", NewTimestamp(testTime), nil, Fields{"a": Int(1)})}
	err := bad.Validate()
	if err == nil || !strings.Contains(err.Error(), "point[1]") {
		t.Errorf("Validate() error = %v, want error naming point[1]", err)
	}

	if err := (Batch{testPoint()}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestBatch_Measurements(t *testing.T) {
	ts := NewTimestamp(testTime)
	b := Batch{
		NewPoint(NameCPU, ts, nil, Fields{"a": Int(1)}),
		NewPoint(NameCPU, ts, nil, Fields{"a": Int(1)}),
		NewPoint(NameMemory, ts, nil, Fields{"a": Int(1)}),
	}
	got := b.Measurements()
	if len(got) != 2 || got[0] != NameCPU || got[1] != NameMemory {
		t.Errorf("Measurements() = %v", got)
	}
	if Count([]Batch{b, {testPoint()}}) != 4 {
		t.Errorf("Count() = %d, want 4", Count([]Batch{b, {testPoint()}}))
	}
}

func TestPoint_JSONRoundTrip(t *testing.T) {
	original := testPoint()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal to map error = %v", err)
	}
	if raw["time"] != "2025-01-15T10:30:00.123456Z" {
		t.Errorf("JSON time = %v", raw["time"])
	}

	var back Point
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	assertSamePoint(t, original, back)
}

func TestPoint_YAMLRoundTrip(t *testing.T) {
	original := testPoint()

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "time: \"2025-01-15T10:30:00.123456Z\"") &&
		!strings.Contains(string(data), "time: 2025-01-15T10:30:00.123456Z") {
		t.Errorf("YAML time not rendered in fixed format:\n%s", data)
	}

	var back Point
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	assertSamePoint(t, original, back)
}

func assertSamePoint(t *testing.T, want, got Point) {
	t.Helper()

	if got.Measurement != want.Measurement {
		t.Errorf("Measurement = %q, want %q", got.Measurement, want.Measurement)
	}
	if !got.Time.Equal(want.Time.Time) {
		t.Errorf("Time = %v, want %v", got.Time, want.Time)
	}
	if len(got.Tags) != len(want.Tags) {
		t.Errorf("Tags = %v, want %v", got.Tags, want.Tags)
	}
	for k, v := range want.Tags {
		if got.Tags[k] != v {
			t.Errorf("Tags[%q] = %q, want %q", k, got.Tags[k], v)
		}
	}
	if len(got.Fields) != len(want.Fields) {
		t.Errorf("Fields = %v, want %v", got.Fields, want.Fields)
	}
	for k, v := range want.Fields {
		g := got.Fields[k]
		if g == nil {
			t.Errorf("Fields[%q] missing", k)
			continue
		}
		if wf, ok := ToFloat64(v); ok {
			gf, gok := ToFloat64(g)
			if !gok || gf != wf {
				t.Errorf("Fields[%q] = %v, want %v", k, g, v)
			}
			continue
		}
		if g.String() != v.String() {
			t.Errorf("Fields[%q] = %v, want %v", k, g, v)
		}
	}
}

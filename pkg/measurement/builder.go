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

// PointBuilder provides a fluent API for building Point instances.
type PointBuilder struct {
	name   string
	ts     Timestamp
	tags   Tags
	fields Fields
}

// NewPointBuilder creates a new PointBuilder for the given measurement and time.
func NewPointBuilder(name string, ts Timestamp) *PointBuilder {
	return &PointBuilder{
		name:   name,
		ts:     ts,
		tags:   make(Tags),
		fields: make(Fields),
	}
}

// Tag adds or updates an indexed tag.
func (b *PointBuilder) Tag(key, value string) *PointBuilder {
	b.tags[key] = value
	return b
}

// Set adds or updates a field.
func (b *PointBuilder) Set(key string, value Reading) *PointBuilder {
	b.fields[key] = value
	return b
}

// SetString is a convenience method for adding string fields.
func (b *PointBuilder) SetString(key, value string) *PointBuilder {
	b.fields[key] = Str(value)
	return b
}

// SetUint64 is a convenience method for adding uint64 fields.
func (b *PointBuilder) SetUint64(key string, value uint64) *PointBuilder {
	b.fields[key] = Uint64(value)
	return b
}

// SetFloat64 is a convenience method for adding float64 fields.
func (b *PointBuilder) SetFloat64(key string, value float64) *PointBuilder {
	b.fields[key] = Float64(value)
	return b
}

// SetPercent adds a float64 field rounded to one decimal place.
func (b *PointBuilder) SetPercent(key string, value float64) *PointBuilder {
	b.fields[key] = Float64(Round1(value))
	return b
}

// Build constructs the Point. The builder's maps are copied so later calls
// on the builder do not leak into already built points.
func (b *PointBuilder) Build() Point {
	return NewPoint(b.name, b.ts, b.tags, b.fields)
}

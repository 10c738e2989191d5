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

package sink

import (
	"context"

	apperrors "github.com/NVIDIA/osinfo/pkg/errors"
	"github.com/NVIDIA/osinfo/pkg/measurement"
	"github.com/NVIDIA/osinfo/pkg/serializer"
)

// Writer serializes each batch to a stream instead of a backend.
type Writer struct {
	w *serializer.Writer
}

// NewStdout creates a sink printing batches to stdout.
func NewStdout(format serializer.Format) *Writer {
	return &Writer{w: serializer.NewStdoutWriter(format)}
}

// NewFile creates a sink appending batches to the file at path.
func NewFile(format serializer.Format, path string) (*Writer, error) {
	w, err := serializer.NewFileWriter(format, path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeConnection, "failed to open sink file", err)
	}
	return &Writer{w: w}, nil
}

// NewWriter wraps an existing serializer.Writer.
func NewWriter(w *serializer.Writer) *Writer {
	return &Writer{w: w}
}

// Submit writes the batch as one document.
func (s *Writer) Submit(ctx context.Context, b measurement.Batch) error {
	if len(b) == 0 {
		return nil
	}
	return s.w.Serialize(ctx, b)
}

// Close closes the underlying file, if any.
func (s *Writer) Close() error {
	return s.w.Close()
}

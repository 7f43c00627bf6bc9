// Copyright 2026 Dolthub, Inc.
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

package fbclient

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

const (
	// DefaultSegmentSize is the recommended blob read size.
	DefaultSegmentSize = 80
	// MaxSegmentSize is the largest segment a single put can carry.
	MaxSegmentSize = 65535
)

// BlobReader reads a blob segment by segment.
type BlobReader struct {
	ctx     context.Context
	blob    Blob
	seg     []byte
	pending []byte
	eof     bool
}

var _ io.Reader = (*BlobReader)(nil)

// NewBlobReader reads |b| in segments of |segmentSize| bytes, or
// DefaultSegmentSize if |segmentSize| is not positive.
func NewBlobReader(ctx context.Context, b Blob, segmentSize int) *BlobReader {
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	segmentSize = min(segmentSize, MaxSegmentSize)
	return &BlobReader{ctx: ctx, blob: b, seg: make([]byte, segmentSize)}
}

func (r *BlobReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.eof {
			return 0, io.EOF
		}
		n, err := r.blob.GetSegment(r.ctx, r.seg)
		if err != nil {
			return 0, errors.Wrap(err, "get segment")
		}
		if n == 0 {
			r.eof = true
			return 0, io.EOF
		}
		r.pending = r.seg[:n]
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// ReadBlob returns the whole content of |b|.
func ReadBlob(ctx context.Context, b Blob, segmentSize int) ([]byte, error) {
	return io.ReadAll(NewBlobReader(ctx, b, segmentSize))
}

// WriteBlob appends |data| to |b| in segments of at most MaxSegmentSize bytes.
func WriteBlob(ctx context.Context, b Blob, data []byte) error {
	for len(data) > 0 {
		n := min(len(data), MaxSegmentSize)
		if err := b.PutSegment(ctx, data[:n]); err != nil {
			return errors.Wrap(err, "put segment")
		}
		data = data[n:]
	}
	return nil
}

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

// Package fbclient drives prepared statements over a protocol layer that
// transports XSQLDA buffers opaquely.
package fbclient

import (
	"context"

	"github.com/dolthub/fbsqlda/store/sqlda"
	"github.com/dolthub/fbsqlda/store/val"
)

// Conn is an attached database.
type Conn interface {
	// Prepare prepares |sql| and describes its output columns into |out|.
	// A describe records the column count with SetLen and fills at most
	// Cap descriptors.
	Prepare(ctx context.Context, sql string, out *sqlda.Area) (Statement, error)

	Close(ctx context.Context) error
}

// Statement is a prepared statement.
type Statement interface {
	// Describe describes the output columns into |out| again.
	Describe(ctx context.Context, out *sqlda.Area) error

	// DescribeBind describes the input parameters into |in|.
	DescribeBind(ctx context.Context, in *sqlda.Area) error

	// Execute runs the statement, sending |in| as parameters. |in| is nil
	// when the statement takes none.
	Execute(ctx context.Context, in *sqlda.Area) error

	// Fetch writes the next row into the slots of |out|. It returns false
	// when the cursor is exhausted.
	Fetch(ctx context.Context, out *sqlda.Area) (bool, error)

	// CloseCursor closes the open cursor so the statement can be executed again.
	CloseCursor(ctx context.Context) error

	// Close releases the statement.
	Close(ctx context.Context) error
}

// Blob is an open BLOB handle.
type Blob interface {
	ID() val.BlobID

	// GetSegment reads the next segment into |buf|. It returns 0 once the
	// blob is exhausted.
	GetSegment(ctx context.Context, buf []byte) (int, error)

	PutSegment(ctx context.Context, seg []byte) error

	Close(ctx context.Context) error
}

// BlobConn is implemented by connections that can stream blobs.
type BlobConn interface {
	Conn

	OpenBlob(ctx context.Context, id val.BlobID) (Blob, error)

	CreateBlob(ctx context.Context) (Blob, error)
}

// Copyright 2025 TimeWtr
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"github.com/TimeWtr/ChainStream/buffers"
	"github.com/TimeWtr/ChainStream/errorx"
)

// BoundedWriter writes into one externally owned segment under a fixed byte
// budget. The segment must be pre-sized: the writer never allocates. Beyond
// sequential pushes it supports advancing past reserved regions without
// copying and patching them afterwards, for length and checksum fields whose
// value is only known once later data has been written.
type BoundedWriter struct {
	seg         *buffers.Segment
	most        int
	written     int
	appendCount int
}

// NewBoundedWriter reserves most bytes of seg's tailroom. Fails when the
// segment carries less tailroom than the budget, or when its storage is
// shared, since every write mutates bytes in place.
func NewBoundedWriter(seg *buffers.Segment, most int) (*BoundedWriter, error) {
	if seg == nil {
		return nil, errorx.ErrNilSegment
	}
	if seg.Shared() {
		return nil, errorx.ErrSharedSegment
	}
	if seg.Tailroom() < most {
		return nil, errorx.ErrShortTailroom
	}

	return &BoundedWriter{seg: seg, most: most}, nil
}

// Written returns the number of budget bytes consumed so far.
func (w *BoundedWriter) Written() int {
	return w.written
}

func (w *BoundedWriter) sizeCheck(n int) error {
	if w.written+n > w.most {
		return errorx.ErrCapacityExceeded
	}
	return nil
}

// Push copies p into the segment's tail and advances its length.
func (w *BoundedWriter) Push(p []byte) error {
	if err := w.sizeCheck(len(p)); err != nil {
		return err
	}

	copy(w.seg.WritableTail(), p)
	w.seg.Advance(len(p))
	w.written += len(p)
	return nil
}

// Append advances the segment's length by n without copying, for callers
// who wrote into the tail memory out-of-band or are reserving a region to
// backfill later. The advanced bytes stay available as backfill budget.
func (w *BoundedWriter) Append(n int) error {
	if err := w.sizeCheck(n); err != nil {
		return err
	}

	w.seg.Advance(n)
	w.written += n
	w.appendCount += n
	return nil
}

// Insert copies the whole of c into the segment.
func (w *BoundedWriter) Insert(c *buffers.Chain) error {
	return w.Copy(c, c.Len())
}

// Copy copies up to limit bytes from c into the segment, walking its
// segments and stopping at limit, at a partially consumed segment, or when
// the walk returns to the entry segment.
func (w *BoundedWriter) Copy(c *buffers.Chain, limit int) error {
	if limit == 0 || c.Empty() {
		return nil
	}
	if err := w.sizeCheck(limit); err != nil {
		return err
	}

	remaining := limit
	cur := c.Front()
	for {
		n := min(cur.Len(), remaining)
		if err := w.Push(cur.Bytes()[:n]); err != nil {
			return err
		}
		remaining -= n
		if n < cur.Len() || remaining == 0 {
			break
		}
		cur = cur.Next()
		if cur == c.Front() {
			break
		}
	}
	return nil
}

// BackFill overwrites len(p) already written bytes at destOffset. The patch
// must fit inside the written range and must not exceed the bytes reserved
// via Append that have not been patched yet.
func (w *BoundedWriter) BackFill(p []byte, destOffset int) error {
	if len(p) > w.appendCount {
		return errorx.ErrBackfillBudget
	}
	if destOffset+len(p) > w.seg.Len() {
		return errorx.ErrBackfillRange
	}

	w.appendCount -= len(p)
	copy(w.seg.WritableBytes()[destOffset:], p)
	return nil
}

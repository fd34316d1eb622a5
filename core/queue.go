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
	"errors"

	cs "github.com/TimeWtr/ChainStream"
	"github.com/TimeWtr/ChainStream/buffers"
	"github.com/TimeWtr/ChainStream/errorx"
	"github.com/TimeWtr/ChainStream/metrics"
)

type Options func(*BufferQueue) error

// WithMetrics Enable indicator collection and specify the collector type
func WithMetrics(collector cs.CollectorType) Options {
	return func(q *BufferQueue) error {
		if !collector.Validate() {
			return errors.New("invalid metrics collector")
		}

		switch collector {
		case cs.PrometheusCollector:
			q.mc = metrics.NewPrometheus()
		case cs.OpenTelemetryCollector:
		}

		return nil
	}
}

// BufferQueue accumulates chains of segments and redistributes them: split
// a prefix off the front as its own chain, or discard a consumed prefix.
// The queue is the sole owner of its chain and keeps a cached byte count so
// Len never walks segments. Designed for one logical owner; no internal
// locking is performed.
type BufferQueue struct {
	chain       *buffers.Segment
	chainLength int
	mc          metrics.Collector
}

func NewBufferQueue(opts ...Options) (*BufferQueue, error) {
	q := &BufferQueue{mc: metrics.NewNop()}
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Len returns the cached total byte count of the owned chain.
func (q *BufferQueue) Len() int {
	return q.chainLength
}

func (q *BufferQueue) Empty() bool {
	return q.chain == nil
}

// Append splices c onto the end of the owned chain, consuming c. A nil
// chain, or one carrying no bytes, is a no-op. O(1) for non-empty chains.
func (q *BufferQueue) Append(c *buffers.Chain) {
	if c.Empty() {
		return
	}

	n := c.Len()
	if n == 0 {
		// A ring of zero-length segments carries no bytes; splicing it in
		// would leave a non-nil chain on a zero-length queue.
		c.Release()
		return
	}

	q.chainLength += n
	head := c.Detach()
	if q.chain == nil {
		q.chain = head
	} else {
		q.chain.PushBack(head)
	}
	q.mc.ObserveAppend(float64(n))
}

// SplitAtMost removes and returns the first min(n, Len()) bytes as a new
// standalone chain. When the split point lands exactly on a segment
// boundary the result is pure pointer surgery; otherwise the straddling
// segment is cloned and both sides trimmed, sharing storage at the cost of
// a reference count increment.
func (q *BufferQueue) SplitAtMost(n int) *buffers.Chain {
	current := q.chain
	if current == nil || n == 0 {
		return buffers.NewChain(nil)
	}
	if n >= q.chainLength {
		taken := q.chainLength
		out := q.Move()
		q.mc.ObserveSplit(true, float64(taken))
		return out
	}

	q.chainLength -= n
	taken := n
	// Find the last segment overlapping the requested range. This
	// terminates without wrapping back to the entry segment because the
	// chain is known to hold more than n bytes.
	for n != 0 {
		if current.Len() > n {
			break
		}
		n -= current.Len()
		current = current.Next()
	}

	var result *buffers.Segment
	if n == 0 {
		// The range ended exactly at the previous segment boundary. The
		// straddling segment cannot be the entry segment here, otherwise
		// the whole chain would have been requested.
		result = buffers.Separate(q.chain, current.Prev())
	} else {
		clone := current.CloneOne()
		clone.TrimEnd(current.Len() - n)
		current.TrimStart(n)

		if current != q.chain {
			// Fully consumed segments precede the straddler; excise them
			// and put the trimmed clone at their end.
			prefix := buffers.Separate(q.chain, current.Prev())
			prefix.PushBack(clone)
			result = prefix
		} else {
			result = clone
		}
	}

	q.chain = current
	q.mc.ObserveSplit(n == 0, float64(taken))
	return buffers.NewChain(result)
}

// TrimStartAtMost discards up to amount bytes from the front and returns
// the number actually discarded, which is smaller than amount only when
// the queue held fewer bytes.
func (q *BufferQueue) TrimStartAtMost(amount int) int {
	current := q.chain
	if current == nil || amount == 0 {
		return 0
	}

	remaining := amount
	for remaining > 0 {
		if current.Len() >= remaining {
			current.TrimStart(remaining)
			remaining = 0
			break
		}
		remaining -= current.Len()
		current = current.Next()
		// Traversal terminates upon revisiting the entry segment: the
		// chain is exhausted.
		if current == q.chain {
			break
		}
	}

	prev := current.Prev()
	switch {
	case prev != current && current != q.chain:
		// Whole segments were skipped before the resting point; excise and
		// discard them, the partially trimmed segment becomes the head.
		skipped := buffers.Separate(q.chain, prev)
		buffers.NewChain(skipped).Release()
		q.chain = current
	case remaining > 0:
		// Wrapped without finding a resting point: everything is consumed.
		buffers.NewChain(q.chain).Release()
		q.chain = nil
	}

	trimmed := amount - remaining
	q.chainLength -= trimmed
	if q.chainLength == 0 && q.chain != nil {
		// Zero total bytes is represented as no chain, never as a chain of
		// zero-length segments.
		buffers.NewChain(q.chain).Release()
		q.chain = nil
	}
	q.mc.ObserveTrim(float64(trimmed))
	return trimmed
}

// TrimStart is the strict variant of TrimStartAtMost: it fails with
// errorx.ErrUnderflow when fewer than amount bytes were available.
func (q *BufferQueue) TrimStart(amount int) error {
	if trimmed := q.TrimStartAtMost(amount); trimmed != amount {
		return errorx.ErrUnderflow
	}
	return nil
}

// Move detaches and returns the entire owned chain, leaving the queue
// empty.
func (q *BufferQueue) Move() *buffers.Chain {
	head := q.chain
	q.chain = nil
	q.chainLength = 0
	return buffers.NewChain(head)
}

// computeChainLength independently recounts the owned chain, bypassing the
// cached counter.
func (q *BufferQueue) computeChainLength() int {
	return buffers.NewChain(q.chain).Len()
}

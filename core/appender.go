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
	cs "github.com/TimeWtr/ChainStream"
	"github.com/TimeWtr/ChainStream/buffers"
	"github.com/TimeWtr/ChainStream/errorx"
)

type AppenderOptions func(*ChainAppender) error

// WithAllocator replaces the segment allocator used for overflow segments.
func WithAllocator(alloc buffers.Allocator) AppenderOptions {
	return func(a *ChainAppender) error {
		if alloc == nil {
			return errorx.ErrNilSegment
		}
		a.alloc = alloc
		return nil
	}
}

// ChainAppender grows a caller-owned chain by pushing raw bytes or splicing
// in whole chains. It tracks the segment most recently written into and
// allocates a fresh segment when that one runs out of tailroom, or when the
// previous operation spliced in a shared segment whose tail must not be
// overwritten.
type ChainAppender struct {
	head       *buffers.Segment
	tail       *buffers.Segment
	growSize   int
	lastShared bool
	alloc      buffers.Allocator
}

// NewChainAppender builds an appender over the chain's entry segment. The
// chain must be non-empty; its lifetime stays with the caller. A growSize
// of zero or less selects the default.
func NewChainAppender(chain *buffers.Chain, growSize int, opts ...AppenderOptions) (*ChainAppender, error) {
	if chain.Empty() {
		return nil, errorx.ErrEmptyChain
	}
	if growSize <= 0 {
		growSize = cs.DefaultGrowSize
	}

	a := &ChainAppender{
		head:     chain.Front(),
		tail:     chain.Front(),
		growSize: growSize,
		alloc:    buffers.NewAllocator(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Push copies p onto the end of the chain, reusing the current tail's
// tailroom when it fits and is safe to overwrite.
func (a *ChainAppender) Push(p []byte) {
	if a.tail.Tailroom() < len(p) || a.lastShared {
		seg := a.alloc.Allocate(max(a.growSize, len(p)))
		a.head.PushBack(seg)
		a.tail = seg
	}

	copy(a.tail.WritableTail(), p)
	a.tail.Advance(len(p))
	a.lastShared = false
}

// Insert splices c onto the end of the chain without copying bytes,
// consuming c. When the inserted chain's entry segment is shared, the next
// Push is forced into a fresh segment so bytes still visible to another
// owner are never overwritten.
func (a *ChainAppender) Insert(c *buffers.Chain) {
	if c.Empty() {
		return
	}

	a.lastShared = c.Front().Shared()
	a.head.PushBack(c.Detach())
	a.tail = a.head.Prev()
}

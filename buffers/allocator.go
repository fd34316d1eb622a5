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

package buffers

import (
	"github.com/TimeWtr/ChainStream/metrics"
	"github.com/TimeWtr/ChainStream/poolx"
)

// Allocator produces exclusively owned, empty segments with at least the
// requested capacity.
//
//go:generate mockgen -destination=./mocks/allocator_mock.go -package buffers_mocks github.com/TimeWtr/ChainStream/buffers Allocator
type Allocator interface {
	Allocate(size int) *Segment
}

type AllocOption func(*pooledAllocator)

// WithCollector reports every allocation to mc.
func WithCollector(mc metrics.Collector) AllocOption {
	return func(a *pooledAllocator) {
		a.mc = mc
	}
}

// pooledAllocator backs segments with poolx storage so that released chains
// return their arrays to bounded free lists instead of the heap.
type pooledAllocator struct {
	pool *poolx.Pool
	mc   metrics.Collector
}

func NewAllocator(opts ...AllocOption) Allocator {
	a := &pooledAllocator{
		pool: poolx.New(),
		mc:   metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *pooledAllocator) Allocate(size int) *Segment {
	buf := a.pool.Alloc(size)
	a.mc.AllocInc(1)
	return newSegment(newStorage(buf[:cap(buf)], a.pool.Free))
}

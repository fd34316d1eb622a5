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

package poolx

import (
	"sync"
	"unsafe"
)

// mmapThreshold requests at or above this size go to the kernel directly so
// that releasing them returns the pages instead of growing the heap.
const mmapThreshold = 64 * 1024

// Pool hands out storage for segment allocation. Small requests come from
// bounded size-class free lists, large requests are memory mapped where the
// platform supports it, everything in between is heap allocated.
type Pool struct {
	small  *smallPool
	mu     sync.Mutex
	mapped map[uintptr]struct{}
}

func New() *Pool {
	return &Pool{
		small:  newSmallPool(),
		mapped: make(map[uintptr]struct{}),
	}
}

// Alloc returns a zero-length buffer with capacity of at least size bytes.
func (p *Pool) Alloc(size int) []byte {
	if size <= _4096Bytes.int() {
		if buf := p.small.Alloc(size); buf != nil {
			return buf
		}
	}

	if size >= mmapThreshold {
		if buf, err := mapBlock(size); err == nil {
			p.mu.Lock()
			p.mapped[blockAddr(buf)] = struct{}{}
			p.mu.Unlock()
			return buf
		}
	}

	return make([]byte, 0, size)
}

// Free returns buf to the pool it came from. Buffers that match no size
// class and were not memory mapped are left to the garbage collector.
func (p *Pool) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}

	addr := blockAddr(buf)
	p.mu.Lock()
	if _, ok := p.mapped[addr]; ok {
		delete(p.mapped, addr)
		p.mu.Unlock()
		_ = unmapBlock(buf)
		return
	}
	p.mu.Unlock()

	p.small.Free(buf[:0])
}

func blockAddr(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf[:cap(buf)])))
}

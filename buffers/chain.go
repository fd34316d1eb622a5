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

// Chain is one logical byte stream: a circular sequence of segments entered
// at a single front segment. A Chain value is a transferable ownership
// handle. Operations that splice a chain into another structure consume it,
// leaving the source empty, so that at most one owner reaches any entry
// segment at a time.
type Chain struct {
	head *Segment
}

// NewChain wraps the ring entered at head. A nil head yields a valid empty
// chain.
func NewChain(head *Segment) *Chain {
	return &Chain{head: head}
}

// FromBytes copies p into freshly allocated storage and returns the
// resulting single-segment chain.
func FromBytes(alloc Allocator, p []byte) *Chain {
	seg := alloc.Allocate(len(p))
	copy(seg.WritableTail(), p)
	seg.Advance(len(p))
	return NewChain(seg)
}

// Front returns the entry segment, nil when the chain is empty.
func (c *Chain) Front() *Segment {
	if c == nil {
		return nil
	}
	return c.head
}

func (c *Chain) Empty() bool {
	return c == nil || c.head == nil
}

// Len walks the ring and sums the segment data lengths.
func (c *Chain) Len() int {
	if c.Empty() {
		return 0
	}

	total := 0
	seg := c.head
	for {
		total += seg.length
		seg = seg.next
		if seg == c.head {
			break
		}
	}
	return total
}

// PushBack splices other onto the end of c, consuming other.
func (c *Chain) PushBack(other *Chain) {
	if other.Empty() {
		return
	}

	head := other.Detach()
	if c.head == nil {
		c.head = head
		return
	}
	c.head.PushBack(head)
}

// Detach hands the underlying ring to the caller and empties the chain.
func (c *Chain) Detach() *Segment {
	head := c.head
	c.head = nil
	return head
}

// Release drops every segment's storage reference and empties the chain.
// Storage with no remaining references is recycled by its allocator.
func (c *Chain) Release() {
	if c.Empty() {
		return
	}

	seg := c.head
	for {
		next := seg.next
		seg.release()
		if next == c.head {
			break
		}
		seg = next
	}
	c.head = nil
}

// ReadAll materializes the byte stream into one contiguous slice.
func (c *Chain) ReadAll() []byte {
	if c.Empty() {
		return nil
	}

	out := make([]byte, 0, c.Len())
	seg := c.head
	for {
		out = append(out, seg.Bytes()...)
		seg = seg.next
		if seg == c.head {
			break
		}
	}
	return out
}

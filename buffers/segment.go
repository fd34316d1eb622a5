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

// Segment is one header over a reference counted storage region: a logical
// data range [off, off+length) inside the backing array plus the links that
// make it a member of a circular doubly linked chain. A lone segment links
// to itself. Cloning a segment copies the header and shares the storage;
// byte mutation is only legal while the storage has a single reference.
type Segment struct {
	store  *storage
	off    int
	length int
	next   *Segment
	prev   *Segment
}

func newSegment(store *storage) *Segment {
	s := &Segment{store: store}
	s.next, s.prev = s, s
	return s
}

func (s *Segment) Len() int {
	return s.length
}

func (s *Segment) Capacity() int {
	return len(s.store.buf)
}

// Tailroom reports how many bytes can still be appended in place.
func (s *Segment) Tailroom() int {
	return len(s.store.buf) - s.off - s.length
}

// Bytes returns the data range as a read view. Callers must not mutate it
// unless they hold the only reference to the storage.
func (s *Segment) Bytes() []byte {
	return s.store.buf[s.off : s.off+s.length]
}

// WritableTail returns the unused region after the data range. Valid to
// write only while the storage is exclusively owned.
func (s *Segment) WritableTail() []byte {
	return s.store.buf[s.off+s.length:]
}

// WritableBytes returns the data range for in-place patching. Valid to
// write only while the storage is exclusively owned.
func (s *Segment) WritableBytes() []byte {
	return s.store.buf[s.off : s.off+s.length]
}

// Advance extends the data range by n bytes of tailroom already written by
// the caller.
func (s *Segment) Advance(n int) {
	s.length += n
}

// TrimStart drops the first n bytes of the data range.
func (s *Segment) TrimStart(n int) {
	s.off += n
	s.length -= n
}

// TrimEnd drops the last n bytes of the data range.
func (s *Segment) TrimEnd(n int) {
	s.length -= n
}

// Shared reports whether the storage is visible to more than one owner.
func (s *Segment) Shared() bool {
	return s.store.shared()
}

// ShareCount returns the number of live references to the storage.
func (s *Segment) ShareCount() int32 {
	return s.store.refs.Load()
}

// CloneOne returns a new lone segment covering the same data range over the
// same storage. Both headers observe the storage as shared afterwards.
func (s *Segment) CloneOne() *Segment {
	s.store.ref()
	c := &Segment{
		store:  s.store,
		off:    s.off,
		length: s.length,
	}
	c.next, c.prev = c, c
	return c
}

func (s *Segment) Next() *Segment {
	return s.next
}

func (s *Segment) Prev() *Segment {
	return s.prev
}

// PushBack splices the whole chain entered at other onto the end of the
// chain entered at s. O(1) pointer surgery, no bytes move.
func (s *Segment) PushBack(other *Segment) {
	tail := s.prev
	otherTail := other.prev

	tail.next = other
	other.prev = tail
	otherTail.next = s
	s.prev = otherTail
}

// Separate excises the sub-range [head..tail] out of the ring containing it
// and re-closes both rings. The excised range is returned as its own
// standalone circular chain entered at head. The two arguments may be the
// same segment, and the range may cover the entire ring.
func Separate(head, tail *Segment) *Segment {
	before := head.prev
	after := tail.next

	before.next = after
	after.prev = before
	head.prev = tail
	tail.next = head
	return head
}

// release drops the segment's storage reference and unlinks it.
func (s *Segment) release() {
	s.store.unref()
	s.next, s.prev = s, s
}

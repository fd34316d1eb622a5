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

import "github.com/TimeWtr/ChainStream/utils/atomicx"

// storage is one contiguous backing array shared by every segment header
// cloned from it. The reference count is the only piece of chain state that
// is safe to touch from more than one owner: it is what lets a split chain
// be handed to another consumer without copying bytes.
type storage struct {
	buf  []byte
	refs *atomicx.Int32
	// recycle receives the backing array when the last reference drops.
	// Nil when the storage is left to the garbage collector.
	recycle func([]byte)
}

func newStorage(buf []byte, recycle func([]byte)) *storage {
	return &storage{
		buf:     buf,
		refs:    atomicx.NewInt32(1),
		recycle: recycle,
	}
}

func (s *storage) ref() {
	s.refs.Add(1)
}

func (s *storage) unref() {
	if s.refs.Add(-1) == 0 && s.recycle != nil {
		s.recycle(s.buf)
	}
}

func (s *storage) shared() bool {
	return s.refs.Load() > 1
}

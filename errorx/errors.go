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

package errorx

import "errors"

var (
	// ErrUnderflow a strict trim asked for more bytes than the queue held.
	ErrUnderflow = errors.New("attempt to trim more bytes than are present in queue")
	// ErrCapacityExceeded a bounded write would exceed its reserved budget.
	ErrCapacityExceeded = errors.New("write exceeds reserved capacity")
	// ErrShortTailroom the segment handed to a bounded writer has less
	// tailroom than the requested budget.
	ErrShortTailroom = errors.New("segment tailroom smaller than reserved budget")
	// ErrSharedSegment an in-place writer was constructed over storage that
	// is still visible to another owner.
	ErrSharedSegment = errors.New("segment storage is shared")
	// ErrBackfillBudget a backfill is larger than the bytes appended but not
	// yet patched.
	ErrBackfillBudget = errors.New("backfill larger than unspent append bytes")
	// ErrBackfillRange a backfill range extends past the written data.
	ErrBackfillRange = errors.New("backfill range beyond written data")
	// ErrEmptyChain an operation that requires an entry segment was given a
	// chain without one.
	ErrEmptyChain = errors.New("chain has no entry segment")
	// ErrNilSegment an operation that requires a segment was given none.
	ErrNilSegment = errors.New("segment is nil")
)

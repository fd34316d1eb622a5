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
	"fmt"
	"testing"

	cs "github.com/TimeWtr/ChainStream"
	"github.com/TimeWtr/ChainStream/buffers"
	"github.com/TimeWtr/ChainStream/errorx"
	mm "github.com/TimeWtr/ChainStream/metrics/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func chainOf(t *testing.T, alloc buffers.Allocator, parts ...string) *buffers.Chain {
	t.Helper()
	c := buffers.NewChain(nil)
	for _, p := range parts {
		c.PushBack(buffers.FromBytes(alloc, []byte(p)))
	}
	return c
}

// newTestQueue seeds a queue with one segment per part.
func newTestQueue(t *testing.T, parts ...string) *BufferQueue {
	t.Helper()
	q, err := NewBufferQueue()
	require.NoError(t, err)
	q.Append(chainOf(t, buffers.NewAllocator(), parts...))
	return q
}

func TestBufferQueue_Append(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE")
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, q.computeChainLength(), q.Len())

	q.Append(buffers.FromBytes(buffers.NewAllocator(), []byte("FGH")))
	assert.Equal(t, 8, q.Len())
	assert.Equal(t, q.computeChainLength(), q.Len())
}

func TestBufferQueue_AppendEmpty(t *testing.T) {
	q, err := NewBufferQueue()
	require.NoError(t, err)

	q.Append(nil)
	q.Append(buffers.NewChain(nil))

	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Empty())
}

func TestBufferQueue_AppendZeroByteChain(t *testing.T) {
	alloc := buffers.NewAllocator()
	q, err := NewBufferQueue()
	require.NoError(t, err)

	// a non-nil ring of zero-length segments carries no bytes and must not
	// be adopted as the owned chain
	q.Append(buffers.FromBytes(alloc, nil))

	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Empty())
	assert.True(t, q.Move().Empty())

	q.Append(chainOf(t, alloc, "ABC"))
	q.Append(buffers.FromBytes(alloc, nil))

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, q.computeChainLength(), q.Len())
	assert.Equal(t, "ABC", string(q.Move().ReadAll()))
}

func TestBufferQueue_SplitAtMost_ExactBoundary(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")

	out := q.SplitAtMost(3)

	require.NotNil(t, out)
	assert.Equal(t, "ABC", string(out.ReadAll()))
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, q.computeChainLength(), q.Len())
	assert.Equal(t, "DEFGH", string(q.Move().ReadAll()))

	// boundary-aligned split is pure pointer surgery, no storage is shared
	seg := out.Front()
	for {
		assert.EqualValues(t, 1, seg.ShareCount())
		seg = seg.Next()
		if seg == out.Front() {
			break
		}
	}
}

func TestBufferQueue_SplitAtMost_MidSegment(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")

	out := q.SplitAtMost(4)

	assert.Equal(t, "ABCD", string(out.ReadAll()))
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, q.computeChainLength(), q.Len())

	// the straddling segment was cloned, both sides observe the share
	straddler := out.Front().Prev()
	assert.EqualValues(t, 2, straddler.ShareCount())
	assert.True(t, straddler.Shared())

	assert.Equal(t, "EFGH", string(q.Move().ReadAll()))
}

func TestBufferQueue_SplitAtMost_MidFirstSegment(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE")

	out := q.SplitAtMost(2)

	assert.Equal(t, "AB", string(out.ReadAll()))
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, "CDE", string(q.Move().ReadAll()))
}

func TestBufferQueue_SplitAtMost_Saturation(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")

	out := q.SplitAtMost(100)

	assert.Equal(t, "ABCDEFGH", string(out.ReadAll()))
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Empty())
}

func TestBufferQueue_SplitAtMost_Zero(t *testing.T) {
	q := newTestQueue(t, "ABC")

	out := q.SplitAtMost(0)

	require.NotNil(t, out)
	assert.True(t, out.Empty())
	assert.Equal(t, 3, q.Len())
}

func TestBufferQueue_SplitAtMost_EmptyQueue(t *testing.T) {
	q, err := NewBufferQueue()
	require.NoError(t, err)

	out := q.SplitAtMost(5)

	require.NotNil(t, out)
	assert.True(t, out.Empty())
}

func TestBufferQueue_SplitConservation(t *testing.T) {
	for n := 0; n <= 9; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			q := newTestQueue(t, "ABC", "DE", "FGH")
			total := q.Len()

			out := q.SplitAtMost(n)

			assert.Equal(t, total, out.Len()+q.Len())
			assert.Equal(t, q.computeChainLength(), q.Len())
		})
	}
}

func TestBufferQueue_SplitAppendInverse(t *testing.T) {
	for n := 0; n <= 9; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			const original = "ABCDEFGH"
			q := newTestQueue(t, "ABC", "DE", "FGH")

			out := q.SplitAtMost(n)
			prefix := string(out.ReadAll())
			q.Append(out)

			cut := min(n, len(original))
			assert.Equal(t, original[:cut], prefix)
			assert.Equal(t, len(original), q.Len())
			assert.Equal(t, original[cut:]+prefix, string(q.Move().ReadAll()))
		})
	}
}

func TestBufferQueue_SplitAppendInverse_FullTake(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")

	out := q.SplitAtMost(8)
	q.Append(out)

	assert.Equal(t, 8, q.Len())
	assert.Equal(t, "ABCDEFGH", string(q.Move().ReadAll()))
}

func TestBufferQueue_TrimStartAtMost_ExactBoundary(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")

	trimmed := q.TrimStartAtMost(3)

	assert.Equal(t, 3, trimmed)
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, q.computeChainLength(), q.Len())
	assert.Equal(t, "DEFGH", string(q.Move().ReadAll()))
}

func TestBufferQueue_TrimStartAtMost_MidSegment(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")

	trimmed := q.TrimStartAtMost(4)

	assert.Equal(t, 4, trimmed)
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, "EFGH", string(q.Move().ReadAll()))
}

func TestBufferQueue_TrimStartAtMost_Saturation(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")

	trimmed := q.TrimStartAtMost(10)

	assert.Equal(t, 8, trimmed)
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Empty())
}

func TestBufferQueue_TrimStartAtMost_WholeSingleSegment(t *testing.T) {
	q := newTestQueue(t, "ABC")

	trimmed := q.TrimStartAtMost(3)

	assert.Equal(t, 3, trimmed)
	assert.Equal(t, 0, q.Len())
	// zero bytes means no chain, never a chain of empty segments
	assert.True(t, q.Empty())
}

func TestBufferQueue_TrimStartAtMost_EmptyQueue(t *testing.T) {
	q, err := NewBufferQueue()
	require.NoError(t, err)

	assert.Equal(t, 0, q.TrimStartAtMost(4))
}

func TestBufferQueue_TrimStart_Underflow(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")

	err := q.TrimStart(10)

	assert.ErrorIs(t, err, errorx.ErrUnderflow)
}

func TestBufferQueue_TrimStart_Exact(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")

	require.NoError(t, q.TrimStart(8))
	assert.True(t, q.Empty())
}

func TestBufferQueue_Move(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE")

	out := q.Move()

	assert.Equal(t, "ABCDE", string(out.ReadAll()))
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Empty())
}

func TestBufferQueue_LengthInvariant(t *testing.T) {
	q := newTestQueue(t, "ABC", "DE", "FGH")
	check := func() {
		t.Helper()
		assert.Equal(t, q.computeChainLength(), q.Len())
		assert.Equal(t, q.Len() == 0, q.Empty())
	}

	check()
	_ = q.SplitAtMost(2)
	check()
	_ = q.TrimStartAtMost(3)
	check()
	q.Append(buffers.FromBytes(buffers.NewAllocator(), []byte("IJK")))
	check()
	_ = q.SplitAtMost(100)
	check()
}

func TestBufferQueue_SplitObservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newTestQueue(t, "ABC", "DE", "FGH")
	mc := mm.NewMockCollector(ctrl)
	q.mc = mc

	mc.EXPECT().ObserveSplit(false, 4.0)
	_ = q.SplitAtMost(4)

	// the saturating full take counts as a zero-copy hand-off
	mc.EXPECT().ObserveSplit(true, 4.0)
	_ = q.SplitAtMost(100)
}

func TestNewBufferQueue_WithMetrics(t *testing.T) {
	q, err := NewBufferQueue(WithMetrics(cs.PrometheusCollector))
	require.NoError(t, err)

	q.Append(buffers.FromBytes(buffers.NewAllocator(), []byte("ABC")))
	_ = q.SplitAtMost(2)
	_ = q.TrimStartAtMost(1)

	_, err = NewBufferQueue(WithMetrics(cs.CollectorType(99)))
	assert.Error(t, err)
}

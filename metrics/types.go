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

package metrics

// Collector Indicator monitoring interface
//
//go:generate mockgen -destination=./mocks/collector_mock.go -package metrics_mocks github.com/TimeWtr/ChainStream/metrics Collector
type Collector interface {
	AppendMetrics
	SplitMetrics
	TrimMetrics
	PoolMetrics
}

// AppendMetrics Queue append indicator
type AppendMetrics interface {
	// ObserveAppend Number of bytes spliced onto a queue
	ObserveAppend(bytes float64)
}

// SplitMetrics Queue split indicator
type SplitMetrics interface {
	// ObserveSplit Number of bytes handed off by a split, flagged by whether
	// the split was pure pointer surgery or required a clone
	ObserveSplit(zeroCopy bool, bytes float64)
}

// TrimMetrics Queue trim indicator
type TrimMetrics interface {
	// ObserveTrim Number of bytes discarded from the front of a queue
	ObserveTrim(bytes float64)
}

// PoolMetrics Segment allocation indicator
type PoolMetrics interface {
	// AllocInc Difference by which the allocated segment count increases
	AllocInc(delta float64)
}

var _ Collector = (*Nop)(nil)

// Nop discards all indicator data. The default collector.
type Nop struct{}

func NewNop() *Nop { return &Nop{} }

func (*Nop) ObserveAppend(float64)      {}
func (*Nop) ObserveSplit(bool, float64) {}
func (*Nop) ObserveTrim(float64)        {}
func (*Nop) AllocInc(float64)           {}

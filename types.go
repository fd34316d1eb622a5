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

package chainstream

// DefaultGrowSize is the segment capacity an appender allocates when it
// runs out of tailroom and the caller did not request a specific grow size.
const DefaultGrowSize = 4 * 1024

type CollectorType uint8

const (
	PrometheusCollector CollectorType = iota + 1
	OpenTelemetryCollector
)

func (c CollectorType) Validate() bool {
	switch c {
	case PrometheusCollector, OpenTelemetryCollector:
		return true
	default:
		return false
	}
}

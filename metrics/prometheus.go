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

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	mc       *Prometheus
	registry *prometheus.Registry // Indicator registry
)

// GetHandler Return HTTP handler for docking with various frameworks
func GetHandler() http.Handler {
	return promhttp.HandlerFor(
		registry,
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	)
}

var _ Collector = (*Prometheus)(nil)

type Prometheus struct {
	appendBytes prometheus.Counter     // total bytes spliced onto queues
	splitCounts *prometheus.CounterVec // split operations by mode
	splitBytes  prometheus.Counter     // total bytes handed off by splits
	trimBytes   prometheus.Counter     // total bytes discarded from queue fronts
	allocCounts prometheus.Counter     // segment allocation times
}

func NewPrometheus() *Prometheus {
	mc = &Prometheus{}
	registry = prometheus.NewRegistry()
	return mc.register()
}

func (p *Prometheus) register() *Prometheus {
	const namespace = "chain_stream"
	p.appendBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "append_bytes_total",
		Help:      "Number of bytes appended to buffer queues.",
	})
	registry.MustRegister(p.appendBytes)

	p.splitCounts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "split_counts_total",
		Help:      "Number of split operations by mode.",
	}, []string{"mode"})
	registry.MustRegister(p.splitCounts)

	p.splitBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "split_bytes_total",
		Help:      "Number of bytes handed off by split operations.",
	})
	registry.MustRegister(p.splitBytes)

	p.trimBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trim_bytes_total",
		Help:      "Number of bytes trimmed from the front of buffer queues.",
	})
	registry.MustRegister(p.trimBytes)

	p.allocCounts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alloc_counts_total",
		Help:      "Number of segment allocations.",
	})
	registry.MustRegister(p.allocCounts)

	return p
}

func (p *Prometheus) ObserveAppend(bytes float64) {
	p.appendBytes.Add(bytes)
}

func (p *Prometheus) ObserveSplit(zeroCopy bool, bytes float64) {
	mode := "cloned"
	if zeroCopy {
		mode = "zero_copy"
	}
	p.splitCounts.WithLabelValues(mode).Inc()
	p.splitBytes.Add(bytes)
}

func (p *Prometheus) ObserveTrim(bytes float64) {
	p.trimBytes.Add(bytes)
}

func (p *Prometheus) AllocInc(delta float64) {
	p.allocCounts.Add(delta)
}

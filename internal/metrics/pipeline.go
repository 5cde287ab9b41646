// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelinePhaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bestchain7000",
		Subsystem: "pipeline",
		Name:      "phase_total",
		Help:      "Count of pipeline phase executions.",
	}, []string{"phase", "status"})

	pipelinePhaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bestchain7000",
		Subsystem: "pipeline",
		Name:      "phase_duration_seconds",
		Help:      "Duration of pipeline phases.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"phase", "status"})

	pipelineHeadersRead = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bestchain7000",
		Subsystem: "pipeline",
		Name:      "headers_read_total",
		Help:      "Count of header records consumed from the input stream.",
	})

	pipelineForestNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "bestchain7000",
		Subsystem: "pipeline",
		Name:      "forest_nodes",
		Help:      "Number of nodes in the reconstructed chain forest.",
	})

	pipelineChainTips = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "bestchain7000",
		Subsystem: "pipeline",
		Name:      "chain_tips",
		Help:      "Number of chain tips found in the forest.",
	})
)

const (
	phaseRead   = "read"
	phaseBuild  = "build"
	phaseSelect = "select"
	phaseEmit   = "emit"
)

// Pipeline tracks metrics for the chain reconstruction pipeline.
type Pipeline struct{}

// NewPipeline constructs a Pipeline collector.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// ObserveRead records the header-read phase outcome and record count.
func (m Pipeline) ObserveRead(err error, records uint64, started time.Time) {
	observePhase(phaseRead, err, started)
	if err == nil {
		pipelineHeadersRead.Add(float64(records))
	}
}

// ObserveBuild records the forest-build phase outcome and node count.
func (m Pipeline) ObserveBuild(err error, nodes int, started time.Time) {
	observePhase(phaseBuild, err, started)
	if err == nil {
		pipelineForestNodes.Set(float64(nodes))
	}
}

// ObserveSelect records the best-selection phase outcome and tip count.
func (m Pipeline) ObserveSelect(err error, tips int, started time.Time) {
	observePhase(phaseSelect, err, started)
	if err == nil {
		pipelineChainTips.Set(float64(tips))
	}
}

// ObserveEmit records the emit phase outcome.
func (m Pipeline) ObserveEmit(err error, started time.Time) {
	observePhase(phaseEmit, err, started)
}

func observePhase(phase string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pipelinePhaseTotal.WithLabelValues(phase, status).Inc()
	pipelinePhaseDuration.WithLabelValues(phase, status).Observe(time.Since(started).Seconds())
}

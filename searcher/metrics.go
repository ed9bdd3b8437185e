package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one FindBestMove call.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Depth     int
	Nodes     int64
	Cutoffs   int64
}

type MetricsCollector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	depth     int
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Depth:     m.depth,
		Nodes:     m.nodes.Load(),
		Cutoffs:   m.cutoffs.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(int) {}
func (m *noMetricsCollector) AddNode() {}
func (m *noMetricsCollector) AddCutoff() {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }

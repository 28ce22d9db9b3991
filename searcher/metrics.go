package searcher

import (
	"sync/atomic"
	"time"
)

// DecisionMetrics summarizes one ChooseAction call of a search agent.
type DecisionMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Trials    int64
	Playouts  int64
}

// MetricsCollector accumulates per-decision counters.
type MetricsCollector interface {
	Start()
	AddTrial()
	AddPlayout()
	Complete() DecisionMetrics
}

type metricsCollector struct {
	startTime time.Time
	trials    atomic.Int64
	playouts  atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.trials.Store(0)
	m.playouts.Store(0)
}

func (m *metricsCollector) AddTrial() {
	m.trials.Add(1)
}

func (m *metricsCollector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *metricsCollector) Complete() DecisionMetrics {
	return DecisionMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Trials:    m.trials.Load(),
		Playouts:  m.playouts.Load(),
	}
}

// dummyCollector is the default when metrics are not requested.
type dummyCollector struct{}

func NewDummyCollector() MetricsCollector {
	return dummyCollector{}
}

func (dummyCollector) Start()                    {}
func (dummyCollector) AddTrial()                 {}
func (dummyCollector) AddPlayout()               {}
func (dummyCollector) Complete() DecisionMetrics { return DecisionMetrics{} }

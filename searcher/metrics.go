package searcher

import (
	"time"
)

type SearchMetric struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int // Boards expanded, including the root
	DeadEnds  int // Boards with no legal move that are not wins
	Solutions int
	MaxDepth  int
}

type Collector interface {
	Start()
	AddNode(depth int)
	AddDeadEnd()
	AddSolution()
	Complete() SearchMetric
}

type collector struct {
	metric SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.metric = SearchMetric{StartTime: time.Now()}
}

func (m *collector) AddNode(depth int) {
	m.metric.Nodes++
	m.metric.MaxDepth = max(m.metric.MaxDepth, depth)
}

func (m *collector) AddDeadEnd() {
	m.metric.DeadEnds++
}

func (m *collector) AddSolution() {
	m.metric.Solutions++
}

func (m *collector) Complete() SearchMetric {
	m.metric.Duration = time.Since(m.metric.StartTime)
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode(depth int)      {}
func (m *dummyCollector) AddDeadEnd()            {}
func (m *dummyCollector) AddSolution()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }

package service

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StageKubeAPIGetPods = "kube-api-get-pods"
	StageResolveTargets = "resolve-targets"
	StageFetchExports   = "fetch-exports"
	StageBuildGraph     = "build-graph"
	StageRender         = "render"
)

// Metrics records how long each stage of a topology request takes.
type Metrics struct {
	stageLatency *prometheus.HistogramVec
}

func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		stageLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "netstat_stage_latency_sec",
			Help:    "Latency histogram",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
	}
	if err := registerer.Register(m.stageLatency); err != nil {
		return nil, fmt.Errorf("failed to register stage latency histogram: %v", err)
	}
	return m, nil
}

// ObserveStage is meant to be deferred: defer m.ObserveStage(stage, time.Now()).
func (m *Metrics) ObserveStage(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.stageLatency.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

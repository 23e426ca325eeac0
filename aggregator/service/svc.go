package service

import (
	"fmt"
	"net/netip"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/aggregator/graph"
	"github.com/Gthulhu/topology/config"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	K8SAdapter      domain.K8SAdapter
	Discoverer      domain.AgentDiscoverer
	AgentAdapter    domain.AgentAdapter
	Renderer        domain.Renderer
	CollectorConfig config.CollectorConfig
	GraphConfig     config.GraphConfig
	Metrics         *Metrics
}

func NewService(params Params) (domain.Service, error) {
	// an empty service CIDR disables the service address filter
	if cidr := params.GraphConfig.ServiceCIDR; cidr != "" {
		if _, err := netip.ParsePrefix(cidr); err != nil {
			return nil, fmt.Errorf("parse service CIDR %q: %w", cidr, err)
		}
	}
	if err := graph.ValidatePatterns(params.GraphConfig.CollapseHostnames); err != nil {
		return nil, fmt.Errorf("default collapse patterns: %w", err)
	}

	svc := &Service{
		K8SAdapter:      params.K8SAdapter,
		Discoverer:      params.Discoverer,
		AgentAdapter:    params.AgentAdapter,
		Renderer:        params.Renderer,
		CollectorConfig: params.CollectorConfig,
		GraphConfig:     params.GraphConfig,
		metrics:         params.Metrics,
	}
	return svc, nil
}

// Service holds the process-wide collaborators. It carries no per-request
// state, so one instance serves concurrent requests.
type Service struct {
	K8SAdapter      domain.K8SAdapter
	Discoverer      domain.AgentDiscoverer
	AgentAdapter    domain.AgentAdapter
	Renderer        domain.Renderer
	CollectorConfig config.CollectorConfig
	GraphConfig     config.GraphConfig
	metrics         *Metrics
}

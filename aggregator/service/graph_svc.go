package service

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/aggregator/graph"
	"github.com/Gthulhu/topology/pkg/logger"
)

// GraphFilter resolves request options against the configured defaults.
// Patterns are validated here so a bad request fails before any upstream call.
func (svc *Service) GraphFilter(opt *domain.GraphOptions) (domain.GraphFilter, error) {
	exclude := svc.GraphConfig.ExcludeNamespaces
	collapse := svc.GraphConfig.CollapseHostnames
	var include []string
	if opt != nil {
		if opt.ExcludeNamespaces != nil {
			exclude = opt.ExcludeNamespaces
		}
		if len(opt.CollapseHostnames) > 0 {
			collapse = opt.CollapseHostnames
		}
		include = opt.IncludeNamespaces
	}
	if err := graph.ValidatePatterns(collapse); err != nil {
		return domain.GraphFilter{}, err
	}

	var serviceCIDR netip.Prefix
	if svc.GraphConfig.ServiceCIDR != "" {
		prefix, err := netip.ParsePrefix(svc.GraphConfig.ServiceCIDR)
		if err != nil {
			return domain.GraphFilter{}, fmt.Errorf("parse service CIDR %q: %w", svc.GraphConfig.ServiceCIDR, err)
		}
		serviceCIDR = prefix.Masked()
	}
	return domain.NewGraphFilter(exclude, include, collapse, serviceCIDR), nil
}

func (svc *Service) BuildGraph(ctx context.Context, opt *domain.GraphOptions) (*domain.Graph, error) {
	filter, err := svc.GraphFilter(opt)
	if err != nil {
		return nil, err
	}
	topology, err := svc.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g := graph.Build(topology, filter)
	svc.metrics.ObserveStage(StageBuildGraph, start)
	logger.Logger(ctx).Debug().Msgf("built graph with %d nodes and %d edges", len(g.Nodes), len(g.Edges))
	return g, nil
}

func (svc *Service) RenderDiagram(ctx context.Context, opt *domain.GraphOptions, format domain.RenderFormat) ([]byte, error) {
	switch format {
	case domain.RenderFormatSVG, domain.RenderFormatDOT:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	g, err := svc.BuildGraph(ctx, opt)
	if err != nil {
		return nil, err
	}

	defer svc.metrics.ObserveStage(StageRender, time.Now())
	return svc.Renderer.Render(ctx, g, format)
}

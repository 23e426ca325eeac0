// Package discovery locates the netstat agents running in the cluster.
package discovery

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/aggregator/errs"
	"github.com/Gthulhu/topology/config"
	"github.com/Gthulhu/topology/pkg/logger"
	"github.com/pkg/errors"
)

const (
	ModeDNS            = "dns"
	ModeEndpointSlices = "endpointslices"
)

// NewDiscoverer returns the discoverer selected by cfg.Mode.
func NewDiscoverer(cfg config.DiscoveryConfig, k8sAdapter domain.K8SAdapter) (domain.AgentDiscoverer, error) {
	switch cfg.Mode {
	case ModeDNS, "":
		return NewDNSDiscoverer(cfg, net.DefaultResolver), nil
	case ModeEndpointSlices:
		return NewEndpointSliceDiscoverer(cfg, k8sAdapter), nil
	default:
		return nil, fmt.Errorf("unknown discovery mode %q", cfg.Mode)
	}
}

// SRVResolver is satisfied by *net.Resolver.
type SRVResolver interface {
	LookupSRV(ctx context.Context, service, proto, name string) (string, []*net.SRV, error)
}

func NewDNSDiscoverer(cfg config.DiscoveryConfig, resolver SRVResolver) *DNSDiscoverer {
	return &DNSDiscoverer{
		Resolver: resolver,
		Service:  cfg.PortName,
		Protocol: cfg.Protocol,
		Name:     cfg.SRVName(),
	}
}

// DNSDiscoverer resolves agents through the SRV record _<Service>._<Protocol>.<Name>.
type DNSDiscoverer struct {
	Resolver SRVResolver
	Service  string
	Protocol string
	Name     string
}

func (d *DNSDiscoverer) Discover(ctx context.Context) ([]*domain.AgentTarget, error) {
	logger.Logger(ctx).Debug().Msgf("resolving SRV record for _%s._%s.%s", d.Service, d.Protocol, d.Name)
	_, records, err := d.Resolver.LookupSRV(ctx, d.Service, d.Protocol, d.Name)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			logger.Logger(ctx).Info().Msgf("no SRV record for %s, no agents to query", d.Name)
			return []*domain.AgentTarget{}, nil
		}
		return nil, errors.WithMessagef(err, "lookup SRV %s", d.Name)
	}

	targets := make([]*domain.AgentTarget, 0, len(records))
	for _, record := range records {
		targets = append(targets, &domain.AgentTarget{
			Host: strings.TrimSuffix(record.Target, "."),
			Port: int(record.Port),
		})
	}
	return targets, nil
}

func NewEndpointSliceDiscoverer(cfg config.DiscoveryConfig, k8sAdapter domain.K8SAdapter) *EndpointSliceDiscoverer {
	return &EndpointSliceDiscoverer{
		K8SAdapter: k8sAdapter,
		Options: domain.QueryAgentEndpointsOptions{
			K8SNamespace: cfg.Namespace,
			ServiceName:  cfg.Service,
			PortName:     cfg.PortName,
		},
	}
}

// EndpointSliceDiscoverer reads the ready endpoints of the agent service from the API server.
type EndpointSliceDiscoverer struct {
	K8SAdapter domain.K8SAdapter
	Options    domain.QueryAgentEndpointsOptions
}

func (d *EndpointSliceDiscoverer) Discover(ctx context.Context) ([]*domain.AgentTarget, error) {
	if d.K8SAdapter == nil {
		return nil, errs.NewClusterUnavailableError(domain.ErrNoClient)
	}
	opt := d.Options
	return d.K8SAdapter.ListAgentEndpoints(ctx, &opt)
}

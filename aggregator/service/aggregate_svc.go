package service

import (
	"context"
	"net/netip"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Aggregate builds the identity index and discovers agents in parallel,
// collects every agent snapshot and merges them into one topology.
func (svc *Service) Aggregate(ctx context.Context) (*domain.AggregatedTopology, error) {
	var (
		index   *domain.IdentityIndex
		targets []*domain.AgentTarget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		index, err = svc.BuildIdentityIndex(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		targets, err = svc.DiscoverAgents(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch, err := svc.CollectSnapshots(ctx, targets)
	if err != nil {
		return nil, err
	}

	topology := MergeSnapshots(ctx, batch.Snapshots, index)
	if len(batch.FailedAgents) > 0 {
		topology.Partial = true
		topology.FailedAgents = batch.FailedAgents
	}
	logger.Logger(ctx).Info().Msgf("aggregated %d connections from %d agents", len(topology.Connections), len(batch.Snapshots))
	return topology, nil
}

// MergeSnapshots enriches every connection with cluster identity.
// Reverse DNS entries from all snapshots are merged first, keyed by the
// canonical address form; a later snapshot overwrites an earlier one for the
// same address. Connections whose local
// side cannot be attributed to a known container are dropped.
func MergeSnapshots(ctx context.Context, snapshots []*domain.AgentSnapshot, index *domain.IdentityIndex) *domain.AggregatedTopology {
	if index == nil {
		index = domain.NewIdentityIndex()
	}
	reverse := make(map[string]string)
	for _, snapshot := range snapshots {
		if snapshot != nil {
			mergeReverseDNS(reverse, snapshot.ReverseDNS)
		}
	}

	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{},
		Listening:   []domain.RawListening{},
	}
	misses := 0
	for _, snapshot := range snapshots {
		if snapshot == nil {
			continue
		}
		for _, raw := range snapshot.Connections {
			if raw.ContainerID == nil {
				continue
			}
			container, ok := index.ByContainerID[*raw.ContainerID]
			if !ok {
				misses++
				logger.Logger(ctx).Debug().Str("container_id", *raw.ContainerID).Msg("connection from unknown container")
				continue
			}
			topology.Connections = append(topology.Connections, &domain.EnrichedConnection{
				Protocol: raw.Protocol,
				State:    raw.State,
				Local:    domain.NewWorkloadEndpoint(container.Workload, netip.Addr{}, raw.LocalPort),
				Remote:   resolveRemote(raw, reverse, index),
			})
		}
		topology.Listening = append(topology.Listening, snapshot.Listening...)
	}
	if misses > 0 {
		logger.Logger(ctx).Debug().Msgf("dropped %d connections with unresolved container IDs", misses)
	}
	return topology
}

func resolveRemote(raw domain.RawConnection, reverse map[string]string, index *domain.IdentityIndex) domain.Endpoint {
	if identity, ok := index.ByIP[raw.RemoteAddr]; ok {
		return domain.NewWorkloadEndpoint(identity, raw.RemoteAddr, raw.RemotePort)
	}
	return &domain.ExternalEndpoint{
		Addr:     raw.RemoteAddr,
		Port:     raw.RemotePort,
		Hostname: reverse[raw.RemoteAddr.String()],
	}
}

// mergeReverseDNS copies src into dst under canonical address keys, so that
// "::ffff:1.2.3.4" and "2001:DB8::1" meet the unmapped, lower-case addresses
// decoded from connections. Keys that are not addresses are copied as is.
// Within one snapshot a key already in canonical form wins over its aliases.
func mergeReverseDNS(dst, src map[string]string) {
	for key, hostname := range src {
		addr, err := netip.ParseAddr(key)
		if err != nil {
			dst[key] = hostname
			continue
		}
		canonical := addr.Unmap().String()
		if canonical != key {
			if _, ok := src[canonical]; ok {
				continue
			}
		}
		dst[canonical] = hostname
	}
}

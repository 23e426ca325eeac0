package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// DiscoverAgents resolves the netstat agents to query.
func (svc *Service) DiscoverAgents(ctx context.Context) ([]*domain.AgentTarget, error) {
	defer svc.metrics.ObserveStage(StageResolveTargets, time.Now())

	targets, err := svc.Discoverer.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: discover agents: %w", domain.ErrUpstreamUnavailable, err)
	}
	logger.Logger(ctx).Debug().Msgf("discovered %d netstat agents", len(targets))
	return targets, nil
}

// CollectSnapshots fetches every target concurrently. The first failure
// cancels the remaining fetches and fails the whole collection, unless
// partial results are allowed, in which case failed agents are reported
// in the batch instead.
func (svc *Service) CollectSnapshots(ctx context.Context, targets []*domain.AgentTarget) (*domain.SnapshotBatch, error) {
	defer svc.metrics.ObserveStage(StageFetchExports, time.Now())

	allowPartial := svc.CollectorConfig.AllowPartial
	snapshots := make([]*domain.AgentSnapshot, len(targets))
	failures := make([]error, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	if svc.CollectorConfig.MaxConcurrency > 0 {
		g.SetLimit(svc.CollectorConfig.MaxConcurrency)
	}
	for i, target := range targets {
		g.Go(func() error {
			snapshot, err := svc.AgentAdapter.FetchSnapshot(gctx, target)
			if err != nil {
				if allowPartial {
					failures[i] = err
					return nil
				}
				return fmt.Errorf("%w: agent %s: %w", domain.ErrUpstreamUnavailable, target, err)
			}
			snapshots[i] = snapshot
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &domain.SnapshotBatch{
		Snapshots: make([]*domain.AgentSnapshot, 0, len(targets)),
	}
	for i, target := range targets {
		if failures[i] != nil {
			logger.Logger(ctx).Warn().Err(failures[i]).Msgf("skipping agent %s", target)
			batch.FailedAgents = append(batch.FailedAgents, target.String())
			continue
		}
		batch.Snapshots = append(batch.Snapshots, snapshots[i])
	}
	return batch, nil
}

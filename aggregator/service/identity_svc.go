package service

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/aggregator/errs"
	"github.com/Gthulhu/topology/pkg/logger"
)

// BuildIdentityIndex lists every pod in the cluster and indexes it by IP and container ID.
func (svc *Service) BuildIdentityIndex(ctx context.Context) (*domain.IdentityIndex, error) {
	if svc.K8SAdapter == nil {
		return nil, errs.NewClusterUnavailableError(domain.ErrNoClient)
	}
	defer svc.metrics.ObserveStage(StageKubeAPIGetPods, time.Now())

	pods, err := svc.K8SAdapter.ListPods(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list pods: %w", domain.ErrUpstreamUnavailable, err)
	}
	index := NewIdentityIndexFromPods(pods)
	logger.Logger(ctx).Debug().Msgf("indexed %d pod IPs and %d containers from %d pods", len(index.ByIP), len(index.ByContainerID), len(pods))
	return index, nil
}

func NewIdentityIndexFromPods(pods []*domain.Pod) *domain.IdentityIndex {
	index := domain.NewIdentityIndex()
	for _, pod := range pods {
		if pod == nil {
			continue
		}
		identity := pod.Identity()
		if pod.IP != "" {
			if addr, err := netip.ParseAddr(pod.IP); err == nil {
				index.ByIP[addr.Unmap()] = identity
			}
		}
		for _, container := range pod.Containers {
			if container.ContainerID == "" {
				continue
			}
			index.ByContainerID[container.ContainerID] = domain.ContainerIdentity{
				Workload:      identity,
				ContainerName: container.Name,
			}
		}
	}
	return index
}

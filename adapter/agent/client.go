// Package agent is the HTTP client for the per-node netstat agents.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/config"
	"github.com/Gthulhu/topology/pkg/logger"
	"github.com/pkg/errors"
)

const exportPath = "/export"

// maxSnapshotSize bounds a single agent response body.
const maxSnapshotSize = 64 << 20

func NewAgentClient(cfg config.CollectorConfig) *AgentClient {
	return &AgentClient{
		Client:  http.DefaultClient,
		timeout: cfg.Timeout,
	}
}

type AgentClient struct {
	*http.Client

	timeout time.Duration
}

// FetchSnapshot downloads and decodes GET http://<target>/export.
func (c *AgentClient) FetchSnapshot(ctx context.Context, target *domain.AgentTarget) (*domain.AgentSnapshot, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := "http://" + target.String() + exportPath
	logger.Logger(ctx).Debug().Msgf("making HTTP request to %s", endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: agent %s: %w", domain.ErrUpstreamUnavailable, target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: agent %s returned non-OK status: %s", domain.ErrUpstreamUnavailable, target, resp.Status)
	}

	snapshot := &domain.AgentSnapshot{}
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxSnapshotSize))
	if err := decoder.Decode(snapshot); err != nil {
		if errors.Is(err, domain.ErrMalformedSnapshot) {
			return nil, errors.WithMessagef(err, "agent %s", target)
		}
		return nil, fmt.Errorf("%w: agent %s: %v", domain.ErrMalformedSnapshot, target, err)
	}
	return snapshot, nil
}

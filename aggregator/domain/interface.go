package domain

import "context"

type QueryAgentEndpointsOptions struct {
	K8SNamespace string
	ServiceName  string
	PortName     string
}

type K8SAdapter interface {
	ListPods(ctx context.Context) ([]*Pod, error)
	ListAgentEndpoints(ctx context.Context, opt *QueryAgentEndpointsOptions) ([]*AgentTarget, error)
}

// AgentDiscoverer resolves the netstat agents currently running in the cluster.
type AgentDiscoverer interface {
	Discover(ctx context.Context) ([]*AgentTarget, error)
}

// AgentAdapter fetches the export snapshot of a single agent.
type AgentAdapter interface {
	FetchSnapshot(ctx context.Context, target *AgentTarget) (*AgentSnapshot, error)
}

type Renderer interface {
	Render(ctx context.Context, graph *Graph, format RenderFormat) ([]byte, error)
}

type Service interface {
	BuildIdentityIndex(ctx context.Context) (*IdentityIndex, error)
	DiscoverAgents(ctx context.Context) ([]*AgentTarget, error)
	CollectSnapshots(ctx context.Context, targets []*AgentTarget) (*SnapshotBatch, error)
	Aggregate(ctx context.Context) (*AggregatedTopology, error)
	BuildGraph(ctx context.Context, opt *GraphOptions) (*Graph, error)
	RenderDiagram(ctx context.Context, opt *GraphOptions, format RenderFormat) ([]byte, error)
}

package graph

import (
	"net/netip"
	"testing"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceCIDR = netip.MustParsePrefix("10.96.0.0/12")

func workload(ns, pod, owner string, addr string, port int) *domain.WorkloadEndpoint {
	identity := domain.WorkloadIdentity{Namespace: ns, PodName: pod}
	if owner != "" {
		identity.Owner = &domain.OwnerReference{Kind: "Deployment", Name: owner}
	}
	var ip netip.Addr
	if addr != "" {
		ip = netip.MustParseAddr(addr)
	}
	return domain.NewWorkloadEndpoint(identity, ip, port)
}

func external(addr, hostname string, port int) *domain.ExternalEndpoint {
	return &domain.ExternalEndpoint{Addr: netip.MustParseAddr(addr), Port: port, Hostname: hostname}
}

func conn(local *domain.WorkloadEndpoint, remote domain.Endpoint) *domain.EnrichedConnection {
	return &domain.EnrichedConnection{Protocol: "tcp", State: "ESTABLISHED", Local: local, Remote: remote}
}

func noFilter() domain.GraphFilter {
	return domain.NewGraphFilter(nil, nil, nil, serviceCIDR)
}

func TestBuildWorkloadToWorkload(t *testing.T) {
	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{
			conn(workload("web", "web-1", "web", "", 80), workload("db", "db-1", "db", "10.0.0.5", 443)),
		},
	}

	g := Build(topology, noFilter())
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, domain.CanonicalNode{Label: "web/web", Category: domain.NodeCategoryWorkload, Color: domain.ColorWorkload}, g.Nodes[0])
	assert.Equal(t, domain.CanonicalNode{Label: "db/db", Category: domain.NodeCategoryWorkload, Color: domain.ColorWorkload}, g.Nodes[1])
	require.Len(t, g.Edges, 1)
	assert.Equal(t, domain.CanonicalEdge{NodeA: "web/web", NodeB: "db/db", Weight: 1}, g.Edges[0])
}

func TestBuildCollapsesBothDirections(t *testing.T) {
	a := workload("shop", "cart-1", "cart", "10.1.0.1", 8080)
	b := workload("shop", "orders-1", "orders", "10.1.0.2", 9090)
	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{
			conn(a, b),
			conn(b, a),
			conn(a, b),
		},
	}

	g := Build(topology, noFilter())
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "shop/orders", g.Edges[0].NodeA)
	assert.Equal(t, "shop/cart", g.Edges[0].NodeB)
	assert.Equal(t, 3, g.Edges[0].Weight)
}

func TestBuildDropsSelfLoopsAfterCollapsing(t *testing.T) {
	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{
			conn(workload("web", "web-1", "web", "", 80), workload("web", "web-2", "web", "10.1.0.3", 80)),
			conn(workload("web", "web-1", "web", "", 80), external("3.3.3.3", "a.example.com", 443)),
		},
	}
	filter := domain.NewGraphFilter(nil, nil, []string{"*.example.com"}, serviceCIDR)
	topology.Connections = append(topology.Connections,
		conn(workload("web", "web-1", "web", "", 80), external("4.4.4.4", "b.example.com", 443)))

	g := Build(topology, filter)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, domain.CanonicalEdge{NodeA: "web/web", NodeB: "*.example.com", Weight: 2}, g.Edges[0])
	for _, n := range g.Nodes {
		assert.NotEqual(t, "web/web-2", n.Label)
	}
}

func TestBuildDropsServiceCIDR(t *testing.T) {
	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{
			conn(workload("web", "web-1", "web", "", 80), external("10.96.0.1", "", 443)),
			conn(workload("web", "web-1", "web", "", 80), external("10.111.255.254", "", 443)),
			conn(workload("web", "web-1", "web", "", 80), external("10.112.0.1", "", 443)),
		},
	}

	g := Build(topology, noFilter())
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "10.112.0.1", g.Edges[0].NodeB)
	assert.Equal(t, domain.NodeCategoryExternalRaw, g.Nodes[1].Category)
	assert.Equal(t, domain.ColorExternalRaw, g.Nodes[1].Color)
}

func TestBuildExclusionBeatsInclusion(t *testing.T) {
	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{
			conn(workload("app", "api-1", "api", "", 80), workload("kube-system", "coredns-1", "coredns", "10.1.0.10", 53)),
		},
	}
	filter := domain.NewGraphFilter([]string{"kube-system"}, []string{"app", "kube-system"}, nil, serviceCIDR)

	g := Build(topology, filter)
	assert.Empty(t, g.Edges)
	assert.Empty(t, g.Nodes)
}

func TestBuildIncludeNamespaces(t *testing.T) {
	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{
			conn(workload("app", "api-1", "api", "", 80), external("8.8.8.8", "dns.google", 53)),
			conn(workload("other", "worker-1", "worker", "", 80), external("8.8.8.8", "dns.google", 53)),
			conn(workload("other", "worker-1", "worker", "", 80), workload("app", "api-1", "api", "10.1.0.4", 80)),
		},
	}
	filter := domain.NewGraphFilter(nil, []string{"app"}, nil, serviceCIDR)

	g := Build(topology, filter)
	require.Len(t, g.Edges, 2)
	assert.Equal(t, domain.CanonicalEdge{NodeA: "dns.google", NodeB: "app/api", Weight: 1}, g.Edges[0])
	assert.Equal(t, domain.CanonicalEdge{NodeA: "other/worker", NodeB: "app/api", Weight: 1}, g.Edges[1])

	byLabel := map[string]domain.CanonicalNode{}
	for _, n := range g.Nodes {
		byLabel[n.Label] = n
	}
	assert.True(t, byLabel["app/api"].Highlighted)
	assert.Equal(t, domain.ColorWorkloadHighlighted, byLabel["app/api"].Color)
	assert.False(t, byLabel["other/worker"].Highlighted)
	assert.Equal(t, domain.ColorWorkload, byLabel["other/worker"].Color)
	assert.Equal(t, domain.ColorExternalHostname, byLabel["dns.google"].Color)
}

func TestBuildIsDeterministic(t *testing.T) {
	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{
			conn(workload("a", "a-1", "a", "", 1), workload("b", "b-1", "b", "10.1.0.2", 2)),
			conn(workload("b", "b-1", "b", "", 2), workload("c", "c-1", "", "10.1.0.3", 3)),
			conn(workload("c", "c-1", "", "", 3), external("9.9.9.9", "", 53)),
			conn(workload("a", "a-1", "a", "", 1), external("1.1.1.1", "one.one.one.one", 53)),
			conn(workload("b", "b-1", "b", "", 2), workload("a", "a-1", "a", "10.1.0.1", 1)),
		},
	}

	first := Build(topology, noFilter())
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Build(topology, noFilter()))
	}

	seen := map[[2]string]bool{}
	for _, e := range first.Edges {
		assert.Greater(t, e.NodeA, e.NodeB)
		assert.False(t, seen[[2]string{e.NodeB, e.NodeA}], "reverse edge must not exist")
		seen[[2]string{e.NodeA, e.NodeB}] = true
	}
}

func TestBuildFirstSeenNodeWins(t *testing.T) {
	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{
			conn(workload("web", "web-1", "web", "", 80), external("5.5.5.5", "web.example.com", 443)),
			conn(workload("web", "web-1", "web", "", 80), external("5.5.5.5", "", 443)),
		},
	}
	g := Build(topology, noFilter())
	require.Len(t, g.Nodes, 3)
	assert.Equal(t, "web/web", g.Nodes[0].Label)
	assert.Equal(t, "web.example.com", g.Nodes[1].Label)
	assert.Equal(t, "5.5.5.5", g.Nodes[2].Label)
}

func TestBuildNilTopology(t *testing.T) {
	g := Build(nil, noFilter())
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestHumanizeHostnameCollapse(t *testing.T) {
	filter := domain.NewGraphFilter(nil, nil, []string{"*.googleapis.com", "*.amazonaws.com", "*.com"}, serviceCIDR)
	node := Humanize(external("1.2.3.4", "ec2-1-2-3-4.amazonaws.com", 443), filter)
	assert.Equal(t, "*.amazonaws.com", node.Label)
	assert.Equal(t, domain.NodeCategoryExternalHostname, node.Category)

	node = Humanize(external("1.2.3.4", "example.org", 443), filter)
	assert.Equal(t, "example.org", node.Label)
}

func TestHumanizeWorkloadWithoutOwnerUsesPod(t *testing.T) {
	node := Humanize(workload("default", "debug-shell", "", "", 0), noFilter())
	assert.Equal(t, "default/debug-shell", node.Label)
}

func TestValidatePatterns(t *testing.T) {
	require.NoError(t, ValidatePatterns([]string{"*.amazonaws.com", "db-?.internal"}))
	err := ValidatePatterns([]string{"*.ok.com", "[broken"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}

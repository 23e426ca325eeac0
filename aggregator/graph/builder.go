// Package graph reduces an aggregated topology to an undirected, weighted
// graph of canonical node labels.
package graph

import (
	"path"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/pkg/errors"
)

type edgeKey struct {
	a, b string
}

type builder struct {
	filter    domain.GraphFilter
	nodes     []domain.CanonicalNode
	nodeIndex map[string]int
	edges     []domain.CanonicalEdge
	edgeIndex map[edgeKey]int
}

// ValidatePatterns reports the first hostname pattern that is not a valid glob.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if _, err := path.Match(pattern, ""); err != nil {
			return errors.Wrapf(domain.ErrInvalidPattern, "%q", pattern)
		}
	}
	return nil
}

// Build filters the connections of topology and folds them into a graph.
// Nodes and edges are returned in first-seen order, so the output is
// deterministic for a given input.
func Build(topology *domain.AggregatedTopology, filter domain.GraphFilter) *domain.Graph {
	b := &builder{
		filter:    filter,
		nodes:     []domain.CanonicalNode{},
		nodeIndex: make(map[string]int),
		edges:     []domain.CanonicalEdge{},
		edgeIndex: make(map[edgeKey]int),
	}
	if topology != nil {
		for _, conn := range topology.Connections {
			b.add(conn)
		}
	}
	return &domain.Graph{
		Nodes: b.nodes,
		Edges: b.edges,
	}
}

func (b *builder) add(conn *domain.EnrichedConnection) {
	if conn == nil || conn.Local == nil || conn.Remote == nil {
		return
	}
	if !b.admit(conn) {
		return
	}

	local := Humanize(conn.Local, b.filter)
	remote := Humanize(conn.Remote, b.filter)
	if local.Label == remote.Label {
		return
	}
	b.addNode(local)
	b.addNode(remote)

	key := edgeKey{a: local.Label, b: remote.Label}
	if key.a < key.b {
		key.a, key.b = key.b, key.a
	}
	if i, ok := b.edgeIndex[key]; ok {
		b.edges[i].Weight++
		return
	}
	b.edgeIndex[key] = len(b.edges)
	b.edges = append(b.edges, domain.CanonicalEdge{NodeA: key.a, NodeB: key.b, Weight: 1})
}

// admit applies the service CIDR and namespace rules. Exclusion takes
// precedence over inclusion.
func (b *builder) admit(conn *domain.EnrichedConnection) bool {
	addr := conn.Remote.Address()
	if addr.IsValid() && b.filter.ServiceCIDR.IsValid() && b.filter.ServiceCIDR.Contains(addr) {
		return false
	}

	endpoints := []domain.Endpoint{conn.Local, conn.Remote}
	for _, ep := range endpoints {
		if ns, ok := ep.ClusterNamespace(); ok && b.filter.Excluded(ns) {
			return false
		}
	}

	if len(b.filter.IncludeNamespaces) == 0 {
		return true
	}
	for _, ep := range endpoints {
		if ns, ok := ep.ClusterNamespace(); ok && b.filter.Included(ns) {
			return true
		}
	}
	return false
}

func (b *builder) addNode(node domain.CanonicalNode) {
	if _, ok := b.nodeIndex[node.Label]; ok {
		return
	}
	b.nodeIndex[node.Label] = len(b.nodes)
	b.nodes = append(b.nodes, node)
}

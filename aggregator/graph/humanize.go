package graph

import (
	"path"

	"github.com/Gthulhu/topology/aggregator/domain"
)

// Humanize returns the canonical node for an endpoint.
//
//	workload          -> "<namespace>/<owner name or pod name>"
//	external hostname -> first matching collapse pattern, else the hostname
//	external address  -> the address itself
func Humanize(ep domain.Endpoint, filter domain.GraphFilter) domain.CanonicalNode {
	switch e := ep.(type) {
	case *domain.WorkloadEndpoint:
		name := e.Pod
		if e.Owner != nil && e.Owner.Name != "" {
			name = e.Owner.Name
		}
		node := domain.CanonicalNode{
			Label:    e.Namespace + "/" + name,
			Category: domain.NodeCategoryWorkload,
			Color:    domain.ColorWorkload,
		}
		if filter.Included(e.Namespace) {
			node.Highlighted = true
			node.Color = domain.ColorWorkloadHighlighted
		}
		return node
	case *domain.ExternalEndpoint:
		if e.Hostname != "" {
			return domain.CanonicalNode{
				Label:    CollapseHostname(e.Hostname, filter.CollapseHostnamePatterns),
				Category: domain.NodeCategoryExternalHostname,
				Color:    domain.ColorExternalHostname,
			}
		}
		return domain.CanonicalNode{
			Label:    e.Addr.String(),
			Category: domain.NodeCategoryExternalRaw,
			Color:    domain.ColorExternalRaw,
		}
	}
	return domain.CanonicalNode{
		Label:    ep.Address().String(),
		Category: domain.NodeCategoryExternalRaw,
		Color:    domain.ColorExternalRaw,
	}
}

// CollapseHostname replaces hostname with the first pattern that matches it.
func CollapseHostname(hostname string, patterns []string) string {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, hostname); ok {
			return pattern
		}
	}
	return hostname
}

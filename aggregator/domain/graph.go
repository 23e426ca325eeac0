package domain

import "net/netip"

type NodeCategory string

const (
	NodeCategoryWorkload         NodeCategory = "workload"
	NodeCategoryExternalHostname NodeCategory = "external-hostname"
	NodeCategoryExternalRaw      NodeCategory = "external-raw"
)

const (
	ColorWorkload            = "#2acaea"
	ColorWorkloadHighlighted = "#00ff7f"
	ColorExternalHostname    = "#ffff66"
	ColorExternalRaw         = "#ff4040"
)

// CanonicalNode is a graph node after label collapsing.
type CanonicalNode struct {
	Label       string       `json:"label"`
	Category    NodeCategory `json:"category"`
	Highlighted bool         `json:"highlighted,omitempty"`
	Color       string       `json:"color"`
}

// CanonicalEdge is an undirected edge; NodeA sorts after NodeB.
type CanonicalEdge struct {
	NodeA  string `json:"nodeA"`
	NodeB  string `json:"nodeB"`
	Weight int    `json:"weight"`
}

type Graph struct {
	Nodes []CanonicalNode `json:"nodes"`
	Edges []CanonicalEdge `json:"edges"`
}

// GraphOptions are the per-request filter inputs. A nil ExcludeNamespaces
// selects the configured default exclusions.
type GraphOptions struct {
	ExcludeNamespaces []string
	IncludeNamespaces []string
	CollapseHostnames []string
}

// GraphFilter is the resolved filter policy applied by the graph builder.
type GraphFilter struct {
	ExcludeNamespaces        map[string]struct{}
	IncludeNamespaces        map[string]struct{}
	CollapseHostnamePatterns []string
	ServiceCIDR              netip.Prefix
}

func NewGraphFilter(exclude, include, collapse []string, serviceCIDR netip.Prefix) GraphFilter {
	return GraphFilter{
		ExcludeNamespaces:        toSet(exclude),
		IncludeNamespaces:        toSet(include),
		CollapseHostnamePatterns: collapse,
		ServiceCIDR:              serviceCIDR,
	}
}

func (f GraphFilter) Excluded(namespace string) bool {
	_, ok := f.ExcludeNamespaces[namespace]
	return ok
}

func (f GraphFilter) Included(namespace string) bool {
	_, ok := f.IncludeNamespaces[namespace]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

type RenderFormat string

const (
	RenderFormatSVG RenderFormat = "svg"
	RenderFormatDOT RenderFormat = "dot"
)

func (f RenderFormat) ContentType() string {
	switch f {
	case RenderFormatDOT:
		return "text/vnd.graphviz"
	default:
		return "image/svg+xml"
	}
}

package domain

import "net/netip"

// Endpoint is one side of an enriched connection: either a *WorkloadEndpoint
// with cluster identity or an *ExternalEndpoint without one.
type Endpoint interface {
	// ClusterNamespace returns the namespace of the endpoint; ok is false when
	// the endpoint has no cluster identity.
	ClusterNamespace() (namespace string, ok bool)
	// Address is the IP the endpoint was observed with. It is invalid for local endpoints.
	Address() netip.Addr
}

type WorkloadEndpoint struct {
	Namespace string          `json:"namespace"`
	Pod       string          `json:"pod"`
	Port      int             `json:"port"`
	Owner     *OwnerReference `json:"owner,omitempty"`

	addr netip.Addr
}

func NewWorkloadEndpoint(identity WorkloadIdentity, addr netip.Addr, port int) *WorkloadEndpoint {
	return &WorkloadEndpoint{
		Namespace: identity.Namespace,
		Pod:       identity.PodName,
		Port:      port,
		Owner:     identity.Owner,
		addr:      addr,
	}
}

func (e *WorkloadEndpoint) ClusterNamespace() (string, bool) {
	return e.Namespace, true
}

func (e *WorkloadEndpoint) Address() netip.Addr {
	return e.addr
}

type ExternalEndpoint struct {
	Addr     netip.Addr `json:"addr"`
	Port     int        `json:"port"`
	Hostname string     `json:"hostname,omitempty"`
}

func (e *ExternalEndpoint) ClusterNamespace() (string, bool) {
	return "", false
}

func (e *ExternalEndpoint) Address() netip.Addr {
	return e.Addr
}

// EnrichedConnection is a connection whose local side resolved to a workload.
type EnrichedConnection struct {
	Protocol string            `json:"proto"`
	State    string            `json:"state"`
	Local    *WorkloadEndpoint `json:"local"`
	Remote   Endpoint          `json:"remote"`
}

// AggregatedTopology is the merged view over all agent snapshots.
// Partial and FailedAgents are only set when partial results are allowed.
type AggregatedTopology struct {
	Connections  []*EnrichedConnection `json:"connections"`
	Listening    []RawListening        `json:"listening"`
	Partial      bool                  `json:"partial,omitempty"`
	FailedAgents []string              `json:"failedAgents,omitempty"`
}

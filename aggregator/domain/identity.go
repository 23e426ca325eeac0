package domain

import "net/netip"

// OwnerReference is the controller that owns a pod, e.g. a ReplicaSet or StatefulSet.
type OwnerReference struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// WorkloadIdentity identifies the pod a process belongs to.
type WorkloadIdentity struct {
	Namespace string
	PodName   string
	Owner     *OwnerReference
}

// ContainerIdentity is a container together with the pod that runs it.
type ContainerIdentity struct {
	Workload      WorkloadIdentity
	ContainerName string
}

// IdentityIndex maps pod IPs and container IDs to workload identity.
// Duplicate keys keep the last value written.
type IdentityIndex struct {
	ByIP          map[netip.Addr]WorkloadIdentity
	ByContainerID map[string]ContainerIdentity
}

func NewIdentityIndex() *IdentityIndex {
	return &IdentityIndex{
		ByIP:          make(map[netip.Addr]WorkloadIdentity),
		ByContainerID: make(map[string]ContainerIdentity),
	}
}

// Pod is the subset of a cluster pod needed to resolve connection endpoints.
type Pod struct {
	Name         string
	K8SNamespace string
	IP           string
	Owners       []OwnerReference
	Containers   []Container
}

// Identity returns the workload identity of the pod. The first owner reference wins.
func (p *Pod) Identity() WorkloadIdentity {
	identity := WorkloadIdentity{
		Namespace: p.K8SNamespace,
		PodName:   p.Name,
	}
	if len(p.Owners) > 0 {
		owner := p.Owners[0]
		identity.Owner = &owner
	}
	return identity
}

type Container struct {
	ContainerID string
	Name        string
}

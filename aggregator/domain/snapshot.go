package domain

import (
	"bytes"
	"encoding/json"
	"net/netip"
	"strconv"

	"github.com/pkg/errors"
)

// AgentTarget is a discovered netstat agent.
type AgentTarget struct {
	Host string
	Port int
}

func (t *AgentTarget) String() string {
	return t.Host + ":" + strconv.Itoa(t.Port)
}

// RawListening is a listening socket record; it is passed through untouched.
type RawListening = json.RawMessage

// RawConnection is one TCP connection as reported by an agent.
// ContainerID is nil when the agent could not attribute the socket to a container.
type RawConnection struct {
	ContainerID *string
	LocalPort   int
	RemoteAddr  netip.Addr
	RemotePort  int
	Protocol    string
	State       string
}

type rawConnectionObject struct {
	ContainerID *string `json:"containerID"`
	LocalPort   *int    `json:"localPort"`
	RemoteAddr  *string `json:"remoteAddr"`
	RemotePort  *int    `json:"remotePort"`
	Protocol    *string `json:"protocol"`
	State       *string `json:"state"`
}

// UnmarshalJSON accepts the tuple wire form and an object form with named fields.
// Every field except the container ID is required.
func (c *RawConnection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return c.unmarshalTuple(data)
	}
	return c.unmarshalObject(data)
}

func (c *RawConnection) unmarshalTuple(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.Wrap(ErrMalformedSnapshot, err.Error())
	}
	if len(fields) != 6 {
		return errors.Wrapf(ErrMalformedSnapshot, "connection has %d fields, want 6", len(fields))
	}
	obj := rawConnectionObject{}
	targets := []any{&obj.ContainerID, &obj.LocalPort, &obj.RemoteAddr, &obj.RemotePort, &obj.Protocol, &obj.State}
	for i, target := range targets {
		if err := json.Unmarshal(fields[i], target); err != nil {
			return errors.Wrapf(ErrMalformedSnapshot, "connection field %d: %v", i, err)
		}
	}
	return c.fromObject(obj)
}

func (c *RawConnection) unmarshalObject(data []byte) error {
	obj := rawConnectionObject{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(ErrMalformedSnapshot, err.Error())
	}
	return c.fromObject(obj)
}

func (c *RawConnection) fromObject(obj rawConnectionObject) error {
	switch {
	case obj.LocalPort == nil:
		return errors.Wrap(ErrMalformedSnapshot, "connection is missing the local port")
	case obj.RemoteAddr == nil:
		return errors.Wrap(ErrMalformedSnapshot, "connection is missing the remote address")
	case obj.RemotePort == nil:
		return errors.Wrap(ErrMalformedSnapshot, "connection is missing the remote port")
	case obj.Protocol == nil:
		return errors.Wrap(ErrMalformedSnapshot, "connection is missing the protocol")
	case obj.State == nil:
		return errors.Wrap(ErrMalformedSnapshot, "connection is missing the state")
	}
	addr, err := netip.ParseAddr(*obj.RemoteAddr)
	if err != nil {
		return errors.Wrapf(ErrMalformedSnapshot, "remote address %q: %v", *obj.RemoteAddr, err)
	}
	if obj.ContainerID != nil && *obj.ContainerID == "" {
		obj.ContainerID = nil
	}
	*c = RawConnection{
		ContainerID: obj.ContainerID,
		LocalPort:   *obj.LocalPort,
		RemoteAddr:  addr.Unmap(),
		RemotePort:  *obj.RemotePort,
		Protocol:    *obj.Protocol,
		State:       *obj.State,
	}
	return nil
}

// AgentSnapshot is the document served by an agent on GET /export.
type AgentSnapshot struct {
	Connections []RawConnection   `json:"connections"`
	Listening   []RawListening    `json:"listening"`
	ReverseDNS  map[string]string `json:"reverse"`
}

// UnmarshalJSON rejects documents without a reverse-DNS map. Missing connection
// or listening lists decode as empty.
func (s *AgentSnapshot) UnmarshalJSON(data []byte) error {
	var wire struct {
		Connections []RawConnection    `json:"connections"`
		Listening   []RawListening     `json:"listening"`
		ReverseDNS  *map[string]string `json:"reverse"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		if errors.Is(err, ErrMalformedSnapshot) {
			return err
		}
		return errors.Wrap(ErrMalformedSnapshot, err.Error())
	}
	if wire.ReverseDNS == nil || *wire.ReverseDNS == nil {
		return errors.Wrap(ErrMalformedSnapshot, "snapshot is missing the reverse map")
	}
	*s = AgentSnapshot{
		Connections: wire.Connections,
		Listening:   wire.Listening,
		ReverseDNS:  *wire.ReverseDNS,
	}
	return nil
}

// SnapshotBatch is the result of one fan-out over all discovered agents.
type SnapshotBatch struct {
	Snapshots    []*AgentSnapshot
	FailedAgents []string
}

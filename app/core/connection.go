package core

import (
	"fmt"
)

type Endpoint struct {
	Node NodeID
	Port PortID
}

// A Connection is directed from Start to End and never changes once stored.
type Connection struct {
	Start, End Endpoint
}

func (c Connection) String() string {
	return fmt.Sprintf("%s/%s -> %s/%s", c.Start.Node, c.Start.Port, c.End.Node, c.End.Port)
}

// ConnectionStore is an append-only list of connections. It does not
// de-duplicate: the same pair of ports may be connected any number of times.
type ConnectionStore struct {
	conns []Connection
}

func NewConnectionStore() *ConnectionStore {
	return &ConnectionStore{}
}

// Append stores c, unless both endpoints are on the same node.
func (s *ConnectionStore) Append(c Connection) error {
	if c.Start.Node == c.End.Node {
		return fmt.Errorf("%w: start and end are both on node %s", ErrInvalidConnection, c.Start.Node)
	}
	s.conns = append(s.conns, c)
	return nil
}

// All returns the stored connections in insertion order.
func (s *ConnectionStore) All() []Connection {
	res := make([]Connection, len(s.conns))
	copy(res, s.conns)
	return res
}

func (s *ConnectionStore) Len() int {
	return len(s.conns)
}

// ResolveEndpoint returns the current world position of e's port.
func ResolveEndpoint(e Endpoint, nodes []*Node) (V2, error) {
	for _, n := range nodes {
		if n.id != e.Node {
			continue
		}
		center, ok := n.PortCenter(e.Port)
		if !ok {
			return V2{}, fmt.Errorf("%w: node %s has no port %s", ErrUnknownEndpoint, e.Node, e.Port)
		}
		return center, nil
	}
	return V2{}, fmt.Errorf("%w: no node %s", ErrUnknownEndpoint, e.Node)
}

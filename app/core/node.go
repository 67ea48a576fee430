package core

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

type NodeID string

type PortID string

func NewNodeID() NodeID {
	return NodeID(uuid.NewString())
}

func NewPortID() PortID {
	return PortID(uuid.NewString())
}

// An Anchor places a port relative to the top-left corner of its node.
type Anchor interface {
	Offset(size V2) V2
}

type AnchorFunc func(size V2) V2

func (f AnchorFunc) Offset(size V2) V2 {
	return f(size)
}

var (
	AnchorCenter       Anchor = AnchorFunc(func(s V2) V2 { return V2{X: s.X / 2, Y: s.Y / 2} })
	AnchorLeftCenter   Anchor = AnchorFunc(func(s V2) V2 { return V2{X: 0, Y: s.Y / 2} })
	AnchorRightCenter  Anchor = AnchorFunc(func(s V2) V2 { return V2{X: s.X, Y: s.Y / 2} })
	AnchorTopCenter    Anchor = AnchorFunc(func(s V2) V2 { return V2{X: s.X / 2, Y: 0} })
	AnchorBottomCenter Anchor = AnchorFunc(func(s V2) V2 { return V2{X: s.X / 2, Y: s.Y} })
)

var namedAnchors = map[string]Anchor{
	"center":        AnchorCenter,
	"left-center":   AnchorLeftCenter,
	"right-center":  AnchorRightCenter,
	"top-center":    AnchorTopCenter,
	"bottom-center": AnchorBottomCenter,
}

// AnchorByName looks up one of the built-in anchors, e.g. "left-center".
func AnchorByName(name string) (Anchor, bool) {
	a, ok := namedAnchors[name]
	return a, ok
}

// DefaultPortRadius matches the size of the circles drawn by the editor.
const DefaultPortRadius = 10

type PortSpec struct {
	Name   string
	Anchor Anchor
	Radius float32
}

type Port struct {
	ID     PortID
	Name   string
	Radius float32

	// World-space center, kept in sync with the owning node's position.
	Center V2

	offset V2
}

type Node struct {
	id    NodeID
	name  string
	pos   V2
	size  V2
	ports []Port
}

// NewNode creates a node at pos with the given ports, in declaration order.
// Every node needs at least one port.
func NewNode(name string, pos, size V2, ports ...PortSpec) (*Node, error) {
	if len(ports) == 0 {
		return nil, fmt.Errorf("node %q: %w", name, ErrNoPorts)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("node %q: size %vx%v: %w", name, size.X, size.Y, ErrInvalidNode)
	}

	n := &Node{
		id:   NewNodeID(),
		name: name,
		size: size,
	}
	for i, spec := range ports {
		if spec.Anchor == nil {
			return nil, fmt.Errorf("node %q port %d: no anchor: %w", name, i, ErrInvalidPort)
		}
		if spec.Radius <= 0 {
			return nil, fmt.Errorf("node %q port %d: radius %v: %w", name, i, spec.Radius, ErrInvalidPort)
		}
		n.ports = append(n.ports, Port{
			ID:     NewPortID(),
			Name:   spec.Name,
			Radius: spec.Radius,
			offset: spec.Anchor.Offset(size),
		})
	}
	n.SetPosition(pos)

	return n, nil
}

func (n *Node) clone() *Node {
	cp := *n
	cp.ports = append([]Port(nil), n.ports...)
	return &cp
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%s)", n.name)
}

func (n *Node) ID() NodeID   { return n.id }
func (n *Node) Name() string { return n.name }
func (n *Node) Pos() V2      { return n.pos }
func (n *Node) Size() V2     { return n.size }

func (n *Node) Rect() rl.Rectangle {
	return rl.Rectangle{X: n.pos.X, Y: n.pos.Y, Width: n.size.X, Height: n.size.Y}
}

// SetPosition moves the node and recomputes every port center before
// returning, so port coordinates never lag the node.
func (n *Node) SetPosition(pos V2) {
	n.pos = pos
	for i := range n.ports {
		p := &n.ports[i]
		p.Center = rl.Vector2Add(pos, p.offset)
	}
}

func (n *Node) Translate(delta V2) {
	n.SetPosition(rl.Vector2Add(n.pos, delta))
}

// Ports returns a copy of the node's ports in declaration order.
func (n *Node) Ports() []Port {
	res := make([]Port, len(n.ports))
	copy(res, n.ports)
	return res
}

func (n *Node) Port(id PortID) (Port, bool) {
	for _, p := range n.ports {
		if p.ID == id {
			return p, true
		}
	}
	return Port{}, false
}

func (n *Node) PortByName(name string) (Port, bool) {
	for _, p := range n.ports {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

func (n *Node) PortCenter(id PortID) (V2, bool) {
	p, ok := n.Port(id)
	return p.Center, ok
}

func (n *Node) PortAt(point V2) (PortID, bool) {
	return HitAnyPort(point, n)
}

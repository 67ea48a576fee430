package core

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type V2 = rl.Vector2

// Segment is a line from Start to End in world space.
type Segment struct {
	Start, End V2
}

// HitPort reports whether point lies within the port's hit radius.
// The boundary is inclusive.
func HitPort(point V2, p Port) bool {
	dx := point.X - p.Center.X
	dy := point.Y - p.Center.Y
	return dx*dx+dy*dy <= p.Radius*p.Radius
}

// HitAnyPort returns the first of n's ports, in declaration order, whose hit
// test passes. When ports overlap, the one declared first wins.
func HitAnyPort(point V2, n *Node) (PortID, bool) {
	for _, p := range n.ports {
		if HitPort(point, p) {
			return p.ID, true
		}
	}
	return "", false
}

// HitAnyNodePort checks nodes in order and returns the first port hit.
func HitAnyNodePort(point V2, nodes []*Node) (Endpoint, bool) {
	for _, n := range nodes {
		if port, ok := HitAnyPort(point, n); ok {
			return Endpoint{Node: n.id, Port: port}, true
		}
	}
	return Endpoint{}, false
}

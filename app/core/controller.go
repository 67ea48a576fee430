package core

import (
	"fmt"

	"github.com/bvisness/portwire/util"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeDraggingNode
	ModeDrawingConnection
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeDraggingNode:
		return "DraggingNode"
	case ModeDrawingConnection:
		return "DrawingConnection"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Pointer is one frame's sample of the primary pointer. It is captured once
// by the host and never re-read during a tick.
type Pointer struct {
	Pos    V2
	HasPos bool

	Down     bool
	Clicked  bool
	Released bool
}

// NodeDrag is the host's widget-level view of a node body: whether the body
// is the active drag target, and how far it was dragged this frame.
type NodeDrag struct {
	Delta  V2
	Active bool
}

type FrameInput struct {
	Pointer Pointer
	Drags   map[NodeID]NodeDrag
}

type PortView struct {
	ID     PortID
	Name   string
	Center V2
	Radius float32
}

type NodeView struct {
	ID    NodeID
	Name  string
	Pos   V2
	Size  V2
	Ports []PortView
}

func (v NodeView) Rect() rl.Rectangle {
	return rl.Rectangle{X: v.Pos.X, Y: v.Pos.Y, Width: v.Size.X, Height: v.Size.Y}
}

// A Wire is a stored connection resolved to world coordinates.
type Wire struct {
	Connection
	Segment
}

// FrameOutput is an immutable snapshot of the diagram after a tick. Nothing in
// it aliases controller state.
type FrameOutput struct {
	Frame uint64
	Mode  Mode
	Down  bool

	Nodes       []NodeView
	Connections []Connection
	Wires       []Wire

	// Preview is set while a connection is being drawn.
	Preview *Segment

	// Connections appended during this tick.
	Committed []Connection

	// The port hit by this tick's click edge, if any.
	ClickedPort *Endpoint
}

type pendingConnection struct {
	start    Endpoint
	startPos V2
}

// Controller turns per-frame pointer input into node movement and new
// connections. It exclusively owns its nodes and connection store.
type Controller struct {
	nodes []*Node
	store *ConnectionStore
	hooks Hooks

	frame uint64
	down  bool

	mode       Mode
	pending    pendingConnection
	dragTarget NodeID
}

type Option func(c *Controller)

func WithHooks(h Hooks) Option {
	return func(c *Controller) {
		c.hooks = h
	}
}

// NewController builds a controller over copies of nodes. Moving the caller's
// nodes afterwards has no effect on the diagram, and the controller never
// moves them.
func NewController(nodes []*Node, opts ...Option) (*Controller, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	nodeIDs := make(map[NodeID]bool)
	portIDs := make(map[PortID]bool)
	for _, n := range nodes {
		if nodeIDs[n.id] {
			return nil, fmt.Errorf("%w: node %s", ErrDuplicateID, n.id)
		}
		nodeIDs[n.id] = true
		for _, p := range n.ports {
			if portIDs[p.ID] {
				return nil, fmt.Errorf("%w: port %s", ErrDuplicateID, p.ID)
			}
			portIDs[p.ID] = true
		}
	}

	c := &Controller{
		nodes: make([]*Node, len(nodes)),
		store: NewConnectionStore(),
	}
	for i, n := range nodes {
		c.nodes[i] = n.clone()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// Pending returns the start of the connection being drawn, if any.
func (c *Controller) Pending() (Endpoint, bool) {
	return c.pending.start, c.mode == ModeDrawingConnection
}

func (c *Controller) DragTarget() (NodeID, bool) {
	return c.dragTarget, c.mode == ModeDraggingNode
}

func (c *Controller) ConnectionCount() int {
	return c.store.Len()
}

// Tick advances the gesture state machine by one frame. The steps run in a
// fixed order: button-down sampling, click edge, drag deltas, release edge.
func (c *Controller) Tick(in FrameInput) FrameOutput {
	c.frame++
	p := in.Pointer

	c.down = p.Down

	var clicked *Endpoint
	if p.Clicked {
		clicked = c.click(p)
	}

	c.drag(p, in.Drags)

	var committed []Connection
	if p.Released {
		if conn, ok := c.release(p); ok {
			committed = append(committed, conn)
		}
	}

	out := c.output(p, committed)
	out.ClickedPort = clicked
	return out
}

// click handles the click edge and returns the port it hit, if any.
func (c *Controller) click(p Pointer) *Endpoint {
	var start Endpoint
	hit := false
	if p.HasPos {
		start, hit = HitAnyNodePort(p.Pos, c.nodes)
	}

	// Any click ends the current gesture. A click on empty space is how a
	// stuck connection gets canceled.
	c.reset(AbortCanceled, p)
	if !hit {
		return nil
	}

	startPos, ok := c.node(start.Node).PortCenter(start.Port)
	util.Assert(ok, "hit port %s is missing from node %s", start.Port, start.Node)
	c.mode = ModeDrawingConnection
	c.pending = pendingConnection{start: start, startPos: startPos}
	emit(c.hooks.OnConnectionStart, GestureEvent{
		Frame: c.frame,
		Node:  start.Node,
		Port:  start.Port,
		Pos:   startPos,
	})
	return &start
}

func (c *Controller) drag(p Pointer, drags map[NodeID]NodeDrag) {
	switch c.mode {
	case ModeIdle:
		if !p.HasPos {
			return
		}
		for _, n := range c.nodes {
			d, ok := drags[n.id]
			if !ok || !d.Active {
				continue
			}
			if _, overPort := n.PortAt(p.Pos); overPort {
				// Ports take priority over body dragging.
				continue
			}

			c.mode = ModeDraggingNode
			c.dragTarget = n.id
			emit(c.hooks.OnDragStart, GestureEvent{
				Frame: c.frame,
				Node:  n.id,
				Pos:   n.pos,
			})
			n.Translate(d.Delta)
			return
		}
	case ModeDraggingNode:
		if n := c.node(c.dragTarget); n != nil {
			n.Translate(drags[n.id].Delta)
		}
	}
}

func (c *Controller) release(p Pointer) (Connection, bool) {
	switch c.mode {
	case ModeDraggingNode:
		c.reset("", p)
	case ModeDrawingConnection:
		start := c.pending.start
		c.mode = ModeIdle
		c.pending = pendingConnection{}

		abort := func(reason AbortReason) (Connection, bool) {
			emit(c.hooks.OnConnectionAbort, GestureEvent{
				Frame:  c.frame,
				Node:   start.Node,
				Port:   start.Port,
				Pos:    p.Pos,
				Reason: reason,
			})
			return Connection{}, false
		}

		if !p.HasPos {
			return abort(AbortNoPointer)
		}
		end, reason := c.releaseTarget(p.Pos, start.Node)
		if reason != "" {
			return abort(reason)
		}

		conn := Connection{Start: start, End: end}
		if err := c.store.Append(conn); err != nil {
			return abort(AbortSameNode)
		}
		emit(c.hooks.OnConnectionCommit, GestureEvent{
			Frame:  c.frame,
			Node:   start.Node,
			Port:   start.Port,
			Pos:    p.Pos,
			Target: &end,
		})
		return conn, true
	}
	return Connection{}, false
}

// releaseTarget finds the first port under pos that belongs to a node other
// than startNode.
func (c *Controller) releaseTarget(pos V2, startNode NodeID) (Endpoint, AbortReason) {
	reason := AbortNoPort
	for _, n := range c.nodes {
		port, ok := n.PortAt(pos)
		if !ok {
			continue
		}
		if n.id == startNode {
			reason = AbortSameNode
			continue
		}
		return Endpoint{Node: n.id, Port: port}, ""
	}
	return Endpoint{}, reason
}

// reset returns to Idle, reporting the end of whatever gesture was active.
func (c *Controller) reset(reason AbortReason, p Pointer) {
	switch c.mode {
	case ModeDraggingNode:
		var pos V2
		if n := c.node(c.dragTarget); n != nil {
			pos = n.pos
		}
		emit(c.hooks.OnDragEnd, GestureEvent{
			Frame: c.frame,
			Node:  c.dragTarget,
			Pos:   pos,
		})
	case ModeDrawingConnection:
		emit(c.hooks.OnConnectionAbort, GestureEvent{
			Frame:  c.frame,
			Node:   c.pending.start.Node,
			Port:   c.pending.start.Port,
			Pos:    p.Pos,
			Reason: reason,
		})
	}

	c.mode = ModeIdle
	c.pending = pendingConnection{}
	c.dragTarget = ""
}

func (c *Controller) node(id NodeID) *Node {
	for _, n := range c.nodes {
		if n.id == id {
			return n
		}
	}
	return nil
}

// View returns a snapshot of the nodes without advancing a frame.
func (c *Controller) View() []NodeView {
	views := make([]NodeView, len(c.nodes))
	for i, n := range c.nodes {
		v := NodeView{
			ID:    n.id,
			Name:  n.name,
			Pos:   n.pos,
			Size:  n.size,
			Ports: make([]PortView, len(n.ports)),
		}
		for j, port := range n.ports {
			v.Ports[j] = PortView{
				ID:     port.ID,
				Name:   port.Name,
				Center: port.Center,
				Radius: port.Radius,
			}
		}
		views[i] = v
	}
	return views
}

func (c *Controller) output(p Pointer, committed []Connection) FrameOutput {
	out := FrameOutput{
		Frame:       c.frame,
		Mode:        c.mode,
		Down:        c.down,
		Nodes:       c.View(),
		Connections: c.store.All(),
		Committed:   committed,
	}

	for _, conn := range out.Connections {
		start, err := ResolveEndpoint(conn.Start, c.nodes)
		if err == nil {
			var end V2
			end, err = ResolveEndpoint(conn.End, c.nodes)
			if err == nil {
				out.Wires = append(out.Wires, Wire{
					Connection: conn,
					Segment:    Segment{Start: start, End: end},
				})
				continue
			}
		}
		if c.hooks.OnResolveError != nil {
			c.hooks.OnResolveError(conn, err)
		}
	}

	if c.mode == ModeDrawingConnection {
		end := c.pending.startPos
		if p.HasPos {
			end = p.Pos
		}
		out.Preview = &Segment{Start: c.pending.startPos, End: end}
	}

	return out
}

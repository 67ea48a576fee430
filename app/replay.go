package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bvisness/portwire/app/core"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

// A ReplayScript is a recorded pointer session, one entry per frame.
type ReplayScript struct {
	Frames []ReplayFrame `yaml:"frames"`
}

// ReplayFrame is one frame of pointer input. Pointer is in screen
// coordinates; At names a port ("box2.center") and puts the pointer on its
// current center. With neither, the pointer stays where it was.
type ReplayFrame struct {
	Pointer   []float32 `yaml:"pointer"`
	At        string    `yaml:"at"`
	Down      bool      `yaml:"down"`
	Clicked   bool      `yaml:"clicked"`
	Released  bool      `yaml:"released"`
	Offscreen bool      `yaml:"offscreen"`
	Repeat    int       `yaml:"repeat"`
}

func LoadReplayScript(path string) (*ReplayScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading replay script: %w", err)
	}
	return ParseReplayScript(data)
}

func ParseReplayScript(data []byte) (*ReplayScript, error) {
	var script ReplayScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parsing replay script: %w", err)
	}
	if len(script.Frames) == 0 {
		return nil, errors.New("replay script has no frames")
	}
	for i, f := range script.Frames {
		if len(f.Pointer) != 0 && len(f.Pointer) != 2 {
			return nil, fmt.Errorf("frame %d: pointer needs two coordinates, got %d", i, len(f.Pointer))
		}
		if len(f.Pointer) != 0 && f.At != "" {
			return nil, fmt.Errorf("frame %d: pointer and at are mutually exclusive", i)
		}
		if f.Clicked && f.Released {
			return nil, fmt.Errorf("frame %d: clicked and released in the same frame", i)
		}
	}
	return &script, nil
}

// scriptInput plays back a script one frame at a time.
type scriptInput struct {
	frame ReplayFrame
	pos   rl.Vector2
}

var _ InputProvider = &scriptInput{}

func (in *scriptInput) IsMouseButtonPressed(button rl.MouseButton) bool {
	return button == rl.MouseLeftButton && in.frame.Clicked
}
func (in *scriptInput) IsMouseButtonReleased(button rl.MouseButton) bool {
	return button == rl.MouseLeftButton && in.frame.Released
}
func (in *scriptInput) IsMouseButtonDown(button rl.MouseButton) bool {
	return button == rl.MouseLeftButton && (in.frame.Down || in.frame.Clicked) && !in.frame.Released
}
func (in *scriptInput) IsCursorOnScreen() bool {
	return !in.frame.Offscreen
}
func (in *scriptInput) GetMousePosition() rl.Vector2 {
	return in.pos
}

func (in *scriptInput) load(f ReplayFrame, e *Editor) error {
	in.frame = f
	switch {
	case len(f.Pointer) == 2:
		in.pos = rl.Vector2{X: f.Pointer[0], Y: f.Pointer[1]}
	case f.At != "":
		_, port, err := ResolvePortRef(f.At, e.Last().Nodes)
		if err != nil {
			return err
		}
		in.pos = e.Camera.WorldToScreen(port.Center)
	}
	return nil
}

// ResolvePortRef finds the port named by ref, written "node.port" or just
// "node" for the node's first port. Names match exactly first; otherwise the
// single best case-insensitive fuzzy match is used.
func ResolvePortRef(ref string, nodes []core.NodeView) (core.NodeView, core.PortView, error) {
	nodeName, portName, hasPort := strings.Cut(ref, ".")

	nodeNames := make([]string, len(nodes))
	for i, n := range nodes {
		nodeNames[i] = n.Name
	}
	ni, err := pickName(nodeName, nodeNames)
	if err != nil {
		return core.NodeView{}, core.PortView{}, fmt.Errorf("node %q: %w", nodeName, err)
	}
	node := nodes[ni]
	if len(node.Ports) == 0 {
		return core.NodeView{}, core.PortView{}, fmt.Errorf("node %q has no ports", node.Name)
	}
	if !hasPort {
		return node, node.Ports[0], nil
	}

	portNames := make([]string, len(node.Ports))
	for i, p := range node.Ports {
		portNames[i] = p.Name
	}
	pi, err := pickName(portName, portNames)
	if err != nil {
		return core.NodeView{}, core.PortView{}, fmt.Errorf("port %q on node %q: %w", portName, node.Name, err)
	}
	return node, node.Ports[pi], nil
}

func pickName(query string, names []string) (int, error) {
	for i, name := range names {
		if name == query {
			return i, nil
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return 0, errors.New("no match")
	}
	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return 0, fmt.Errorf("ambiguous: %q and %q match equally well", ranks[0].Target, ranks[1].Target)
	}
	return ranks[0].OriginalIndex, nil
}

type ReplayReport struct {
	Frames      int                `json:"frames"`
	Mode        string             `json:"mode"`
	Nodes       []ReplayNode       `json:"nodes"`
	Connections []ReplayConnection `json:"connections"`
	Commits     int                `json:"commits"`
	Aborts      map[string]int     `json:"aborts"`
	Drags       int                `json:"drags"`
}

type ReplayNode struct {
	Name string  `json:"name"`
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
}

type ReplayConnection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Replay drives an editor with a script instead of a window and reports the
// final state. hooks are called alongside the report's own counters.
func Replay(s *Settings, script *ReplayScript, hooks core.Hooks) (*ReplayReport, core.FrameOutput, error) {
	report := &ReplayReport{Aborts: make(map[string]int)}
	counters := core.Hooks{
		OnConnectionCommit: func(*core.GestureEvent) { report.Commits++ },
		OnConnectionAbort:  func(e *core.GestureEvent) { report.Aborts[string(e.Reason)]++ },
		OnDragStart:        func(*core.GestureEvent) { report.Drags++ },
	}

	in := &scriptInput{}
	editor, err := NewEditor(s, in, core.ChainHooks(counters, hooks))
	if err != nil {
		return nil, core.FrameOutput{}, err
	}

	for i, f := range script.Frames {
		for range max(f.Repeat, 1) {
			if err := in.load(f, editor); err != nil {
				return nil, core.FrameOutput{}, fmt.Errorf("frame %d: %w", i, err)
			}
			editor.Frame()
			report.Frames++
		}
	}

	out := editor.Last()
	report.Mode = out.Mode.String()

	portNames := make(map[core.PortID]string)
	for _, n := range out.Nodes {
		report.Nodes = append(report.Nodes, ReplayNode{Name: n.Name, X: n.Pos.X, Y: n.Pos.Y})
		for _, p := range n.Ports {
			portNames[p.ID] = n.Name + "." + p.Name
		}
	}
	for _, c := range out.Connections {
		report.Connections = append(report.Connections, ReplayConnection{
			From: portNames[c.Start.Port],
			To:   portNames[c.End.Port],
		})
	}

	return report, out, nil
}

// WriteSVG draws a frame to w in world coordinates.
func WriteSVG(w io.Writer, out core.FrameOutput, s *Settings) error {
	cv := NewSVGCanvas(s.Window.Width, s.Window.Height)
	DrawFrame(cv, out)
	_, err := cv.WriteTo(w)
	return err
}

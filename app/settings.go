package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bvisness/portwire/app/core"
	"github.com/bvisness/portwire/util"
	"gopkg.in/yaml.v3"
)

const DefaultSettingsPath = "portwire.yaml"

type Settings struct {
	Window      WindowSettings `yaml:"window"`
	Camera      CameraSettings `yaml:"camera"`
	DebugPanel  bool           `yaml:"debug_panel"`
	LogLevel    string         `yaml:"log_level"`
	MetricsAddr string         `yaml:"metrics_addr"`
	Nodes       []NodeSettings `yaml:"nodes"`
}

type WindowSettings struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

type CameraSettings struct {
	OffsetX float32 `yaml:"offset_x"`
	OffsetY float32 `yaml:"offset_y"`
	Zoom    float32 `yaml:"zoom"`
}

type NodeSettings struct {
	Name   string         `yaml:"name"`
	X      float32        `yaml:"x"`
	Y      float32        `yaml:"y"`
	Width  float32        `yaml:"width"`
	Height float32        `yaml:"height"`
	Ports  []PortSettings `yaml:"ports"`
}

// PortSettings places a port either with a named anchor ("left-center") or
// with a pair of expressions over the node's width and height ("w", "h/2").
type PortSettings struct {
	Name   string  `yaml:"name"`
	Anchor string  `yaml:"anchor"`
	X      string  `yaml:"x"`
	Y      string  `yaml:"y"`
	Radius float32 `yaml:"radius"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:     800,
			Height:    600,
			Title:     "Connected Boxes",
			TargetFPS: 60,
		},
		Camera:     CameraSettings{Zoom: 1},
		DebugPanel: true,
		LogLevel:   "info",
		Nodes: []NodeSettings{
			defaultNode("box1", 100, 100),
			defaultNode("box2", 400, 100),
		},
	}
}

func defaultNode(name string, x, y float32) NodeSettings {
	return NodeSettings{
		Name:   name,
		X:      x,
		Y:      y,
		Width:  100,
		Height: 100,
		Ports: []PortSettings{{
			Name:   "center",
			Anchor: "center",
			Radius: core.DefaultPortRadius,
		}},
	}
}

// LoadSettings reads the settings file at path. A missing file is not an
// error; the defaults are used instead.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	s.sanitize()

	return s, nil
}

func (s *Settings) sanitize() {
	// Validate basic sanity
	if s.Window.Width < 100 {
		s.Window.Width = 800
	}
	if s.Window.Height < 100 {
		s.Window.Height = 600
	}
	if s.Window.TargetFPS <= 0 {
		s.Window.TargetFPS = 60
	}
	if s.Camera.Zoom == 0 {
		s.Camera.Zoom = 1
	}
	s.Camera.Zoom = util.Clamp(s.Camera.Zoom, 0.1, 5)
	for i := range s.Nodes {
		n := &s.Nodes[i]
		n.Width = max(n.Width, 1)
		n.Height = max(n.Height, 1)
		for j := range n.Ports {
			if n.Ports[j].Radius <= 0 {
				n.Ports[j].Radius = core.DefaultPortRadius
			}
		}
	}
}

// BuildNodes creates the diagram described by the settings.
func (s *Settings) BuildNodes() ([]*core.Node, error) {
	var nodes []*core.Node
	names := make(map[string]bool)
	for _, ns := range s.Nodes {
		if names[ns.Name] {
			return nil, fmt.Errorf("node %q: %w", ns.Name, core.ErrDuplicateID)
		}
		names[ns.Name] = true

		size := core.V2{X: ns.Width, Y: ns.Height}
		var ports []core.PortSpec
		for i, ps := range ns.Ports {
			anchor, err := ps.anchor(size)
			if err != nil {
				return nil, fmt.Errorf("node %q port %d: %w", ns.Name, i, err)
			}
			ports = append(ports, core.PortSpec{
				Name:   ps.Name,
				Anchor: anchor,
				Radius: ps.Radius,
			})
		}

		n, err := core.NewNode(ns.Name, core.V2{X: ns.X, Y: ns.Y}, size, ports...)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (ps PortSettings) anchor(size core.V2) (core.Anchor, error) {
	if ps.X != "" || ps.Y != "" {
		a, err := CompileAnchor(ps.X, ps.Y)
		if err != nil {
			return nil, err
		}
		// Surface evaluation errors now rather than at layout time.
		if _, err := a.Eval(size); err != nil {
			return nil, err
		}
		return a, nil
	}

	name := util.Tern(ps.Anchor == "", "center", ps.Anchor)
	a, ok := core.AnchorByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown anchor %q", name)
	}
	return a, nil
}

package telemetry

import (
	"errors"
	"testing"

	"github.com/bvisness/portwire/app/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newController(t *testing.T, hooks core.Hooks) *core.Controller {
	t.Helper()
	var nodes []*core.Node
	for _, x := range []float32{100, 400} {
		n, err := core.NewNode("box", core.V2{X: x, Y: 100}, core.V2{X: 100, Y: 100},
			core.PortSpec{Name: "center", Anchor: core.AnchorCenter, Radius: core.DefaultPortRadius})
		require.NoError(t, err)
		nodes = append(nodes, n)
	}
	c, err := core.NewController(nodes, core.WithHooks(hooks))
	require.NoError(t, err)
	return c
}

func pointer(x, y float32, clicked, released bool) core.FrameInput {
	return core.FrameInput{Pointer: core.Pointer{
		Pos:      core.V2{X: x, Y: y},
		HasPos:   true,
		Down:     !released,
		Clicked:  clicked,
		Released: released,
	}}
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger("chatty", false)
	assert.Error(t, err)
}

func TestLogHooks(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	c := newController(t, LogHooks(zap.New(obs)))

	c.Tick(pointer(150, 150, true, false))
	c.Tick(pointer(450, 150, false, true))
	c.Tick(pointer(150, 150, true, false))
	c.Tick(pointer(300, 300, false, true))

	assert.Equal(t, 2, logs.FilterMessage("connection started").Len())
	assert.Equal(t, 1, logs.FilterMessage("connection committed").Len())

	aborted := logs.FilterMessage("connection aborted").All()
	require.Len(t, aborted, 1)
	assert.Equal(t, "no_port", aborted[0].ContextMap()["reason"])

	committed := logs.FilterMessage("connection committed").All()[0]
	assert.Equal(t, zapcore.InfoLevel, committed.Level)
	assert.Contains(t, committed.ContextMap(), "target_port")
}

func TestLogHooks_ResolveError(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	hooks := LogHooks(zap.New(obs))
	hooks.OnResolveError(core.Connection{}, errors.New("gone"))

	entries := logs.FilterMessage("cannot draw connection").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "gone", entries[0].ContextMap()["error"])
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := newController(t, m.Hooks())

	// Commit
	c.Tick(pointer(150, 150, true, false))
	c.Tick(pointer(449, 150, false, true))
	// Same node
	c.Tick(pointer(150, 150, true, false))
	c.Tick(pointer(151, 150, false, true))
	// Empty space
	c.Tick(pointer(450, 150, true, false))
	c.Tick(pointer(10, 10, false, true))
	// Drag
	c.Tick(pointer(110, 110, true, false))
	in := pointer(120, 110, false, false)
	in.Drags = map[core.NodeID]core.NodeDrag{c.View()[0].ID: {Delta: core.V2{X: 10}, Active: true}}
	c.Tick(in)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Aborts.WithLabelValues("same_node")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Aborts.WithLabelValues("no_port")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Drags))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ResolveErrors))

	count, err := testutil.GatherAndCount(reg, "portwire_connection_aborts_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

package telemetry

import (
	"fmt"

	"github.com/bvisness/portwire/app/core"
	"go.uber.org/zap"
)

// NewLogger builds a production (JSON) or development (console) logger at
// the given level.
func NewLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	return cfg.Build()
}

func LogHooks(log *zap.Logger) core.Hooks {
	gesture := func(e *core.GestureEvent) []zap.Field {
		fields := []zap.Field{
			zap.Uint64("frame", e.Frame),
			zap.String("node", string(e.Node)),
			zap.Float32("x", e.Pos.X),
			zap.Float32("y", e.Pos.Y),
		}
		if e.Port != "" {
			fields = append(fields, zap.String("port", string(e.Port)))
		}
		return fields
	}

	return core.Hooks{
		OnConnectionStart: func(e *core.GestureEvent) {
			log.Debug("connection started", gesture(e)...)
		},
		OnConnectionCommit: func(e *core.GestureEvent) {
			fields := gesture(e)
			if e.Target != nil {
				fields = append(fields,
					zap.String("target_node", string(e.Target.Node)),
					zap.String("target_port", string(e.Target.Port)),
				)
			}
			log.Info("connection committed", fields...)
		},
		OnConnectionAbort: func(e *core.GestureEvent) {
			log.Debug("connection aborted", append(gesture(e), zap.String("reason", string(e.Reason)))...)
		},
		OnDragStart: func(e *core.GestureEvent) {
			log.Debug("drag started", gesture(e)...)
		},
		OnDragEnd: func(e *core.GestureEvent) {
			log.Debug("drag ended", gesture(e)...)
		},
		OnResolveError: func(c core.Connection, err error) {
			log.Warn("cannot draw connection", zap.Stringer("connection", c), zap.Error(err))
		},
	}
}

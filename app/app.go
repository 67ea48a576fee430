package app

import (
	"fmt"

	"github.com/bvisness/portwire/app/core"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-stack/stack"
	"go.uber.org/zap"
)

type Options struct {
	Settings *Settings
	Hooks    core.Hooks
	Logger   *zap.Logger
}

// Main opens the editor window and runs the frame loop until it is closed.
func Main(opts Options) error {
	s := opts.Settings
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	editor, err := NewEditor(s, RealInputProvider{}, opts.Hooks)
	if err != nil {
		return fmt.Errorf("building diagram: %w", err)
	}

	rl.InitWindow(int32(s.Window.Width), int32(s.Window.Height), s.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(s.Window.TargetFPS))
	rl.SetExitKey(0)

	log.Info("window open",
		zap.Int("width", s.Window.Width),
		zap.Int("height", s.Window.Height),
		zap.Int("nodes", len(s.Nodes)),
	)

	for !rl.WindowShouldClose() {
		guardFrame(log, func() {
			frame(editor, s)
		})
	}
	return nil
}

func frame(e *Editor, s *Settings) {
	out := e.Frame()

	rl.BeginDrawing()
	rl.ClearBackground(Night)

	// World Space
	rl.BeginMode2D(e.Camera.Camera2D)
	DrawFrame(raylibCanvas{}, out)
	rl.EndMode2D()

	// Screen Space
	if s.DebugPanel {
		DrawDebugPanel(raylibCanvas{}, e.Debug.Lines())
	}

	rl.EndDrawing()
}

// guardFrame logs a panicking frame with its stack before letting the panic
// continue.
func guardFrame(log *zap.Logger, f func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("frame panicked",
				zap.Any("panic", r),
				zap.String("stack", fmt.Sprintf("%+v", stack.Trace().TrimRuntime())),
			)
			panic(r)
		}
	}()
	f()
}

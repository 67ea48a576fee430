package app

import (
	"fmt"

	"github.com/bvisness/portwire/app/core"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExprAnchor positions a port with two expressions evaluated against the
// node's size, exposed as w and h.
type ExprAnchor struct {
	x, y *vm.Program
}

var _ core.Anchor = &ExprAnchor{}

func anchorEnv(size core.V2) map[string]any {
	return map[string]any{
		"w": float64(size.X),
		"h": float64(size.Y),
	}
}

func CompileAnchor(xSrc, ySrc string) (*ExprAnchor, error) {
	if xSrc == "" || ySrc == "" {
		return nil, fmt.Errorf("anchor expressions need both x and y (got x=%q y=%q)", xSrc, ySrc)
	}

	x, err := expr.Compile(xSrc, expr.Env(anchorEnv(core.V2{})))
	if err != nil {
		return nil, fmt.Errorf("anchor x: %w", err)
	}
	y, err := expr.Compile(ySrc, expr.Env(anchorEnv(core.V2{})))
	if err != nil {
		return nil, fmt.Errorf("anchor y: %w", err)
	}
	return &ExprAnchor{x: x, y: y}, nil
}

func (a *ExprAnchor) Eval(size core.V2) (core.V2, error) {
	env := anchorEnv(size)
	x, err := runFloat(a.x, env)
	if err != nil {
		return core.V2{}, fmt.Errorf("anchor x: %w", err)
	}
	y, err := runFloat(a.y, env)
	if err != nil {
		return core.V2{}, fmt.Errorf("anchor y: %w", err)
	}
	return core.V2{X: x, Y: y}, nil
}

// Offset implements core.Anchor. BuildNodes calls Eval first, so a failing
// expression never gets this far.
func (a *ExprAnchor) Offset(size core.V2) core.V2 {
	v, _ := a.Eval(size)
	return v
}

func runFloat(p *vm.Program, env map[string]any) (float32, error) {
	out, err := expr.Run(p, env)
	if err != nil {
		return 0, err
	}
	switch v := out.(type) {
	case float64:
		return float32(v), nil
	case int:
		return float32(v), nil
	default:
		return 0, fmt.Errorf("expression returned %T, not a number", out)
	}
}

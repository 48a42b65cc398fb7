package linter

import (
	"github.com/oxc-go/oxc/internal/config"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/logger"
)

// EqEqEq flags "==" and "!=" in favor of "===" and "!==": given
// `"if (a==b) {}"` with eqeqeq:error it produces exactly one diagnostic at
// the "==" span.
type EqEqEq struct{}

func (EqEqEq) Name() string   { return "eqeqeq" }
func (EqEqEq) Plugin() string { return "eslint" }

func (r *EqEqEq) RunOnNode(node any, ctx *Context) {
	expr, ok := node.(js_ast.Expr)
	if !ok {
		return
	}
	bin, ok := expr.Data.(*js_ast.EBinary)
	if !ok {
		return
	}

	var op, strictOp string
	switch bin.Op {
	case js_ast.BinOpLooseEq:
		op, strictOp = "==", "==="
	case js_ast.BinOpLooseNe:
		op, strictOp = "!=", "!=="
	default:
		return
	}

	severity, ok := ctx.effectiveSeverity(r, "eqeqeq")
	if !ok || severity == config.SeverityOff {
		return
	}

	operatorRange := ctx.Source.RangeOfOperatorAfter(logger.Loc{Start: int32(bin.Left.Span.End)}, op)
	ctx.Diagnostic(r, severity, operatorRange,
		"expected '"+strictOp+"' and instead saw '"+op+"'", &Fix{
			Span:        operatorRange,
			Replacement: strictOp,
		})
}

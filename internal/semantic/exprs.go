package semantic

import "github.com/oxc-go/oxc/internal/js_ast"

// buildExpr walks an expression purely for reference resolution: every
// EIdentifier/EPrivateIdentifier it reaches in read position is recorded
// against the current scope. Assignment targets are special-cased through
// buildAssignTarget so a write doesn't get misfiled as an ordinary read.
func (b *Builder) buildExpr(expr js_ast.Expr) {
	switch e := expr.Data.(type) {
	case *js_ast.EArray:
		for _, item := range e.Items {
			b.buildExpr(item)
		}

	case *js_ast.EUnary:
		if e.Op.UnaryAssignTarget() != js_ast.AssignTargetNone {
			b.buildAssignTarget(e.Value, ReferenceFlagRead|ReferenceFlagWrite)
		} else {
			b.buildExpr(e.Value)
		}

	case *js_ast.EBinary:
		target := e.Op.BinaryAssignTarget()
		switch target {
		case js_ast.AssignTargetReplace:
			b.buildAssignTarget(e.Left, ReferenceFlagWrite)
		case js_ast.AssignTargetUpdate:
			b.buildAssignTarget(e.Left, ReferenceFlagRead|ReferenceFlagWrite)
		default:
			b.buildExpr(e.Left)
		}
		b.buildExpr(e.Right)

	case *js_ast.ENew:
		b.buildExpr(e.Target)
		for _, a := range e.Args {
			b.buildExpr(a)
		}

	case *js_ast.ECall:
		b.buildExpr(e.Target)
		for _, a := range e.Args {
			b.buildExpr(a)
		}

	case *js_ast.EDot:
		b.buildExpr(e.Target)

	case *js_ast.EIndex:
		b.buildExpr(e.Target)
		b.buildExpr(e.Index)

	case *js_ast.EArrow:
		b.buildArrow(e)

	case *js_ast.EFunction:
		b.buildFn(&e.Fn)

	case *js_ast.EClass:
		b.buildClass(&e.Class)

	case *js_ast.EIdentifier:
		b.reference(e.Name, expr.Span, ReferenceFlagRead, &e.Ref)

	case *js_ast.EPrivateIdentifier:
		b.reference(e.Name, expr.Span, ReferenceFlagRead, &e.Ref)

	case *js_ast.EObject:
		for i := range e.Properties {
			b.buildProperty(&e.Properties[i])
		}

	case *js_ast.ESpread:
		b.buildExpr(e.Value)

	case *js_ast.ETemplate:
		if e.TagOrNil.Data != nil {
			b.buildExpr(e.TagOrNil)
		}
		for _, part := range e.Parts {
			b.buildExpr(part.Value)
		}

	case *js_ast.EAwait:
		fn := b.currentFn()
		if fn == nil || !fn.isAsync {
			b.reportAwaitDisallowed(expr.Span)
		}
		b.buildExpr(e.Value)

	case *js_ast.EYield:
		fn := b.currentFn()
		if fn == nil || !fn.isGenerator {
			b.reportYieldDisallowed(expr.Span)
		}
		if e.ValueOrNil.Data != nil {
			b.buildExpr(e.ValueOrNil)
		}

	case *js_ast.EIf:
		b.buildExpr(e.Test)
		b.buildExpr(e.Yes)
		b.buildExpr(e.No)

	case *js_ast.ESequence:
		for _, x := range e.Exprs {
			b.buildExpr(x)
		}

	case *js_ast.EChain:
		b.buildExpr(e.Value)

	case *js_ast.EImportCall:
		b.buildExpr(e.Expr)
		if e.OptionsOrNil.Data != nil {
			b.buildExpr(e.OptionsOrNil)
		}

	case *js_ast.ETSAs:
		b.buildExpr(e.Value)

	case *js_ast.ETSSatisfies:
		b.buildExpr(e.Value)

	case *js_ast.ETSNonNull:
		b.buildExpr(e.Value)

	case *js_ast.ETSInstantiation:
		b.buildExpr(e.Value)

	case *js_ast.ETSTypeAssertion:
		b.buildExpr(e.Value)

	case *js_ast.EJSXElement:
		for _, attr := range e.Attributes {
			if attr.ValueOrNil.Data != nil {
				b.buildExpr(attr.ValueOrNil)
			}
			if attr.SpreadOrNil.Data != nil {
				b.buildExpr(attr.SpreadOrNil)
			}
		}
		for _, child := range e.Children {
			b.buildJSXChild(child)
		}

	case *js_ast.EJSXFragment:
		for _, child := range e.Children {
			b.buildJSXChild(child)
		}

	default:
		// EBoolean, ENull, EUndefined, EMissing, EThis, ESuper, ENewTarget,
		// EImportMeta, ENumber, EBigInt, EString, ERegExp carry no sub-expressions
		// or references.
	}
}

func (b *Builder) buildJSXChild(child js_ast.JSXChild) {
	switch c := child.Data.(type) {
	case *js_ast.JSXExprChild:
		if c.ValueOrNil.Data != nil {
			b.buildExpr(c.ValueOrNil)
		}
	case *js_ast.JSXElementChild:
		b.buildExpr(c.Value)
	}
}

func (b *Builder) buildProperty(p *js_ast.Property) {
	if p.ClassStaticBlock != nil {
		id := b.pushScope(ScopeKindClassStaticBlock, 0)
		for i := range p.ClassStaticBlock.Block.Stmts {
			b.buildStmt(p.ClassStaticBlock.Block.Stmts[i])
		}
		b.popScope(id)
		return
	}
	if p.IsComputed {
		b.buildExpr(p.Key)
	}
	if p.ValueOrNil.Data != nil {
		b.buildExpr(p.ValueOrNil)
	}
	if p.InitializerOrNil.Data != nil {
		b.buildExpr(p.InitializerOrNil)
	}
}

// buildAssignTarget walks an assignment/update target, recording writes
// instead of reads for identifiers it reaches directly. Array/object literal
// targets recurse following the same shape the parser's own
// convertExprToBinding uses to recognize a destructuring assignment.
func (b *Builder) buildAssignTarget(expr js_ast.Expr, flags ReferenceFlags) {
	switch e := expr.Data.(type) {
	case *js_ast.EIdentifier:
		b.reference(e.Name, expr.Span, flags, &e.Ref)

	case *js_ast.EDot:
		b.buildExpr(e.Target)

	case *js_ast.EIndex:
		b.buildExpr(e.Target)
		b.buildExpr(e.Index)

	case *js_ast.EArray:
		for _, item := range e.Items {
			b.buildAssignTargetItem(item)
		}

	case *js_ast.EObject:
		for i := range e.Properties {
			p := &e.Properties[i]
			if p.IsComputed {
				b.buildExpr(p.Key)
			}
			value := p.ValueOrNil
			if assign, ok := value.Data.(*js_ast.EBinary); ok && assign.Op == js_ast.BinOpAssign {
				b.buildAssignTarget(assign.Left, ReferenceFlagWrite)
				b.buildExpr(assign.Right)
				continue
			}
			b.buildAssignTargetItem(value)
			if p.InitializerOrNil.Data != nil {
				b.buildExpr(p.InitializerOrNil)
			}
		}

	default:
		b.buildExpr(expr)
	}
}

func (b *Builder) buildAssignTargetItem(item js_ast.Expr) {
	switch e := item.Data.(type) {
	case *js_ast.EMissing:
	case *js_ast.ESpread:
		b.buildAssignTarget(e.Value, ReferenceFlagWrite)
	default:
		if assign, ok := item.Data.(*js_ast.EBinary); ok && assign.Op == js_ast.BinOpAssign {
			b.buildAssignTarget(assign.Left, ReferenceFlagWrite)
			b.buildExpr(assign.Right)
			return
		}
		b.buildAssignTarget(item, ReferenceFlagWrite)
	}
}

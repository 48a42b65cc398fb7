package semantic

import "github.com/oxc-go/oxc/internal/js_ast"

// buildFn builds a function declaration/expression's own scopes: one
// StopsHoisting args scope carrying the parameters and the implicit
// "arguments" binding, and a nested body scope for the statement list.
func (b *Builder) buildFn(fn *js_ast.Fn) {
	argsId := b.pushScope(ScopeKindFunctionArgs, fnFlags(fn.IsAsync, fn.IsGenerator))
	b.fnStack = append(b.fnStack, &fnContext{
		isAsync:     fn.IsAsync,
		isGenerator: fn.IsGenerator,
		inFunction:  true,
		labels:      make(map[string]bool),
	})

	fn.ArgumentsRef = b.declare("arguments", fn.OpenParenSpan, SymbolFlagVar|SymbolFlagParameter)

	// A named function expression's own name is visible only to its own body,
	// unlike a function declaration's name (already declared by the caller in
	// the enclosing scope before buildFn runs).
	if fn.Name != nil && !fn.Name.Ref.IsValid() {
		b.declareNodeRef(fn.Name, SymbolFlagFunction)
	}

	b.buildArgs(fn.Args)

	if fn.Body != nil {
		bodyId := b.pushScope(ScopeKindFunctionBody, 0)
		for i := range fn.Body.Block.Stmts {
			b.buildStmt(fn.Body.Block.Stmts[i])
		}
		b.popScope(bodyId)

		if fn.Name != nil && fn.Name.Ref.IsValid() {
			b.cfgs[fn.Name.Ref] = buildCFG(fn.Body.Block.Stmts)
		}
	}

	b.fnStack = b.fnStack[:len(b.fnStack)-1]
	b.popScope(argsId)
}

// buildArrow builds an arrow function's own args scope. Arrows never get
// their own "arguments" binding or "this" (they capture the enclosing one),
// so only the body differs from buildFn: it may be a single expression
// instead of a block.
func (b *Builder) buildArrow(e *js_ast.EArrow) {
	argsId := b.pushScope(ScopeKindFunctionArgs, fnFlags(e.IsAsync, false)|ScopeFlagArrow)
	b.fnStack = append(b.fnStack, &fnContext{
		isAsync:     e.IsAsync,
		isGenerator: false,
		inFunction:  true,
		labels:      make(map[string]bool),
	})

	b.buildArgs(e.Args)

	if e.PreferExpr {
		b.buildExpr(e.ExprBody)
	} else if e.Body != nil {
		bodyId := b.pushScope(ScopeKindFunctionBody, 0)
		for i := range e.Body.Block.Stmts {
			b.buildStmt(e.Body.Block.Stmts[i])
		}
		b.popScope(bodyId)
	}

	b.fnStack = b.fnStack[:len(b.fnStack)-1]
	b.popScope(argsId)
}

func (b *Builder) buildArgs(args []js_ast.Arg) {
	seen := make(map[string]bool)
	strict := b.isStrict()
	for i := range args {
		arg := &args[i]
		if ident, ok := arg.Binding.Data.(*js_ast.BIdentifier); ok {
			name := b.textOf(arg.Binding.Span)
			if strict && seen[name] {
				b.reportDuplicateStrictParam(name, arg.Binding.Span)
			}
			seen[name] = true
			ident.Ref = b.declare(name, arg.Binding.Span, SymbolFlagParameter)
		} else {
			b.buildBinding(arg.Binding, SymbolFlagParameter)
		}
		if arg.DefaultOrNil.Data != nil {
			b.buildExpr(arg.DefaultOrNil)
		}
	}
}

func fnFlags(isAsync, isGenerator bool) ScopeFlags {
	var f ScopeFlags
	if isAsync {
		f |= ScopeFlagAsync
	}
	if isGenerator {
		f |= ScopeFlagGenerator
	}
	return f
}

// buildClass builds a class declaration/expression: the class's own name is
// visible inside the body (so the class can reference itself recursively),
// followed by one scope for the member list.
func (b *Builder) buildClass(class *js_ast.Class) {
	if class.ExtendsOrNil.Data != nil {
		b.buildExpr(class.ExtendsOrNil)
	}

	nameId := b.pushScope(ScopeKindClassName, 0)
	if class.Name != nil && !class.Name.Ref.IsValid() {
		// Only declare here if the enclosing SClass/EClass case didn't already
		// do so (class expressions name themselves inside their own scope).
		b.declareNodeRef(class.Name, SymbolFlagClass)
	}

	bodyId := b.pushScope(ScopeKindClassBody, ScopeFlagStrict)
	for i := range class.Properties {
		b.buildProperty(&class.Properties[i])
	}
	b.popScope(bodyId)
	b.popScope(nameId)
}

func (b *Builder) buildBinding(binding js_ast.Binding, flags SymbolFlags) {
	switch bd := binding.Data.(type) {
	case *js_ast.BMissing:
		// nothing to declare

	case *js_ast.BIdentifier:
		name := b.textOf(binding.Span)
		bd.Ref = b.declare(name, binding.Span, flags)

	case *js_ast.BArray:
		for i := range bd.Items {
			item := &bd.Items[i]
			if _, ok := item.Binding.Data.(*js_ast.BMissing); ok {
				continue
			}
			b.buildBinding(item.Binding, flags)
			if item.DefaultValueOrNil.Data != nil {
				b.buildExpr(item.DefaultValueOrNil)
			}
		}

	case *js_ast.BObject:
		for i := range bd.Properties {
			prop := &bd.Properties[i]
			if prop.IsComputed {
				b.buildExpr(prop.Key)
			}
			b.buildBinding(prop.Value, flags)
			if prop.DefaultValueOrNil.Data != nil {
				b.buildExpr(prop.DefaultValueOrNil)
			}
		}
	}
}

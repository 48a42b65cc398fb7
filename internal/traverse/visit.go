// Package traverse implements the read-only visitor and the mutating
// traversal context for consumers that walk a parsed program without
// writing their own recursive descent, such as the linter's rule
// dispatcher. The semantic builder does not use it; it has its own walk.
package traverse

import (
	"github.com/oxc-go/oxc/internal/js_ast"
)

// Visitor is visited once per node in source order. Visit is called with the
// node being entered; if it returns a non-nil Visitor, Walk recurses into
// the node's children using the returned Visitor (which need not be v
// itself, mirroring go/ast.Visitor so a visitor can swap behavior per
// subtree). After all children are walked, Visit is called once more with a
// nil node to signal the node's exit.
type Visitor interface {
	Visit(node any) (w Visitor)
}

// Walk traverses node's children in source order, calling v.Visit before
// descending and v.Visit(nil) after. node is one of js_ast.Stmt, js_ast.Expr,
// js_ast.Binding, js_ast.TSType, or one of the composite helper structs
// (js_ast.Property, js_ast.Arg, js_ast.Fn, js_ast.Class, ...) reachable from
// those. A nil or zero-value node (Expr{}, Stmt{}, ... with a nil Data) is a
// no-op, matching the *OrNil convention used throughout js_ast.
func Walk(v Visitor, node any) {
	if v == nil || node == nil {
		return
	}
	if isNilNode(node) {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case js_ast.Stmt:
		walkStmt(v, n)
	case js_ast.Expr:
		walkExpr(v, n)
	case js_ast.Binding:
		walkBinding(v, n)
	case js_ast.TSType:
		walkTSType(v, n)
	case js_ast.Fn:
		walkFn(v, n)
	case js_ast.Class:
		walkClass(v, n)
	case js_ast.Property:
		walkProperty(v, n)
	case js_ast.Arg:
		walkArg(v, n)
	case js_ast.Decl:
		walkDecl(v, n)
	case js_ast.Case:
		walkCase(v, n)
	case *js_ast.Catch:
		walkCatch(v, n)
	case *js_ast.Finally:
		walkFinally(v, n)
	case js_ast.TemplatePart:
		walkTemplatePart(v, n)
	case js_ast.JSXAttribute:
		walkJSXAttribute(v, n)
	case js_ast.JSXChild:
		walkJSXChild(v, n)
	case js_ast.TSSignature:
		walkTSSignature(v, n)
	case js_ast.ArrayBinding:
		walkArrayBindingItem(v, n)
	case js_ast.PropertyBinding:
		walkPropertyBinding(v, n)
	case js_ast.STSEnumValue:
		walkSTSEnumValue(v, n)
	case *js_ast.TSTypeAnnotation:
		walkTSTypeAnnotation(v, n)
	case *js_ast.TSTypeParamDecl:
		walkTSTypeParamDecl(v, n)
	case js_ast.TSTypeParam:
		walkTSTypeParam(v, n)
	case js_ast.TSTupleElement:
		if n.Type.Data != nil {
			Walk(v, n.Type)
		}
	case js_ast.TSTemplateLiteralSpan:
		Walk(v, n.Type)
	}

	v.Visit(nil)
}

// isNilNode reports whether node is one of the wrapper value types above in
// its zero ("absent") state, so that e.g. walking SIf.NoOrNil when there is
// no else branch is a silent no-op rather than visiting an empty node.
func isNilNode(node any) bool {
	switch n := node.(type) {
	case js_ast.Stmt:
		return n.Data == nil
	case js_ast.Expr:
		return n.Data == nil
	case js_ast.Binding:
		return n.Data == nil
	case js_ast.TSType:
		return n.Data == nil
	case *js_ast.Catch:
		return n == nil
	case *js_ast.Finally:
		return n == nil
	case *js_ast.TSTypeAnnotation:
		return n == nil
	case *js_ast.TSTypeParamDecl:
		return n == nil
	}
	return false
}

func walkStmt(v Visitor, s js_ast.Stmt) {
	switch n := s.Data.(type) {
	case *js_ast.SBlock:
		walkStmtList(v, n.Stmts)
	case *js_ast.SComment, *js_ast.SDebugger, *js_ast.SDirective, *js_ast.SEmpty:
		// leaf
	case *js_ast.SExportClause:
		// clause items carry no Expr/Stmt/Binding of their own
	case *js_ast.SExportFrom:
		// clause items carry no Expr/Stmt/Binding of their own
	case *js_ast.SExportDefault:
		Walk(v, n.Value)
	case *js_ast.SExportStar:
		// leaf
	case *js_ast.SExportEquals:
		Walk(v, n.Value)
	case *js_ast.SExpr:
		Walk(v, n.Value)
	case *js_ast.STSEnum:
		for _, val := range n.Values {
			Walk(v, val)
		}
	case *js_ast.STSModule:
		walkStmtList(v, n.Stmts)
	case *js_ast.STSInterface:
		for _, t := range n.Extends {
			Walk(v, t)
		}
		for _, sig := range n.Body {
			Walk(v, sig)
		}
	case *js_ast.STSTypeAlias:
		Walk(v, n.Value)
	case *js_ast.STSImportEquals:
		if n.Target.Data != nil {
			Walk(v, n.Target)
		}
	case *js_ast.SFunction:
		Walk(v, n.Fn)
	case *js_ast.SClass:
		Walk(v, n.Class)
	case *js_ast.SLabel:
		Walk(v, n.Stmt)
	case *js_ast.SIf:
		Walk(v, n.Test)
		Walk(v, n.Yes)
		Walk(v, n.NoOrNil)
	case *js_ast.SFor:
		Walk(v, n.InitOrNil)
		Walk(v, n.TestOrNil)
		Walk(v, n.UpdateOrNil)
		Walk(v, n.Body)
	case *js_ast.SForIn:
		Walk(v, n.Init)
		Walk(v, n.Value)
		Walk(v, n.Body)
	case *js_ast.SForOf:
		Walk(v, n.Init)
		Walk(v, n.Value)
		Walk(v, n.Body)
	case *js_ast.SDoWhile:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *js_ast.SWhile:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *js_ast.SWith:
		Walk(v, n.Value)
		Walk(v, n.Body)
	case *js_ast.STry:
		walkStmtList(v, n.Block.Stmts)
		if n.Catch != nil {
			Walk(v, n.Catch)
		}
		if n.Finally != nil {
			Walk(v, n.Finally)
		}
	case *js_ast.SSwitch:
		Walk(v, n.Test)
		for _, c := range n.Cases {
			Walk(v, c)
		}
	case *js_ast.SImport:
		// clause items carry no Expr/Stmt/Binding of their own
	case *js_ast.SReturn:
		Walk(v, n.ValueOrNil)
	case *js_ast.SThrow:
		Walk(v, n.Value)
	case *js_ast.SLocal:
		for _, d := range n.Decls {
			Walk(v, d)
		}
	case *js_ast.SBreak, *js_ast.SContinue:
		// leaf
	}
}

func walkExpr(v Visitor, e js_ast.Expr) {
	switch n := e.Data.(type) {
	case *js_ast.EArray:
		walkExprList(v, n.Items)
	case *js_ast.EUnary:
		Walk(v, n.Value)
	case *js_ast.EBinary:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *js_ast.EBoolean, *js_ast.ENull, *js_ast.EUndefined, *js_ast.EMissing,
		*js_ast.EThis, *js_ast.ESuper, *js_ast.ENewTarget, *js_ast.EImportMeta,
		*js_ast.EIdentifier, *js_ast.EPrivateIdentifier, *js_ast.ENumber,
		*js_ast.EBigInt, *js_ast.EString, *js_ast.ERegExp:
		// leaf
	case *js_ast.ENew:
		Walk(v, n.Target)
		walkExprList(v, n.Args)
		for _, t := range n.TypeArgs {
			Walk(v, t)
		}
	case *js_ast.ECall:
		Walk(v, n.Target)
		walkExprList(v, n.Args)
		for _, t := range n.TypeArgs {
			Walk(v, t)
		}
	case *js_ast.EDot:
		Walk(v, n.Target)
	case *js_ast.EIndex:
		Walk(v, n.Target)
		Walk(v, n.Index)
	case *js_ast.EArrow:
		for _, a := range n.Args {
			Walk(v, a)
		}
		if n.PreferExpr {
			Walk(v, n.ExprBody)
		} else if n.Body != nil {
			walkStmtList(v, n.Body.Block.Stmts)
		}
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
		if n.TypeParams != nil {
			Walk(v, n.TypeParams)
		}
	case *js_ast.EFunction:
		Walk(v, n.Fn)
	case *js_ast.EClass:
		Walk(v, n.Class)
	case *js_ast.EObject:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *js_ast.ESpread:
		Walk(v, n.Value)
	case *js_ast.ETemplate:
		if n.TagOrNil.Data != nil {
			Walk(v, n.TagOrNil)
		}
		for _, p := range n.Parts {
			Walk(v, p)
		}
		for _, t := range n.TypeArgs {
			Walk(v, t)
		}
	case *js_ast.EAwait:
		Walk(v, n.Value)
	case *js_ast.EYield:
		Walk(v, n.ValueOrNil)
	case *js_ast.EIf:
		Walk(v, n.Test)
		Walk(v, n.Yes)
		Walk(v, n.No)
	case *js_ast.ESequence:
		walkExprList(v, n.Exprs)
	case *js_ast.EChain:
		Walk(v, n.Value)
	case *js_ast.EJSXElement:
		for _, a := range n.Attributes {
			Walk(v, a)
		}
		for _, c := range n.Children {
			Walk(v, c)
		}
	case *js_ast.EJSXFragment:
		for _, c := range n.Children {
			Walk(v, c)
		}
	case *js_ast.EImportCall:
		Walk(v, n.Expr)
		Walk(v, n.OptionsOrNil)
	case *js_ast.ETSAs:
		Walk(v, n.Value)
		Walk(v, n.Type)
	case *js_ast.ETSSatisfies:
		Walk(v, n.Value)
		Walk(v, n.Type)
	case *js_ast.ETSNonNull:
		Walk(v, n.Value)
	case *js_ast.ETSInstantiation:
		Walk(v, n.Value)
		for _, t := range n.TypeArgs {
			Walk(v, t)
		}
	case *js_ast.ETSTypeAssertion:
		Walk(v, n.Type)
		Walk(v, n.Value)
	}
}

func walkBinding(v Visitor, b js_ast.Binding) {
	switch n := b.Data.(type) {
	case *js_ast.BMissing, *js_ast.BIdentifier:
		// leaf
	case *js_ast.BArray:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *js_ast.BObject:
		for _, prop := range n.Properties {
			Walk(v, prop)
		}
	}
}

func walkTSType(v Visitor, t js_ast.TSType) {
	switch n := t.Data.(type) {
	case *js_ast.TSKeyword, *js_ast.TSTypeQuery, *js_ast.TSInferType, *js_ast.TSThisType:
		// leaf (TSTypeQuery/TSInferType carry only name strings, no subtypes)
	case *js_ast.TSTypeReference:
		for _, a := range n.TypeArgs {
			Walk(v, a)
		}
	case *js_ast.TSArrayType:
		Walk(v, n.ElementType)
	case *js_ast.TSTupleType:
		for _, el := range n.Elements {
			Walk(v, el)
		}
	case *js_ast.TSUnionType:
		for _, ty := range n.Types {
			Walk(v, ty)
		}
	case *js_ast.TSIntersectionType:
		for _, ty := range n.Types {
			Walk(v, ty)
		}
	case *js_ast.TSConditionalType:
		Walk(v, n.Check)
		Walk(v, n.Extends)
		Walk(v, n.True)
		Walk(v, n.False)
	case *js_ast.TSMappedType:
		Walk(v, n.Constraint)
		if n.NameType.Data != nil {
			Walk(v, n.NameType)
		}
		Walk(v, n.Value)
	case *js_ast.TSIndexedAccessType:
		Walk(v, n.ObjectType)
		Walk(v, n.IndexType)
	case *js_ast.TSFunctionType:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.ReturnType)
		if n.TypeParams != nil {
			Walk(v, n.TypeParams)
		}
	case *js_ast.TSConstructorType:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.ReturnType)
		if n.TypeParams != nil {
			Walk(v, n.TypeParams)
		}
	case *js_ast.TSTypeLiteral:
		for _, m := range n.Members {
			Walk(v, m)
		}
	case *js_ast.TSLiteralType:
		Walk(v, n.Value)
	case *js_ast.TSTemplateLiteralType:
		for _, s := range n.Spans {
			Walk(v, s)
		}
	case *js_ast.TSTypeOperator:
		Walk(v, n.Type)
	case *js_ast.TSParenthesizedType:
		Walk(v, n.Type)
	case *js_ast.TSRestType:
		Walk(v, n.Type)
	case *js_ast.TSOptionalType:
		Walk(v, n.Type)
	case *js_ast.TSImportType:
		for _, t := range n.TypeArgs {
			Walk(v, t)
		}
	}
}

func walkFn(v Visitor, fn js_ast.Fn) {
	for _, a := range fn.Args {
		Walk(v, a)
	}
	if fn.Body != nil {
		walkStmtList(v, fn.Body.Block.Stmts)
	}
	if fn.ReturnType != nil {
		Walk(v, fn.ReturnType)
	}
	if fn.TypeParams != nil {
		Walk(v, fn.TypeParams)
	}
}

func walkClass(v Visitor, c js_ast.Class) {
	for _, d := range c.TSDecorators {
		Walk(v, d)
	}
	if c.TypeParams != nil {
		Walk(v, c.TypeParams)
	}
	if c.ExtendsOrNil.Data != nil {
		Walk(v, c.ExtendsOrNil)
	}
	for _, t := range c.ExtendsTypeArgs {
		Walk(v, t)
	}
	for _, t := range c.Implements {
		Walk(v, t)
	}
	for _, p := range c.Properties {
		Walk(v, p)
	}
}

func walkProperty(v Visitor, p js_ast.Property) {
	if p.ClassStaticBlock != nil {
		walkStmtList(v, p.ClassStaticBlock.Block.Stmts)
		return
	}
	Walk(v, p.Key)
	if p.ValueOrNil.Data != nil {
		Walk(v, p.ValueOrNil)
	}
	if p.InitializerOrNil.Data != nil {
		Walk(v, p.InitializerOrNil)
	}
	for _, d := range p.TSDecorators {
		Walk(v, d)
	}
}

func walkArg(v Visitor, a js_ast.Arg) {
	Walk(v, a.Binding)
	if a.DefaultOrNil.Data != nil {
		Walk(v, a.DefaultOrNil)
	}
	for _, d := range a.TSDecorators {
		Walk(v, d)
	}
	if a.TSType != nil {
		Walk(v, a.TSType)
	}
}

func walkDecl(v Visitor, d js_ast.Decl) {
	Walk(v, d.Binding)
	if d.ValueOrNil.Data != nil {
		Walk(v, d.ValueOrNil)
	}
	if d.TSType != nil {
		Walk(v, d.TSType)
	}
}

func walkCase(v Visitor, c js_ast.Case) {
	if c.ValueOrNil.Data != nil {
		Walk(v, c.ValueOrNil)
	}
	walkStmtList(v, c.Body)
}

func walkCatch(v Visitor, c *js_ast.Catch) {
	if c.BindingOrNil.Data != nil {
		Walk(v, c.BindingOrNil)
	}
	walkStmtList(v, c.Block.Stmts)
}

func walkFinally(v Visitor, f *js_ast.Finally) {
	walkStmtList(v, f.Block.Stmts)
}

func walkTemplatePart(v Visitor, p js_ast.TemplatePart) {
	Walk(v, p.Value)
}

func walkJSXAttribute(v Visitor, a js_ast.JSXAttribute) {
	if a.SpreadOrNil.Data != nil {
		Walk(v, a.SpreadOrNil)
		return
	}
	if a.ValueOrNil.Data != nil {
		Walk(v, a.ValueOrNil)
	}
}

func walkJSXChild(v Visitor, c js_ast.JSXChild) {
	switch n := c.Data.(type) {
	case *js_ast.JSXText:
		// leaf
	case *js_ast.JSXExprChild:
		if n.ValueOrNil.Data != nil {
			Walk(v, n.ValueOrNil)
		}
	case *js_ast.JSXElementChild:
		Walk(v, n.Value)
	}
}

func walkTSSignature(v Visitor, s js_ast.TSSignature) {
	Walk(v, s.Key)
	if s.Type.Data != nil {
		Walk(v, s.Type)
	}
	for _, p := range s.Params {
		Walk(v, p)
	}
	if s.TypeParams != nil {
		Walk(v, s.TypeParams)
	}
}

func walkArrayBindingItem(v Visitor, item js_ast.ArrayBinding) {
	Walk(v, item.Binding)
	if item.DefaultValueOrNil.Data != nil {
		Walk(v, item.DefaultValueOrNil)
	}
}

func walkPropertyBinding(v Visitor, p js_ast.PropertyBinding) {
	Walk(v, p.Key)
	Walk(v, p.Value)
	if p.DefaultValueOrNil.Data != nil {
		Walk(v, p.DefaultValueOrNil)
	}
}

func walkSTSEnumValue(v Visitor, e js_ast.STSEnumValue) {
	if e.ValueOrNil.Data != nil {
		Walk(v, e.ValueOrNil)
	}
}

func walkTSTypeAnnotation(v Visitor, a *js_ast.TSTypeAnnotation) {
	Walk(v, a.Type)
}

func walkTSTypeParamDecl(v Visitor, d *js_ast.TSTypeParamDecl) {
	for _, p := range d.Params {
		Walk(v, p)
	}
}

func walkTSTypeParam(v Visitor, p js_ast.TSTypeParam) {
	if p.Constraint.Data != nil {
		Walk(v, p.Constraint)
	}
	if p.Default.Data != nil {
		Walk(v, p.Default)
	}
}

func walkStmtList(v Visitor, list []js_ast.Stmt) {
	for _, s := range list {
		Walk(v, s)
	}
}

func walkExprList(v Visitor, list []js_ast.Expr) {
	for _, e := range list {
		Walk(v, e)
	}
}

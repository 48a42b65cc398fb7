package semantic

import "github.com/oxc-go/oxc/internal/js_ast"

// BlockId indexes a CFG's block list. It's local to one function's CFG, so
// it's a plain int rather than one of the file-wide ast.Index32 handles.
type BlockId int

// Block is a straight-line run of statements with explicit successor edges.
// Stmts holds the statements' own js_ast.Stmt values (sharing their Data
// pointers with the AST), so a consumer can read each statement and its span.
type Block struct {
	Stmts      []js_ast.Stmt
	Successors []BlockId
}

// ControlFlowGraph is a simplified, block-level CFG for a single function
// body: enough to support reachability and basic dead-code/unreachable-code
// lint checks, not a precise per-expression graph (no short-circuit
// sub-expression nodes, no exception-edge-per-statement detail inside try
// blocks — the whole try body is one predecessor of the catch block).
type ControlFlowGraph struct {
	Blocks []Block
	Entry  BlockId
	// Exits lists blocks that fall off the end of the function (as opposed
	// to ending in return/throw).
	Exits []BlockId
}

type cfgBuilder struct {
	cfg *ControlFlowGraph
}

func newBlock(cfg *ControlFlowGraph) BlockId {
	id := BlockId(len(cfg.Blocks))
	cfg.Blocks = append(cfg.Blocks, Block{})
	return id
}

func (b *cfgBuilder) link(from, to BlockId) {
	blk := &b.cfg.Blocks[from]
	blk.Successors = append(blk.Successors, to)
}

func (b *cfgBuilder) append(id BlockId, stmt js_ast.Stmt) {
	blk := &b.cfg.Blocks[id]
	blk.Stmts = append(blk.Stmts, stmt)
}

// buildCFG builds a simplified CFG for a function body's statement list.
func buildCFG(stmts []js_ast.Stmt) *ControlFlowGraph {
	cfg := &ControlFlowGraph{}
	b := &cfgBuilder{cfg: cfg}
	cfg.Entry = newBlock(cfg)
	end := b.buildStmts(stmts, cfg.Entry)
	if end >= 0 {
		cfg.Exits = append(cfg.Exits, end)
	}
	return cfg
}

// buildStmts threads stmts through current, returning the block id control
// falls through to after the last statement, or -1 if every path terminates
// (return/throw/break/continue).
func (b *cfgBuilder) buildStmts(stmts []js_ast.Stmt, current BlockId) BlockId {
	for _, stmt := range stmts {
		current = b.buildStmt(stmt, current)
		if current < 0 {
			return -1
		}
	}
	return current
}

func (b *cfgBuilder) buildStmt(stmt js_ast.Stmt, current BlockId) BlockId {
	switch s := stmt.Data.(type) {
	case *js_ast.SReturn, *js_ast.SThrow, *js_ast.SBreak, *js_ast.SContinue:
		b.append(current, stmt)
		return -1

	case *js_ast.SIf:
		b.append(current, stmt)
		yesBlock := newBlock(b.cfg)
		b.link(current, yesBlock)
		yesEnd := b.buildStmt(s.Yes, yesBlock)

		var noEnd BlockId = current
		if s.NoOrNil.Data != nil {
			noBlock := newBlock(b.cfg)
			b.link(current, noBlock)
			noEnd = b.buildStmt(s.NoOrNil, noBlock)
		} else {
			noEnd = -2 // sentinel: fall through to a merge block directly from current
		}

		merge := newBlock(b.cfg)
		if yesEnd >= 0 {
			b.link(yesEnd, merge)
		}
		switch {
		case noEnd == -2:
			b.link(current, merge)
		case noEnd >= 0:
			b.link(noEnd, merge)
		}
		if yesEnd < 0 && noEnd < 0 && noEnd != -2 {
			return -1
		}
		return merge

	case *js_ast.SFor:
		return b.buildLoopBody(stmt, s.Body, current)
	case *js_ast.SForIn:
		return b.buildLoopBody(stmt, s.Body, current)
	case *js_ast.SForOf:
		return b.buildLoopBody(stmt, s.Body, current)
	case *js_ast.SWhile:
		return b.buildLoopBody(stmt, s.Body, current)
	case *js_ast.SDoWhile:
		return b.buildLoopBody(stmt, s.Body, current)

	case *js_ast.SBlock:
		b.append(current, stmt)
		return b.buildStmts(s.Stmts, current)

	case *js_ast.STry:
		b.append(current, stmt)
		bodyEnd := b.buildStmts(s.Block.Stmts, current)
		mergePredecessors := []BlockId{}
		if bodyEnd >= 0 {
			mergePredecessors = append(mergePredecessors, bodyEnd)
		}
		if s.Catch != nil {
			catchBlock := newBlock(b.cfg)
			b.link(current, catchBlock)
			catchEnd := b.buildStmts(s.Catch.Block.Stmts, catchBlock)
			if catchEnd >= 0 {
				mergePredecessors = append(mergePredecessors, catchEnd)
			}
		}
		if len(mergePredecessors) == 0 {
			return -1
		}
		merge := newBlock(b.cfg)
		for _, pred := range mergePredecessors {
			b.link(pred, merge)
		}
		if s.Finally != nil {
			finallyEnd := b.buildStmts(s.Finally.Block.Stmts, merge)
			return finallyEnd
		}
		return merge

	case *js_ast.SSwitch:
		b.append(current, stmt)
		merge := newBlock(b.cfg)
		reachable := false
		for _, c := range s.Cases {
			caseBlock := newBlock(b.cfg)
			b.link(current, caseBlock)
			caseEnd := b.buildStmts(c.Body, caseBlock)
			if caseEnd >= 0 {
				b.link(caseEnd, merge)
				reachable = true
			}
		}
		if !reachable {
			return -1
		}
		return merge

	default:
		b.append(current, stmt)
		return current
	}
}

func (b *cfgBuilder) buildLoopBody(loopStmt, body js_ast.Stmt, current BlockId) BlockId {
	b.append(current, loopStmt)
	header := newBlock(b.cfg)
	b.link(current, header)
	bodyEnd := b.buildStmt(body, header)
	if bodyEnd >= 0 {
		b.link(bodyEnd, header)
	}
	after := newBlock(b.cfg)
	b.link(header, after)
	return after
}

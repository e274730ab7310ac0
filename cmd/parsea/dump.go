package main

import (
	"fmt"

	"github.com/npillmayer/parsea/grammars/script"
)

// node is a syntax tree node, prepared for JSON output.
type node map[string]any

func dumpStmts(stmts []script.Stmt) []node {
	nodes := make([]node, len(stmts))
	for i, s := range stmts {
		nodes[i] = dumpStmt(s)
	}
	return nodes
}

func dumpExprs(exprs []script.Expr) []node {
	nodes := make([]node, len(exprs))
	for i, e := range exprs {
		nodes[i] = dumpExpr(e)
	}
	return nodes
}

func dumpStmt(s script.Stmt) node {
	switch s := s.(type) {
	case script.Let:
		return node{"type": "Let", "name": s.Name, "init": dumpExpr(s.Init)}
	case script.DefFn:
		return node{"type": "DefFn", "name": s.Name, "params": s.Params, "body": dumpExpr(s.Body)}
	case script.Return:
		return node{"type": "Return", "body": dumpExpr(s.Body)}
	case script.While:
		return node{"type": "While", "test": dumpExpr(s.Test), "body": dumpExpr(s.Body)}
	case script.Break:
		return node{"type": "Break"}
	case script.ExprStmt:
		return node{"type": "Expr", "expr": dumpExpr(s.Expr)}
	}
	panic(fmt.Sprintf("unknown statement type %T", s))
}

// dumpExpr returns nil for a nil expression.
func dumpExpr(e script.Expr) node {
	switch e := e.(type) {
	case nil:
		return nil
	case script.Bool:
		return node{"type": "Bool", "value": e.Value}
	case script.Number:
		return node{"type": "Number", "value": e.Value}
	case script.String:
		return node{"type": "String", "value": e.Value}
	case script.Ident:
		return node{"type": "Ident", "name": e.Name}
	case script.Tuple:
		return node{"type": "Tuple", "elements": dumpExprs(e.Elements)}
	case script.Block:
		return node{"type": "Block", "stmts": dumpStmts(e.Stmts), "last": dumpExpr(e.Last)}
	case script.If:
		return node{"type": "If", "test": dumpExpr(e.Test), "then": dumpExpr(e.Then),
			"else": dumpExpr(e.Else)}
	case script.Call:
		return node{"type": "Call", "callee": dumpExpr(e.Callee), "arguments": dumpExprs(e.Arguments)}
	case script.Property:
		return node{"type": "Property", "target": dumpExpr(e.Target), "name": e.Name}
	}
	panic(fmt.Sprintf("unknown expression type %T", e))
}

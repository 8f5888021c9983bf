package ast

import "fmt"

// Children returns the direct child nodes of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Assign:
		return []Node{n.Value}
	case *Binary:
		return []Node{n.Left, n.Right}
	case *Logical:
		return []Node{n.Left, n.Right}
	case *Grouping:
		return []Node{n.Expr}
	case *Literal, *Variable:
		return nil
	case *Unary:
		return []Node{n.Right}
	case *Call:
		children := []Node{n.Callee}
		for _, arg := range n.Args {
			children = append(children, arg)
		}
		return children
	case *Block:
		return stmts(n.Stmts)
	case *Expression:
		return []Node{n.Expr}
	case *If:
		children := []Node{n.Cond, n.Then}
		if els, ok := n.Else.Get(); ok {
			children = append(children, els)
		}
		return children
	case *Print:
		return []Node{n.Expr}
	case *Var:
		if value, ok := n.Init.Get(); ok {
			return []Node{value}
		}
		return nil
	case *While:
		return []Node{n.Cond, n.Body}
	case *Function:
		return stmts(n.Body)
	case *Return:
		if value, ok := n.Value.Get(); ok {
			return []Node{value}
		}
		return nil
	default:
		panic(fmt.Sprintf("ast.Children: unexpected node %T", n))
	}
}

func stmts(ss []Stmt) []Node {
	nodes := make([]Node, len(ss))
	for i, s := range ss {
		nodes[i] = s
	}
	return nodes
}

// Universe returns n and all of its descendants in depth-first pre-order.
func Universe(n Node) []Node {
	nodes := []Node{n}
	for _, child := range Children(n) {
		nodes = append(nodes, Universe(child)...)
	}
	return nodes
}

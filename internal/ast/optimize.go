package ast

// Optimize runs the identity transform on every variant except Root, which
// drops any child whose own Optimize returns nil. The interpreter invokes
// this once before evaluation in Release mode; Debug mode skips it
// entirely. It must never introduce an error — it is a pure AST rewrite.
func Optimize(n Node) Node {
	root, ok := n.(*Root)
	if !ok {
		return n
	}
	kept := make([]Node, 0, len(root.Children))
	for _, child := range root.Children {
		if optimized := optimizeChild(child); optimized != nil {
			kept = append(kept, optimized)
		}
	}
	return &Root{Children: kept}
}

// optimizeChild is the per-node hook. Every variant here is the identity
// transform; none currently elects to drop itself. A future pass (e.g.
// constant-folding `+` on all-literal operands) would live here.
func optimizeChild(n Node) Node {
	return n
}

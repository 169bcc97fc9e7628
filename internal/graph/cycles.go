package graph

// FindCycles returns every strongly connected component with more than
// one node, and every node with a self-loop.
func (g *Graph) FindCycles() [][]string {
	var sccs [][]string
	g.strongComponents(func(scc []string) {
		if g.isCycle(scc) {
			sccs = append(sccs, scc)
		}
	})
	return sccs
}

// Reaches reports whether to is reachable from from along one or more
// edges.
func (g *Graph) Reaches(from, to string) bool {
	seen := make(map[string]bool)
	stack := append([]string(nil), g.edges[from]...)
	for len(stack) > 0 {
		sym := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sym == to {
			return true
		}
		if seen[sym] {
			continue
		}
		seen[sym] = true
		stack = append(stack, g.edges[sym]...)
	}
	return false
}

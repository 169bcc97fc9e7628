// Package graph provides the symbol dependency graph used to find
// assignment-rule cycles and recursive function definitions.
package graph

import "slices"

// Graph is a dependency graph of symbols with forward edges. Nodes keep
// insertion order so results are deterministic.
type Graph struct {
	nodes []string
	index map[string]int
	edges map[string][]string
}

// New returns a graph with no nodes or edges.
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
		edges: make(map[string][]string),
	}
}

// AddNode registers a symbol. Duplicate calls are no-ops.
func (g *Graph) AddNode(sym string) {
	if _, ok := g.index[sym]; ok {
		return
	}
	g.index[sym] = len(g.nodes)
	g.nodes = append(g.nodes, sym)
}

// AddEdge records that "from" depends on "to". Missing nodes are created
// implicitly. Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)

	if slices.Contains(g.edges[from], to) {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

func (g *Graph) isCycle(scc []string) bool {
	return len(scc) > 1 || slices.Contains(g.edges[scc[0]], scc[0])
}

// strongComponents calls emit for every strongly connected component in
// reverse topological order. Each component lists its members in the
// order nodes were added.
func (g *Graph) strongComponents(emit func(scc []string)) {
	var (
		index    int
		stack    []string
		onStack  = make(map[string]bool)
		indices  = make(map[string]int)
		lowlinks = make(map[string]int)
	)

	var strongConnect func(sym string)
	strongConnect = func(sym string) {
		indices[sym] = index
		lowlinks[sym] = index
		index++
		stack = append(stack, sym)
		onStack[sym] = true

		for _, dep := range g.edges[sym] {
			if _, visited := indices[dep]; !visited {
				strongConnect(dep)
				lowlinks[sym] = min(lowlinks[sym], lowlinks[dep])
			} else if onStack[dep] {
				lowlinks[sym] = min(lowlinks[sym], indices[dep])
			}
		}

		if lowlinks[sym] == indices[sym] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == sym {
					break
				}
			}
			slices.SortFunc(scc, func(a, b string) int { return g.index[a] - g.index[b] })
			emit(scc)
		}
	}

	for _, sym := range g.nodes {
		if _, visited := indices[sym]; !visited {
			strongConnect(sym)
		}
	}
}

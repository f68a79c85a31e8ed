package datastructure

// Components holds the strongly connected components of a Topology.
type Components struct {
	topo  *Topology
	sccs  []int // sccs[index(n)] = component id of n
	sizes []int
}

func (c *Components) NumberOfComponents() int {
	return len(c.sizes)
}

// GetSCC returns the component id of n, or -1 when n is outside the grid.
func (c *Components) GetSCC(n Node) int {
	if !c.topo.InBounds(n) {
		return -1
	}
	return c.sccs[c.topo.index(n)]
}

func (c *Components) GetSize(scc int) int {
	return c.sizes[scc]
}

// Connected reports whether v is reachable from u.
func (c *Components) Connected(u, v Node) bool {
	su := c.GetSCC(u)
	return su != -1 && su == c.GetSCC(v)
}

// LargestSize returns the node count of the biggest component.
func (c *Components) LargestSize() int {
	largest := 0
	for _, size := range c.sizes {
		largest = max(largest, size)
	}
	return largest
}

// RunKosaraju finds the strongly connected components of the mesh with kosaraju's
// algorithm. Both passes use an explicit stack so large meshes do not recurse.
func (t *Topology) RunKosaraju() *Components {
	n := len(t.nodes)

	radj := make([][]int, n)
	for u := range t.nodes {
		for _, v := range t.adj[u] {
			radj[t.index(v)] = append(radj[t.index(v)], u)
		}
	}
	fwd := make([][]int, n)
	for u := range t.nodes {
		fwd[u] = make([]int, 0, len(t.adj[u]))
		for _, v := range t.adj[u] {
			fwd[u] = append(fwd[u], t.index(v))
		}
	}

	order := make([]int, 0, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		if !visited[v] {
			dfs(fwd, v, visited, &order)
		}
	}

	// reversed finishing order, reset visited
	visited = make([]bool, n)
	sccs := make([]int, n)
	sizes := make([]int, 0)
	for i := n - 1; i >= 0; i-- {
		v := order[i]
		if visited[v] {
			continue
		}
		component := make([]int, 0)
		dfs(radj, v, visited, &component)
		for _, u := range component {
			sccs[u] = len(sizes)
		}
		sizes = append(sizes, len(component))
	}

	return &Components{topo: t, sccs: sccs, sizes: sizes}
}

// dfs appends every node reachable from s to output in post order.
func dfs(adj [][]int, s int, visited []bool, output *[]int) {
	type frame struct {
		v, next int
	}
	visited[s] = true
	stack := []frame{{v: s}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(adj[top.v]) {
			w := adj[top.v][top.next]
			top.next++
			if !visited[w] {
				visited[w] = true
				stack = append(stack, frame{v: w})
			}
			continue
		}
		*output = append(*output, top.v)
		stack = stack[:len(stack)-1]
	}
}

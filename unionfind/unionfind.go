package unionfind

// UnionFind is a weighted quick-union disjoint-set over the elements 0..n-1,
// stored as flat parent/size arenas rather than per-element nodes.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// New creates a disjoint-set structure with n singleton elements.
func New(n int) *UnionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &UnionFind{parent: parent, size: size, count: n}
}

// Len returns the number of elements in the structure.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the current number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root representative of p, compressing the path as it goes.
func (uf *UnionFind) Find(p int) int {
	root := p
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[p] != root {
		uf.parent[p], p = root, uf.parent[p]
	}
	return root
}

// Connected reports whether p and q are in the same set.
func (uf *UnionFind) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// Union merges the sets containing p and q, attaching the smaller tree under
// the larger one. Merging a set with itself is a no-op.
func (uf *UnionFind) Union(p, q int) {
	rootP, rootQ := uf.Find(p), uf.Find(q)
	if rootP == rootQ {
		return
	}
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--
}

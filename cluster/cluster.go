// Package cluster implements agglomerative single-link clustering under a
// fixed distance threshold.
//
// Single-link clustering with a fixed threshold is exactly the
// connected-components problem on the graph {(i,j) : D[i][j] < threshold};
// pair-enumeration order does not affect the result. This is implemented
// with a union-find (disjoint-set) structure rather than the original's
// HashSet-of-clusters merge loop (original_source/src/utility/clustering.rs),
// because spec.md §9 requires stable indices to survive later mutation —
// DSU gives O(n·α(n)) partitioning without ever reassigning an element's
// identity.
package cluster

import "gonum.org/v1/gonum/mat"

// DistanceMatrix is a symmetric, zero-diagonal pairwise distance matrix.
// Backed by gonum's mat.SymDense for bounds-checked symmetric access,
// matching the matrix usage pattern seen elsewhere in the retrieval pack.
type DistanceMatrix struct {
	*mat.SymDense
}

// NewDistanceMatrix builds a DistanceMatrix of size n from a row-major
// dense slice (only the upper triangle is read; mat.SymDense enforces
// symmetry). n == 0 yields an empty matrix.
func NewDistanceMatrix(n int, data []float64) DistanceMatrix {
	if n == 0 {
		// mat.NewSymDense panics on a zero dimension; the zero SymDense has size 0.
		return DistanceMatrix{&mat.SymDense{}}
	}

	return DistanceMatrix{mat.NewSymDense(n, data)}
}

// Partition returns the clusters of {0,...,n-1} under single-link
// agglomeration at threshold: two indices share a cluster iff they are
// connected in the graph {(i,j) : D[i][j] < threshold}. Each returned
// cluster is sorted ascending; clusters are returned in order of their
// smallest member. An empty matrix yields an empty partition.
func (d DistanceMatrix) Partition(threshold float64) [][]int {
	n := d.Symmetric()
	if n == 0 {
		return nil
	}
	dsu := newDSU(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.At(i, j) < threshold {
				dsu.union(i, j)
			}
		}
	}

	groups := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		root := dsu.find(i)
		groups[root] = append(groups[root], i)
	}

	out := make([][]int, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	sortClusters(out)

	return out
}

func sortClusters(clusters [][]int) {
	for i := 1; i < len(clusters); i++ {
		for j := i; j > 0 && clusters[j-1][0] > clusters[j][0]; j-- {
			clusters[j-1], clusters[j] = clusters[j], clusters[j-1]
		}
	}
}

// dsu is a union-find structure with path compression and union by rank.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

func (d *dsu) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		ra, rb = rb, ra
	case d.rank[ra] == d.rank[rb]:
		d.rank[ra]++
	}
	d.parent[rb] = ra
}

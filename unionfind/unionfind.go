// Package unionfind provides a disjoint-set structure over the integers [0, size).
package unionfind

import (
	"fmt"

	"github.com/uyouii/percolation/common"
)

// UnionFind is the connectivity capability the grid model depends on.
// Unions are permanent: once Connected(p, q) holds it holds forever.
type UnionFind interface {
	Union(p, q int)
	Connected(p, q int) bool
	Find(p int) int
	// Count returns the number of disjoint sets.
	Count() int
}

// Factory builds a UnionFind with size elements.
type Factory func(size int) (UnionFind, error)

// WeightedQuickUnion is union by size with path halving.
// Union, Find and Connected run in amortized near-constant time.
// Not safe for concurrent use.
type WeightedQuickUnion struct {
	parent []int
	size   []int
	count  int
}

func NewWeightedQuickUnion(size int) (*WeightedQuickUnion, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: union-find size must be > 0, got %d", common.ErrorInvalidArgument, size)
	}
	uf := &WeightedQuickUnion{
		parent: make([]int, size),
		size:   make([]int, size),
		count:  size,
	}
	for i := 0; i < size; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf, nil
}

// NewFactory adapts NewWeightedQuickUnion to Factory.
func NewFactory() Factory {
	return func(size int) (UnionFind, error) {
		return NewWeightedQuickUnion(size)
	}
}

func (uf *WeightedQuickUnion) Find(p int) int {
	uf.validate(p)
	for p != uf.parent[p] {
		// point p at its grandparent
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}
	return p
}

func (uf *WeightedQuickUnion) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

func (uf *WeightedQuickUnion) Union(p, q int) {
	rootP := uf.Find(p)
	rootQ := uf.Find(q)
	if rootP == rootQ {
		return
	}
	// attach the smaller tree under the larger root
	if uf.size[rootP] < uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	uf.count--
}

func (uf *WeightedQuickUnion) Count() int {
	return uf.count
}

func (uf *WeightedQuickUnion) Len() int {
	return len(uf.parent)
}

// validate panics on an element outside [0, Len()); callers own index arithmetic.
func (uf *WeightedQuickUnion) validate(p int) {
	if p < 0 || p >= uf.Len() {
		panic(fmt.Sprintf("unionfind: index %d out of range [0, %d)", p, uf.Len()))
	}
}

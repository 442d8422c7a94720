// Package percolation models an n×n grid of sites that are opened one at a time.
//
// Connectivity is tracked by a union-find over n²+2 elements: one per site plus a
// virtual top (index n²) joined to every open site of row 1 and a virtual bottom
// (index n²+1) joined to every open site of row n. The grid percolates when the two
// sentinels are connected.
//
// With the default backing, IsFull and Percolates share one structure, so after the
// grid percolates a bottom-row site that only reaches the virtual bottom may report
// as full (backwash). WithBackwashFree adds a second structure without the bottom
// sentinel to answer IsFull exactly.
package percolation

import (
	"fmt"

	"github.com/uyouii/percolation/common"
	"github.com/uyouii/percolation/model"
	"github.com/uyouii/percolation/unionfind"
)

type options struct {
	backwashFree bool
	newUnionFind unionfind.Factory
}

type Option func(*options)

// WithBackwashFree answers IsFull from a structure that has no bottom sentinel.
func WithBackwashFree() Option {
	return func(o *options) {
		o.backwashFree = true
	}
}

// WithUnionFind replaces the disjoint-set implementation. A nil factory is ignored.
func WithUnionFind(factory unionfind.Factory) Option {
	return func(o *options) {
		if factory != nil {
			o.newUnionFind = factory
		}
	}
}

// Percolation is not safe for concurrent use.
type Percolation struct {
	n         int
	open      []bool
	openCount int

	uf     unionfind.UnionFind
	fullUF unionfind.UnionFind // nil unless backwash-free

	virtualTop    int
	virtualBottom int
}

func New(n int, opts ...Option) (*Percolation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size must be > 0, got %d", common.ErrorInvalidArgument, n)
	}

	o := &options{newUnionFind: unionfind.NewFactory()}
	for _, opt := range opts {
		opt(o)
	}

	total := n * n
	uf, err := o.newUnionFind(total + 2)
	if err != nil {
		return nil, err
	}

	p := &Percolation{
		n:             n,
		open:          make([]bool, total),
		uf:            uf,
		virtualTop:    total,
		virtualBottom: total + 1,
	}

	if o.backwashFree {
		fullUF, err := o.newUnionFind(total + 1)
		if err != nil {
			return nil, err
		}
		p.fullUF = fullUF
	}

	return p, nil
}

func (p *Percolation) Size() int {
	return p.n
}

// Open opens the site at (row, col) and joins it to its open neighbors.
// Opening an open site is a no-op.
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	site := p.index(row, col)
	if p.open[site] {
		return nil
	}

	p.open[site] = true
	p.openCount++

	for _, neighbor := range p.neighbors(row, col) {
		if p.open[p.index(neighbor.Row, neighbor.Col)] {
			p.union(site, p.index(neighbor.Row, neighbor.Col))
		}
	}

	if row == 1 {
		p.union(site, p.virtualTop)
	}
	// the full structure has no bottom sentinel
	if row == p.n {
		p.uf.Union(site, p.virtualBottom)
	}
	return nil
}

func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}
	return p.open[p.index(row, col)], nil
}

// IsFull reports whether the site is open and connected to the top row.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	open, err := p.IsOpen(row, col)
	if err != nil || !open {
		return false, err
	}
	site := p.index(row, col)
	if p.fullUF != nil {
		return p.fullUF.Connected(site, p.virtualTop), nil
	}
	return p.uf.Connected(site, p.virtualTop), nil
}

func (p *Percolation) NumberOfOpenSites() int {
	return p.openCount
}

func (p *Percolation) Percolates() bool {
	return p.uf.Connected(p.virtualTop, p.virtualBottom)
}

func (p *Percolation) union(a, b int) {
	p.uf.Union(a, b)
	if p.fullUF != nil {
		p.fullUF.Union(a, b)
	}
}

// neighbors returns the in-bounds sites above, below, left and right of (row, col).
func (p *Percolation) neighbors(row, col int) []model.Site {
	res := make([]model.Site, 0, 4)
	candidates := [4]model.Site{
		{Row: row - 1, Col: col},
		{Row: row + 1, Col: col},
		{Row: row, Col: col - 1},
		{Row: row, Col: col + 1},
	}
	for _, c := range candidates {
		if p.inBounds(c.Row, c.Col) {
			res = append(res, c)
		}
	}
	return res
}

func (p *Percolation) inBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

func (p *Percolation) validate(row, col int) error {
	if !p.inBounds(row, col) {
		return fmt.Errorf("%w: site (%d, %d) outside [1, %d]", common.ErrorInvalidArgument, row, col, p.n)
	}
	return nil
}

// index maps a 1-indexed site to its union-find element.
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + (col - 1)
}

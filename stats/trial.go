package stats

import (
	"fmt"

	"github.com/uyouii/percolation/common"
	"github.com/uyouii/percolation/percolation"
)

// runTrial opens random closed sites of a fresh n×n grid until it percolates and
// returns the fraction of open sites at that moment.
//
// Every iteration of the outer loop opens exactly one new site, so it runs at most
// n² times. Redraws of open sites are capped at MaxRedraws, after which a closed
// site is picked uniformly among the remaining ones; that has the same distribution
// as redrawing until a closed site comes up.
func runTrial(n int, random RandomSource, gridOpts []percolation.Option) (float64, error) {
	grid, err := percolation.New(n, gridOpts...)
	if err != nil {
		return 0, err
	}

	total := n * n
	for !grid.Percolates() && grid.NumberOfOpenSites() < total {
		row, col, err := drawClosedSite(grid, random)
		if err != nil {
			return 0, err
		}
		if err := grid.Open(row, col); err != nil {
			return 0, err
		}
	}

	return float64(grid.NumberOfOpenSites()) / float64(total), nil
}

func drawClosedSite(grid *percolation.Percolation, random RandomSource) (int, int, error) {
	n := grid.Size()
	for i := 0; i < MaxRedraws; i++ {
		row, err := uniform(random, 1, n+1)
		if err != nil {
			return 0, 0, err
		}
		col, err := uniform(random, 1, n+1)
		if err != nil {
			return 0, 0, err
		}
		open, err := grid.IsOpen(row, col)
		if err != nil {
			return 0, 0, err
		}
		if !open {
			return row, col, nil
		}
	}

	closed := n*n - grid.NumberOfOpenSites()
	k, err := intn(random, closed)
	if err != nil {
		return 0, 0, err
	}
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			open, err := grid.IsOpen(row, col)
			if err != nil {
				return 0, 0, err
			}
			if open {
				continue
			}
			if k == 0 {
				return row, col, nil
			}
			k--
		}
	}
	return 0, 0, fmt.Errorf("%w: no closed site of rank %d among %d on a %dx%d grid",
		common.ErrorInvalidValue, k, closed, n, n)
}

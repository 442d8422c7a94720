// Package stats estimates the percolation threshold of an n×n grid by Monte Carlo
// simulation and summarizes the sample with its mean, standard deviation and
// Gaussian confidence interval.
package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/percolation/common"
	"github.com/uyouii/percolation/model"
	"github.com/uyouii/percolation/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PercolationStats holds the thresholds of a finished run. It is immutable and
// safe for concurrent reads.
type PercolationStats struct {
	n          int
	thresholds []float64
}

// NewPercolationStats runs trials independent experiments on n×n grids.
// It returns common.ErrorInvalidArgument when n or trials is not positive, and the
// context error if ctx is cancelled before all trials finish.
func NewPercolationStats(ctx context.Context, n, trials int, opts ...Option) (*PercolationStats, error) {
	logger := utils.GetLogger(ctx)

	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be > 0, got %d", common.ErrorInvalidArgument, trials)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size must be > 0, got %d", common.ErrorInvalidArgument, n)
	}

	o := newOptions(opts)
	workers := utils.IntMin(o.workers, trials)
	logger.Info("begin percolation trials", zap.Int("n", n), zap.Int("trials", trials),
		zap.Int("workers", workers))

	thresholds := make([]float64, trials)
	var err error
	if workers == 1 {
		err = runSequential(ctx, n, thresholds, o)
	} else {
		err = runParallel(ctx, n, thresholds, workers, o)
	}
	if err != nil {
		logger.Error("percolation trials failed", zap.Int("n", n), zap.Error(err))
		return nil, err
	}

	s := &PercolationStats{
		n:          n,
		thresholds: thresholds,
	}
	summary := s.Summary()
	logger.Info("percolation trials done", zap.String("summary", summary.DebugString()))
	return s, nil
}

func runSequential(ctx context.Context, n int, thresholds []float64, o *options) error {
	logger := utils.GetLogger(ctx)
	for trial := range thresholds {
		if err := ctx.Err(); err != nil {
			return err
		}
		threshold, err := runTrial(n, o.newRandom(trial), o.gridOpts)
		if err != nil {
			return err
		}
		thresholds[trial] = threshold
		logger.Debug("trial done", zap.Int("trial", trial), zap.Float64("threshold", threshold))
	}
	return nil
}

// runParallel writes each trial to its own slot; Wait orders all writes before
// the caller reads thresholds.
func runParallel(ctx context.Context, n int, thresholds []float64, workers int, o *options) error {
	logger := utils.GetLogger(ctx)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for trial := range thresholds {
		trial := trial
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			threshold, err := runTrial(n, o.newRandom(trial), o.gridOpts)
			if err != nil {
				return err
			}
			thresholds[trial] = threshold
			logger.Debug("trial done", zap.Int("trial", trial), zap.Float64("threshold", threshold))
			return nil
		})
	}
	return g.Wait()
}

func (s *PercolationStats) GridSize() int {
	return s.n
}

func (s *PercolationStats) Trials() int {
	return len(s.thresholds)
}

// Thresholds returns a copy of the per-trial thresholds in trial order.
func (s *PercolationStats) Thresholds() []float64 {
	res := make([]float64, len(s.thresholds))
	copy(res, s.thresholds)
	return res
}

func (s *PercolationStats) Mean() float64 {
	return stat.Mean(s.thresholds, nil)
}

// StdDev is the sample standard deviation, NaN for a single trial.
func (s *PercolationStats) StdDev() float64 {
	if len(s.thresholds) == 1 {
		return math.NaN()
	}
	return stat.StdDev(s.thresholds, nil)
}

func (s *PercolationStats) ConfidenceLo() float64 {
	return s.Mean() - s.margin(Confidence95)
}

func (s *PercolationStats) ConfidenceHi() float64 {
	return s.Mean() + s.margin(Confidence95)
}

// ConfidenceInterval returns the Gaussian interval around the mean for a level in (0, 1).
func (s *PercolationStats) ConfidenceInterval(level float64) (float64, float64, error) {
	if !(level > 0 && level < 1) {
		return 0, 0, fmt.Errorf("%w: confidence level must be in (0, 1), got %v",
			common.ErrorInvalidArgument, level)
	}
	z := distuv.UnitNormal.Quantile(0.5 + level/2)
	mean, margin := s.Mean(), s.margin(z)
	return mean - margin, mean + margin, nil
}

func (s *PercolationStats) margin(z float64) float64 {
	return z * s.StdDev() / math.Sqrt(float64(len(s.thresholds)))
}

func (s *PercolationStats) Summary() model.Summary {
	return model.Summary{
		GridSize:     s.n,
		Trials:       len(s.thresholds),
		Mean:         s.Mean(),
		StdDev:       s.StdDev(),
		ConfidenceLo: s.ConfidenceLo(),
		ConfidenceHi: s.ConfidenceHi(),
		Min:          floats.Min(s.thresholds),
		Max:          floats.Max(s.thresholds),
	}
}

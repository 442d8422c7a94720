package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/uyouii/percolation/common"
	"github.com/uyouii/percolation/model"
	"github.com/uyouii/percolation/percolation"
	"github.com/uyouii/percolation/stats"
	"github.com/uyouii/percolation/utils"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath   string
		seed         uint64
		workers      int
		backwashFree bool
		format       string
	)

	cmd := &cobra.Command{
		Use:   "percolation [n] [trials]",
		Short: "Estimate the percolation threshold of an n×n grid",
		Long: "Runs trials Monte Carlo experiments on an n×n grid, opening random sites until\n" +
			"the grid percolates, and prints the mean, stddev and 95% confidence interval\n" +
			"of the open-site fraction.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &model.Config{}
			if configPath != "" {
				loaded, err := model.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if err := applyArgs(cfg, args); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("backwash-free") {
				cfg.BackwashFree = backwashFree
			}
			if flags.Changed("format") {
				cfg.Format = model.ReportFormat(format)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cmd, cfg)
		},
	}

	// pflag reads a negative positional like -1 as a shorthand flag
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", common.ErrorInvalidArgument, err)
	})

	cmd.Flags().StringVar(&configPath, "config", "", "yaml config file")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().IntVar(&workers, "workers", stats.DefaultWorkers, "trials run concurrently")
	cmd.Flags().BoolVar(&backwashFree, "backwash-free", false, "use a separate structure for full-site queries")
	cmd.Flags().StringVar(&format, "format", string(model.TextReport), "report format: text or yaml")
	return cmd
}

// applyArgs reads the positional grid size and trial count.
func applyArgs(cfg *model.Config, args []string) error {
	targets := []*int{&cfg.GridSize, &cfg.Trials}
	names := []string{"n", "trials"}
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", common.ErrorInvalidArgument, names[i], arg)
		}
		*targets[i] = v
	}
	return nil
}

func run(ctx context.Context, cmd *cobra.Command, cfg *model.Config) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := utils.GetLogger(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("run recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			err = fmt.Errorf("percolation run panicked: %v", r)
		}
	}()

	opts := []stats.Option{stats.WithWorkers(cfg.Workers)}
	if cfg.Seed != 0 {
		opts = append(opts, stats.WithSeed(cfg.Seed))
	}
	if cfg.BackwashFree {
		opts = append(opts, stats.WithGridOptions(percolation.WithBackwashFree()))
	}

	s, err := stats.NewPercolationStats(ctx, cfg.GridSize, cfg.Trials, opts...)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), cfg.Format, s.Summary())
}

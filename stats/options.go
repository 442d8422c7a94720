package stats

import "github.com/uyouii/percolation/percolation"

type options struct {
	workers   int
	seed      uint64
	seeded    bool
	newRandom RandomFactory
	gridOpts  []percolation.Option
}

type Option func(*options)

// WithSeed makes a run reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithWorkers runs up to workers trials concurrently. Values below 1 mean sequential.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithRandom injects the random source of each trial. It takes precedence over WithSeed.
func WithRandom(factory RandomFactory) Option {
	return func(o *options) {
		o.newRandom = factory
	}
}

// WithGridOptions is forwarded to every grid the estimator builds.
func WithGridOptions(opts ...percolation.Option) Option {
	return func(o *options) {
		o.gridOpts = append(o.gridOpts, opts...)
	}
}

func newOptions(opts []Option) *options {
	o := &options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(o)
	}
	if o.workers < 1 {
		o.workers = DefaultWorkers
	}
	if o.newRandom == nil {
		if !o.seeded {
			o.seed = timeSeed()
		}
		o.newRandom = NewSeededFactory(o.seed)
	}
	return o
}

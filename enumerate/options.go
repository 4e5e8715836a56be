package enumerate

import (
	"github.com/katalvlaran/turingbeaver/config"
	"github.com/katalvlaran/turingbeaver/internal/applog"
)

// Option customises a Run via newConfig. As a rule, option constructors
// never panic at runtime and ignore nil inputs, applying the existing
// default instead.
type Option func(cfg *runConfig)

// runConfig holds Run's configurable parameters. Build one with newConfig;
// zero value is never used directly.
type runConfig struct {
	maxSteps        int64
	printFilter     *config.PrintFilterTable
	outputDir       string
	bucketHook      func(Bucket, Candidate)
	log             *applog.Logger
	counterSimSteps int
}

// newConfig returns a runConfig initialised with defaults, then applies
// each Option in order. Later options override earlier ones.
func newConfig(opts ...Option) *runConfig {
	cfg := &runConfig{
		maxSteps:        10_000_000,
		printFilter:     config.Default(),
		outputDir:       "out",
		log:             applog.Discard(),
		counterSimSteps: 0,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithMaxSteps sets the per-candidate exploration and classification step
// budget. Ignored if n <= 0.
func WithMaxSteps(n int64) Option {
	return func(cfg *runConfig) {
		if n > 0 {
			cfg.maxSteps = n
		}
	}
}

// WithPrintFilterTable supplies the per-(N,S) bucket thresholds loaded via
// config.Load. Ignored if t is nil.
func WithPrintFilterTable(t *config.PrintFilterTable) Option {
	return func(cfg *runConfig) {
		if t != nil {
			cfg.printFilter = t
		}
	}
}

// WithOutputDir sets the root directory under which bucket files are
// written, as out/<N>x<S>/<bucket>.txt. Ignored if dir is empty.
func WithOutputDir(dir string) Option {
	return func(cfg *runConfig) {
		if dir != "" {
			cfg.outputDir = dir
		}
	}
}

// WithBucketHooks registers a callback invoked once per classified
// candidate, whether or not the print filter let it through, after any
// output write for it. Tests use
// this to observe classification without touching the filesystem.
func WithBucketHooks(fn func(Bucket, Candidate)) Option {
	return func(cfg *runConfig) {
		cfg.bucketHook = fn
	}
}

// WithLogger attaches a logger for exploration/classification progress.
// Ignored if log is nil.
func WithLogger(log *applog.Logger) Option {
	return func(cfg *runConfig) {
		if log != nil {
			cfg.log = log
		}
	}
}

// WithCounterSimSteps sets how many steps the "counter" classification
// stage simulates before measuring the touched-region width. Ignored if
// n <= 0, in which case classify falls back to its own numSymbols-scaled
// default.
func WithCounterSimSteps(n int) Option {
	return func(cfg *runConfig) {
		if n > 0 {
			cfg.counterSimSteps = n
		}
	}
}

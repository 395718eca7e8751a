package eval

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/kdknn/logging"
)

// ErrInvalidArgument indicates an out-of-range percentage, fold count, k or
// an empty batch.
var ErrInvalidArgument = errors.New("eval: invalid argument")

// Defaults used by Analyze and SweepK.
const (
	DefaultTestPercent = 20
	DefaultFolds       = 10
)

// Options configures the evaluation drivers.
//
// Rand        – shuffling source for Split. nil resolves to a time-seeded source.
// Logger      – receives per-fold and summary records.
// TestPercent – hold-out share used by Analyze and SweepK.
// Folds       – fold count used by Analyze.
type Options struct {
	Rand        *rand.Rand
	Logger      *slog.Logger
	TestPercent int
	Folds       int
}

// Option represents a functional option for the evaluation drivers.
type Option func(*Options)

// DefaultOptions returns a 20% hold-out, 10 folds, no logging and no RNG
// (resolved lazily to a time-seeded source).
func DefaultOptions() Options {
	return Options{
		Rand:        nil,
		Logger:      logging.Discard(),
		TestPercent: DefaultTestPercent,
		Folds:       DefaultFolds,
	}
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for shuffling. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("eval: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("eval: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTestPercent sets the hold-out share for Analyze and SweepK.
// Panics outside [0, 100].
func WithTestPercent(pct int) Option {
	if pct < 0 || pct > 100 {
		panic("eval: WithTestPercent out of [0,100]")
	}
	return func(o *Options) {
		o.TestPercent = pct
	}
}

// WithFolds sets the fold count for Analyze. Panics if folds < 2.
func WithFolds(folds int) Option {
	if folds < 2 {
		panic("eval: WithFolds below 2")
	}
	return func(o *Options) {
		o.Folds = folds
	}
}

// resolve applies opts over the defaults and fills in the RNG.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}

package knn

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/kdknn/kdtree"
	"github.com/katalvlaran/kdknn/logging"
)

// ErrInvalidArgument indicates k <= 0 or an empty evaluation batch.
var ErrInvalidArgument = errors.New("knn: invalid argument")

// Options configures a Classifier.
type Options[L comparable] struct {
	// LabelLess, when set, orders neighbors at equal distance by label.
	LabelLess func(a, b L) bool
	// TreeOptions are passed through to kdtree.Build.
	TreeOptions []kdtree.Option
	// Logger receives build diagnostics.
	Logger *slog.Logger
}

// Option represents a functional option for configuring a Classifier.
type Option[L comparable] func(*Options[L])

// DefaultOptions returns neighbor-order tallying and a discarding logger.
func DefaultOptions[L comparable]() Options[L] {
	return Options[L]{Logger: logging.Discard()}
}

// WithLabelOrder sorts neighbors by (distance, label) before voting.
// Panics on nil.
func WithLabelOrder[L comparable](less func(a, b L) bool) Option[L] {
	if less == nil {
		panic("knn: WithLabelOrder(nil)")
	}
	return func(o *Options[L]) {
		o.LabelLess = less
	}
}

// WithTreeOptions forwards options to the underlying kdtree.Build.
func WithTreeOptions[L comparable](opts ...kdtree.Option) Option[L] {
	return func(o *Options[L]) {
		o.TreeOptions = append(o.TreeOptions, opts...)
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger[L comparable](l *slog.Logger) Option[L] {
	if l == nil {
		panic("knn: WithLogger(nil)")
	}
	return func(o *Options[L]) {
		o.Logger = l
	}
}

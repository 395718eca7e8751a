package eval

import (
	"fmt"

	"github.com/katalvlaran/kdknn/record"
)

// Split partitions dataset into train and test, preserving each label's
// share of the test set.
//
// Algorithm:
//  1. quota[label] = floor(count[label] * testPercent / 100).
//  2. Shuffle a private copy of dataset with the configured source.
//  3. Walk the shuffled copy: a record goes to test while its label's quota
//     is unmet, otherwise to train.
//
// Guarantees: train and test are disjoint and together hold every input
// record exactly once. The input slice is not reordered. Every returned
// record owns a private copy of its Features, so transforming train or test
// in place leaves dataset untouched.
//
// Errors:
//   - ErrInvalidArgument — testPercent outside [0, 100].
func Split[F record.Number, L comparable](dataset []record.Record[F, L], testPercent int, opts ...Option) (train, test []record.Record[F, L], err error) {
	if testPercent < 0 || testPercent > 100 {
		return nil, nil, fmt.Errorf("eval: Split testPercent=%d: %w", testPercent, ErrInvalidArgument)
	}
	o := resolve(opts)
	train, test = split(dataset, testPercent, o)

	return train, test, nil
}

// split is Split after validation, with resolved options.
func split[F record.Number, L comparable](dataset []record.Record[F, L], testPercent int, o Options) (train, test []record.Record[F, L]) {
	quota := record.CountLabels(dataset)
	for label, count := range quota {
		quota[label] = count * testPercent / 100
	}

	shuffled := record.CloneAll(dataset)
	o.Rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	train = make([]record.Record[F, L], 0, len(shuffled))
	test = make([]record.Record[F, L], 0, len(shuffled)*testPercent/100+len(quota))
	for _, r := range shuffled {
		if quota[r.Label] > 0 {
			quota[r.Label]--
			test = append(test, r)
		} else {
			train = append(train, r)
		}
	}

	return train, test
}

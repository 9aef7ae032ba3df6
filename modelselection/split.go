// Package modelselection implements the deterministic partitioning of an
// encoded dataset into train, validation and test subsets.
package modelselection

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"churnprep/pkg/errors"
)

// Split fractions. Boundaries are computed by integer truncation, so the
// realized sizes need not be exactly 70/20/10 for small row counts.
const (
	TrainFraction      = 0.7
	ValidationFraction = 0.2
	TestFraction       = 0.1
)

// Split holds the three disjoint row blocks of a shuffled dataset.
type Split struct {
	Train      *mat.Dense
	Validation *mat.Dense
	Test       *mat.Dense
}

// TrainValidTestSplit shuffles the rows of m with a Fisher-Yates
// permutation drawn from a source seeded with seed, then slices the
// shuffled rows at int(0.7*n) and int(0.9*n). The same input and seed
// always produce the same permutation, so output is byte-reproducible.
//
// A row count that would leave any block empty is a DataError.
func TrainValidTestSplit(m *mat.Dense, seed int64) (*Split, error) {
	n, cols := m.Dims()
	if n == 0 {
		return nil, errors.NewDataError("TrainValidTestSplit", "empty dataset")
	}

	trainEnd := int(TrainFraction * float64(n))
	validEnd := int((TrainFraction + ValidationFraction) * float64(n))
	if trainEnd == 0 || validEnd == trainEnd || validEnd == n {
		return nil, errors.NewDataError("TrainValidTestSplit",
			fmt.Sprintf("row count %d too small to produce non-empty splits", n))
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	block := func(start, end int) *mat.Dense {
		out := mat.NewDense(end-start, cols, nil)
		for i := start; i < end; i++ {
			out.SetRow(i-start, m.RawRowView(perm[i]))
		}
		return out
	}

	return &Split{
		Train:      block(0, trainEnd),
		Validation: block(trainEnd, validEnd),
		Test:       block(validEnd, n),
	}, nil
}

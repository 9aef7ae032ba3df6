package modelselection

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"churnprep/pkg/errors"
)

// sequentialMatrix builds an n x 2 matrix whose first column is the
// original row index, making rows traceable through the shuffle.
func sequentialMatrix(n int) *mat.Dense {
	m := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		m.Set(i, 0, float64(i))
		m.Set(i, 1, float64(i)*10)
	}
	return m
}

func TestTrainValidTestSplitBoundary(t *testing.T) {
	// n=10 truncates at 0.7*10=7 and 0.9*10=9: sizes (7, 2, 1).
	s, err := TrainValidTestSplit(sequentialMatrix(10), 1729)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}

	for _, tc := range []struct {
		name string
		m    *mat.Dense
		want int
	}{
		{"train", s.Train, 7},
		{"validation", s.Validation, 2},
		{"test", s.Test, 1},
	} {
		rows, cols := tc.m.Dims()
		if rows != tc.want {
			t.Errorf("%s rows = %d, want %d", tc.name, rows, tc.want)
		}
		if cols != 2 {
			t.Errorf("%s cols = %d, want 2", tc.name, cols)
		}
	}
}

func TestTrainValidTestSplitPartition(t *testing.T) {
	const n = 53
	s, err := TrainValidTestSplit(sequentialMatrix(n), 42)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}

	seen := make(map[int]int)
	total := 0
	for _, m := range []*mat.Dense{s.Train, s.Validation, s.Test} {
		rows, _ := m.Dims()
		total += rows
		for i := 0; i < rows; i++ {
			seen[int(m.At(i, 0))]++
		}
	}

	if total != n {
		t.Errorf("split sizes sum to %d, want %d", total, n)
	}
	for i := 0; i < n; i++ {
		if seen[i] != 1 {
			t.Errorf("row %d appears %d times across splits, want exactly once", i, seen[i])
		}
	}
}

func TestTrainValidTestSplitDeterminism(t *testing.T) {
	first, err := TrainValidTestSplit(sequentialMatrix(100), 1729)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	second, err := TrainValidTestSplit(sequentialMatrix(100), 1729)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}

	if !mat.Equal(first.Train, second.Train) {
		t.Error("train blocks differ between identical runs")
	}
	if !mat.Equal(first.Validation, second.Validation) {
		t.Error("validation blocks differ between identical runs")
	}
	if !mat.Equal(first.Test, second.Test) {
		t.Error("test blocks differ between identical runs")
	}
}

func TestTrainValidTestSplitSeedChangesOrder(t *testing.T) {
	a, err := TrainValidTestSplit(sequentialMatrix(100), 1)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	b, err := TrainValidTestSplit(sequentialMatrix(100), 2)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}

	if mat.Equal(a.Train, b.Train) {
		t.Error("different seeds produced identical train blocks")
	}
}

func TestTrainValidTestSplitShufflesRows(t *testing.T) {
	s, err := TrainValidTestSplit(sequentialMatrix(100), 1729)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}

	// Within-split order is the shuffled order, not the original order.
	inOrder := true
	rows, _ := s.Train.Dims()
	for i := 1; i < rows; i++ {
		if s.Train.At(i, 0) < s.Train.At(i-1, 0) {
			inOrder = false
			break
		}
	}
	if inOrder {
		t.Error("train rows are in original order; expected shuffled order")
	}
}

func TestTrainValidTestSplitTooSmall(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		_, err := TrainValidTestSplit(sequentialMatrix(n), 1729)
		var dataErr *errors.DataError
		if !errors.As(err, &dataErr) {
			t.Errorf("n=%d: expected DataError, got %v", n, err)
		}
	}
}

func TestTrainValidTestSplitEmpty(t *testing.T) {
	var empty mat.Dense
	_, err := TrainValidTestSplit(&empty, 1)
	var dataErr *errors.DataError
	if !errors.As(err, &dataErr) {
		t.Errorf("expected DataError for an empty dataset, got %v", err)
	}
}

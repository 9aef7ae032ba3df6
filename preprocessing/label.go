package preprocessing

import (
	"fmt"
	"sort"

	"churnprep/core/model"
	"churnprep/pkg/errors"
)

// LabelBinarizer collapses a two-valued categorical indicator column into
// a single binary label: 1 for the positive value, 0 for the other.
type LabelBinarizer struct {
	model.BaseTransformer

	// PositiveValue is the indicator value mapped to 1.
	PositiveValue string

	// Classes are the distinct values observed during Fit, sorted.
	Classes []string
}

// NewLabelBinarizer creates a binarizer mapping positiveValue to 1.
func NewLabelBinarizer(positiveValue string) *LabelBinarizer {
	return &LabelBinarizer{PositiveValue: positiveValue}
}

// Fit validates the indicator column: it must be non-empty, carry at most
// two distinct values, and contain the positive value.
func (b *LabelBinarizer) Fit(values []string) error {
	if len(values) == 0 {
		return errors.NewDataError("LabelBinarizer.Fit", "empty label column")
	}

	seen := make(map[string]bool)
	for _, v := range values {
		seen[v] = true
	}
	if len(seen) > 2 {
		return errors.NewDataError("LabelBinarizer.Fit",
			fmt.Sprintf("label column has %d distinct values, want at most 2", len(seen)))
	}
	if !seen[b.PositiveValue] {
		return errors.NewDataError("LabelBinarizer.Fit",
			fmt.Sprintf("positive value %q never observed in label column", b.PositiveValue))
	}

	b.Classes = make([]string, 0, len(seen))
	for v := range seen {
		b.Classes = append(b.Classes, v)
	}
	sort.Strings(b.Classes)

	b.SetFitted()
	return nil
}

// Transform maps the indicator column to a binary label vector.
func (b *LabelBinarizer) Transform(values []string) ([]float64, error) {
	if !b.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "Transform")
	}

	known := make(map[string]bool, len(b.Classes))
	for _, c := range b.Classes {
		known[c] = true
	}

	labels := make([]float64, len(values))
	for i, v := range values {
		if !known[v] {
			return nil, errors.NewDataError("LabelBinarizer.Transform",
				fmt.Sprintf("value %q not seen during Fit", v))
		}
		if v == b.PositiveValue {
			labels[i] = 1
		}
	}
	return labels, nil
}

// FitTransform fits the binarizer and transforms the same column.
func (b *LabelBinarizer) FitTransform(values []string) ([]float64, error) {
	if err := b.Fit(values); err != nil {
		return nil, err
	}
	return b.Transform(values)
}

// String returns the binarizer's string representation.
func (b *LabelBinarizer) String() string {
	if !b.IsFitted() {
		return fmt.Sprintf("LabelBinarizer(positive=%q)", b.PositiveValue)
	}
	return fmt.Sprintf("LabelBinarizer(positive=%q, classes=%v)", b.PositiveValue, b.Classes)
}

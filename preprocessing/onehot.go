// Package preprocessing implements the encoding step of the preparation
// pipeline: one-hot expansion of categorical feature columns and
// binarization of the two-valued churn indicator.
package preprocessing

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"churnprep/core/model"
	"churnprep/dataset"
	"churnprep/pkg/errors"
)

// fittedColumn is the per-column state learned by Fit.
type fittedColumn struct {
	name        string
	categorical bool
	categories  []string       // sorted lexicographically, empty for numeric columns
	index       map[string]int // category value -> offset within this column's block
}

// OneHotEncoder expands every categorical column of a feature table into
// one binary indicator column per observed distinct value.
//
// Column ordering is deterministic: columns keep their original table
// order, each categorical column expands in place, and indicator columns
// within one expansion are ordered lexicographically (byte-wise) by
// category value. A column is categorical if it is named in the schema's
// categorical casts or if any of its cells does not parse as a number.
type OneHotEncoder struct {
	model.BaseTransformer

	// CategoricalCasts are column names always treated as categorical.
	CategoricalCasts []string

	columns   []fittedColumn
	nFeatures int
}

// NewOneHotEncoder creates an encoder that force-casts the named columns
// to categorical.
func NewOneHotEncoder(categoricalCasts ...string) *OneHotEncoder {
	return &OneHotEncoder{CategoricalCasts: categoricalCasts}
}

// Fit learns the column kinds and category vocabularies from a feature table.
func (e *OneHotEncoder) Fit(t *dataset.Table) error {
	if t.NumRows() == 0 || t.NumColumns() == 0 {
		return errors.NewDataError("OneHotEncoder.Fit", "empty table")
	}

	casts := make(map[string]bool, len(e.CategoricalCasts))
	for _, name := range e.CategoricalCasts {
		casts[name] = true
	}

	e.columns = make([]fittedColumn, 0, t.NumColumns())
	e.nFeatures = 0
	for j, name := range t.Columns {
		col := fittedColumn{name: name, categorical: casts[name]}
		if !col.categorical {
			for _, row := range t.Rows {
				if _, err := strconv.ParseFloat(row[j], 64); err != nil {
					col.categorical = true
					break
				}
			}
		}

		if col.categorical {
			seen := make(map[string]bool)
			for _, row := range t.Rows {
				seen[row[j]] = true
			}
			col.categories = make([]string, 0, len(seen))
			for v := range seen {
				col.categories = append(col.categories, v)
			}
			sort.Strings(col.categories)
			col.index = make(map[string]int, len(col.categories))
			for i, v := range col.categories {
				col.index[v] = i
			}
			e.nFeatures += len(col.categories)
		} else {
			e.nFeatures++
		}
		e.columns = append(e.columns, col)
	}

	e.SetFitted()
	return nil
}

// Transform encodes a feature table into a dense matrix using the fitted
// vocabularies. The table must carry exactly the fitted columns in the
// fitted order; a category not seen during Fit is a DataError.
func (e *OneHotEncoder) Transform(t *dataset.Table) (*mat.Dense, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}
	if t.NumColumns() != len(e.columns) {
		return nil, errors.NewDataError("OneHotEncoder.Transform",
			fmt.Sprintf("expected %d columns, got %d", len(e.columns), t.NumColumns()))
	}
	for j, col := range e.columns {
		if t.Columns[j] != col.name {
			return nil, errors.NewSchemaError("OneHotEncoder.Transform", col.name, t.Columns)
		}
	}

	result := mat.NewDense(t.NumRows(), e.nFeatures, nil)
	for i, row := range t.Rows {
		offset := 0
		for j, col := range e.columns {
			if col.categorical {
				pos, ok := col.index[row[j]]
				if !ok {
					return nil, errors.NewDataError("OneHotEncoder.Transform",
						fmt.Sprintf("column %q: category %q not seen during Fit", col.name, row[j]))
				}
				result.Set(i, offset+pos, 1)
				offset += len(col.categories)
			} else {
				v, err := strconv.ParseFloat(row[j], 64)
				if err != nil {
					return nil, errors.NewDataError("OneHotEncoder.Transform",
						fmt.Sprintf("column %q: value %q is not numeric", col.name, row[j]))
				}
				result.Set(i, offset, v)
				offset++
			}
		}
	}
	return result, nil
}

// FitTransform fits the encoder on a table and encodes the same table.
func (e *OneHotEncoder) FitTransform(t *dataset.Table) (*mat.Dense, error) {
	if err := e.Fit(t); err != nil {
		return nil, err
	}
	return e.Transform(t)
}

// FeatureNames returns the output column names in output order: numeric
// columns keep their name, indicator columns are "column_value".
func (e *OneHotEncoder) FeatureNames() ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "FeatureNames")
	}
	names := make([]string, 0, e.nFeatures)
	for _, col := range e.columns {
		if col.categorical {
			for _, v := range col.categories {
				names = append(names, col.name+"_"+v)
			}
		} else {
			names = append(names, col.name)
		}
	}
	return names, nil
}

// NumFeatures returns the width of the encoded output.
func (e *OneHotEncoder) NumFeatures() int {
	return e.nFeatures
}

// GetParams returns the encoder's parameters.
func (e *OneHotEncoder) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"categorical_casts": e.CategoricalCasts,
	}
}

// String returns the encoder's string representation.
func (e *OneHotEncoder) String() string {
	if !e.IsFitted() {
		return fmt.Sprintf("OneHotEncoder(casts=%d)", len(e.CategoricalCasts))
	}
	return fmt.Sprintf("OneHotEncoder(casts=%d, n_features=%d)", len(e.CategoricalCasts), e.nFeatures)
}

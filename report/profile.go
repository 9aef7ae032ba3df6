// Package report summarizes a raw dataset before preparation: how the
// churn label is balanced and how many distinct values each categorical
// column carries. The class-balance summary can be rendered as a bar
// chart for a quick look at label skew.
package report

import (
	"io"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"churnprep/dataset"
	"churnprep/pkg/errors"
)

// Profile is a summary of one raw dataset.
type Profile struct {
	Rows        int
	LabelCounts map[string]int // raw target value -> row count
	Cardinality map[string]int // categorical column -> distinct values
}

// Build profiles a raw table against its schema. A column counts as
// categorical if the schema casts it or any cell is non-numeric; the
// target column is reported through LabelCounts instead.
func Build(t *dataset.Table, schema dataset.Schema) (*Profile, error) {
	if t.NumRows() == 0 {
		return nil, errors.NewDataError("report.Build", "empty table")
	}

	target, err := t.Column(schema.Target)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Rows:        t.NumRows(),
		LabelCounts: make(map[string]int),
		Cardinality: make(map[string]int),
	}
	for _, v := range target {
		p.LabelCounts[v]++
	}

	casts := make(map[string]bool, len(schema.CategoricalCasts))
	for _, name := range schema.CategoricalCasts {
		casts[name] = true
	}

	for j, name := range t.Columns {
		if name == schema.Target {
			continue
		}
		categorical := casts[name]
		seen := make(map[string]bool)
		for _, row := range t.Rows {
			if !categorical {
				if _, err := strconv.ParseFloat(row[j], 64); err != nil {
					categorical = true
				}
			}
			seen[row[j]] = true
		}
		if categorical {
			p.Cardinality[name] = len(seen)
		}
	}
	return p, nil
}

// RenderClassBalance writes a PNG bar chart of the label counts.
func (p *Profile) RenderClassBalance(w io.Writer) error {
	values := make([]string, 0, len(p.LabelCounts))
	for v := range p.LabelCounts {
		values = append(values, v)
	}
	sort.Strings(values)

	counts := make(plotter.Values, len(values))
	for i, v := range values {
		counts[i] = float64(p.LabelCounts[v])
	}

	plt := plot.New()
	plt.Title.Text = "Class balance"
	plt.Y.Label.Text = "rows"

	bars, err := plotter.NewBarChart(counts, vg.Points(40))
	if err != nil {
		return errors.Wrap(err, "churnprep: RenderClassBalance")
	}
	plt.Add(bars)
	plt.NominalX(values...)

	wt, err := plt.WriterTo(4*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return errors.Wrap(err, "churnprep: RenderClassBalance")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "churnprep: RenderClassBalance")
	}
	return nil
}

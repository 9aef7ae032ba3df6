// Package prepare wires the preparation stages into one ordered pipeline:
// load, clean, encode, split, write. Every stage produces a typed artifact
// and any stage failure aborts the run before a single output byte is
// written.
package prepare

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"churnprep/dataset"
	"churnprep/modelselection"
	"churnprep/pkg/errors"
	"churnprep/pkg/log"
	"churnprep/preprocessing"
)

// DefaultSeed is the shuffle seed used when none is configured.
const DefaultSeed = 1729

// Pipeline is a configured dataset preparer. Construct one per process,
// inject it where needed, and release it with the process; it holds no
// state between runs.
type Pipeline struct {
	schema dataset.Schema
	seed   int64
	logger *slog.Logger
}

// New creates a pipeline for the given schema and shuffle seed.
func New(schema dataset.Schema, seed int64, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{schema: schema, seed: seed, logger: logger}
}

// Sinks are the three output destinations, written only after every
// stage has succeeded.
type Sinks struct {
	Train      io.Writer
	Validation io.Writer
	Test       io.Writer
}

// Artifacts are the typed intermediate results of one run.
type Artifacts struct {
	RunID        string
	Raw          *dataset.Table
	Cleaned      *dataset.Table
	FeatureNames []string // encoded column names, label first
	Encoded      *mat.Dense
	Split        *modelselection.Split
}

// Run executes load, clean, encode and split over the input, then writes
// the three splits to the sinks. All computation happens before the first
// write, so a failing stage leaves the sinks untouched.
func (p *Pipeline) Run(r io.Reader, source string, sinks Sinks) (*Artifacts, error) {
	a := &Artifacts{RunID: uuid.NewString()}
	logger := p.logger.With(log.RunIDKey, a.RunID, log.SourceKey, source)
	start := time.Now()

	raw, err := p.load(logger, r, source)
	if err != nil {
		return nil, err
	}
	a.Raw = raw

	cleaned, err := p.clean(logger, raw)
	if err != nil {
		return nil, err
	}
	a.Cleaned = cleaned

	encoded, names, err := p.encode(logger, cleaned)
	if err != nil {
		return nil, err
	}
	a.Encoded = encoded
	a.FeatureNames = names

	split, err := p.split(logger, encoded)
	if err != nil {
		return nil, err
	}
	a.Split = split

	if err := p.write(logger, split, sinks); err != nil {
		return nil, err
	}

	logger.Info("preparation complete", log.DurationMsKey, time.Since(start).Milliseconds())
	return a, nil
}

func (p *Pipeline) load(logger *slog.Logger, r io.Reader, source string) (*dataset.Table, error) {
	table, err := dataset.Load(r, source, p.schema)
	if err != nil {
		logger.Error("load failed", log.StageKey, "load", log.ErrAttr(err))
		return nil, err
	}
	logger.Info("loaded raw dataset", log.StageKey, "load",
		log.RowsKey, table.NumRows(), log.ColumnsKey, table.NumColumns())
	return table, nil
}

func (p *Pipeline) clean(logger *slog.Logger, raw *dataset.Table) (*dataset.Table, error) {
	cleaned, err := raw.DropColumns(p.schema.DropColumns...)
	if err != nil {
		logger.Error("clean failed", log.StageKey, "clean", log.ErrAttr(err))
		return nil, err
	}
	logger.Info("dropped discard columns", log.StageKey, "clean",
		log.ColumnsKey, cleaned.NumColumns())
	return cleaned, nil
}

// encode collapses the target column into a binary label, one-hot expands
// the remaining feature columns, and assembles the label-first matrix.
func (p *Pipeline) encode(logger *slog.Logger, cleaned *dataset.Table) (*mat.Dense, []string, error) {
	target, err := cleaned.Column(p.schema.Target)
	if err != nil {
		logger.Error("encode failed", log.StageKey, "encode", log.ErrAttr(err))
		return nil, nil, err
	}
	features, err := cleaned.DropColumns(p.schema.Target)
	if err != nil {
		logger.Error("encode failed", log.StageKey, "encode", log.ErrAttr(err))
		return nil, nil, err
	}

	binarizer := preprocessing.NewLabelBinarizer(p.schema.PositiveValue)
	labels, err := binarizer.FitTransform(target)
	if err != nil {
		logger.Error("encode failed", log.StageKey, "encode", log.ErrAttr(err))
		return nil, nil, err
	}

	encoder := preprocessing.NewOneHotEncoder(p.schema.CategoricalCasts...)
	X, err := encoder.FitTransform(features)
	if err != nil {
		logger.Error("encode failed", log.StageKey, "encode", log.ErrAttr(err))
		return nil, nil, err
	}
	featureNames, err := encoder.FeatureNames()
	if err != nil {
		return nil, nil, err
	}

	rows, cols := X.Dims()
	encoded := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		encoded.Set(i, 0, labels[i])
		for j := 0; j < cols; j++ {
			encoded.Set(i, j+1, X.At(i, j))
		}
	}

	names := make([]string, 0, cols+1)
	names = append(names, p.schema.Target+"_"+p.schema.PositiveValue)
	names = append(names, featureNames...)

	logger.Info("encoded dataset", log.StageKey, "encode",
		log.RowsKey, rows, log.ColumnsKey, cols+1)
	return encoded, names, nil
}

func (p *Pipeline) split(logger *slog.Logger, encoded *mat.Dense) (*modelselection.Split, error) {
	split, err := modelselection.TrainValidTestSplit(encoded, p.seed)
	if err != nil {
		logger.Error("split failed", log.StageKey, "split", log.ErrAttr(err))
		return nil, err
	}
	trainRows, _ := split.Train.Dims()
	validRows, _ := split.Validation.Dims()
	testRows, _ := split.Test.Dims()
	logger.Info("split dataset", log.StageKey, "split",
		log.SeedKey, p.seed,
		log.TrainRowsKey, trainRows,
		log.ValidationRowsKey, validRows,
		log.TestRowsKey, testRows)
	return split, nil
}

func (p *Pipeline) write(logger *slog.Logger, split *modelselection.Split, sinks Sinks) error {
	for _, out := range []struct {
		name string
		m    *mat.Dense
		w    io.Writer
	}{
		{"train", split.Train, sinks.Train},
		{"validation", split.Validation, sinks.Validation},
		{"test", split.Test, sinks.Test},
	} {
		if out.w == nil {
			return errors.NewDataError("Pipeline.write", "no sink configured for "+out.name+" split")
		}
		if err := dataset.WriteCSV(out.w, out.m); err != nil {
			logger.Error("write failed", log.StageKey, "write", log.ErrAttr(err))
			return err
		}
	}
	logger.Info("wrote splits", log.StageKey, "write")
	return nil
}

package prepare

import (
	"bytes"
	"os"

	"churnprep/pkg/errors"
)

// OutputPaths are the destinations of a file-based run.
type OutputPaths struct {
	Train      string
	Validation string
	Test       string
}

// RunFile prepares the dataset at inputPath and writes the three split
// files. The splits are rendered in memory first; files appear on disk
// only once every stage has succeeded, and a failed write removes any
// file already created so no partial output set is left behind.
func (p *Pipeline) RunFile(inputPath string, out OutputPaths) (*Artifacts, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, errors.Wrap(err, "churnprep: RunFile")
	}
	defer in.Close()

	var train, validation, test bytes.Buffer
	artifacts, err := p.Run(in, inputPath, Sinks{
		Train:      &train,
		Validation: &validation,
		Test:       &test,
	})
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, 3)
	for _, f := range []struct {
		path string
		data []byte
	}{
		{out.Train, train.Bytes()},
		{out.Validation, validation.Bytes()},
		{out.Test, test.Bytes()},
	} {
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
			for _, path := range written {
				os.Remove(path)
			}
			return nil, errors.Wrap(err, "churnprep: RunFile")
		}
		written = append(written, f.path)
	}
	return artifacts, nil
}

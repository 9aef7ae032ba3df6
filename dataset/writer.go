package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"churnprep/pkg/errors"
)

// WriteCSV serializes a matrix as header-free delimited rows in row order.
// Values use the shortest representation that round-trips, so binary
// indicator columns serialize as plain 0 and 1.
func WriteCSV(w io.Writer, m *mat.Dense) error {
	rows, cols := m.Dims()
	writer := csv.NewWriter(w)
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "churnprep: WriteCSV")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "churnprep: WriteCSV")
	}
	return nil
}

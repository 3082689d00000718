package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/seabroker/email-classifier/internal/core"
)

// WriteSnapshot serializes the dataset to a delimited text file: one column
// per feature in canonical order plus a trailing label column, header row
// included. The snapshot decouples dataset building from training; it is not
// consulted again within the same run.
func WriteSnapshot(path string, ds *core.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &core.PersistenceError{Artifact: "dataset snapshot", Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &core.PersistenceError{Artifact: "dataset snapshot", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append(append([]string{}, ds.Columns...), "label")
	if err := w.Write(header); err != nil {
		return &core.PersistenceError{Artifact: "dataset snapshot", Err: err}
	}

	for i, row := range ds.Rows {
		record := make([]string, 0, len(row)+1)
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		record = append(record, string(ds.Labels[i]))
		if err := w.Write(record); err != nil {
			return &core.PersistenceError{Artifact: "dataset snapshot", Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &core.PersistenceError{Artifact: "dataset snapshot", Err: err}
	}
	return nil
}

// ReadSnapshot loads a dataset previously written by WriteSnapshot. The
// header must match the canonical feature columns plus the label column.
func ReadSnapshot(path string) (*core.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &core.PersistenceError{Artifact: "dataset snapshot", Err: err}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &core.PersistenceError{Artifact: "dataset snapshot", Err: err}
	}
	if len(records) == 0 {
		return nil, &core.PersistenceError{Artifact: "dataset snapshot", Err: fmt.Errorf("empty file")}
	}

	columns := core.FeatureColumns()
	header := records[0]
	if len(header) != len(columns)+1 || header[len(header)-1] != "label" {
		return nil, &core.PersistenceError{Artifact: "dataset snapshot", Err: fmt.Errorf("unexpected header %v", header)}
	}
	for i, col := range columns {
		if header[i] != col {
			return nil, &core.PersistenceError{Artifact: "dataset snapshot", Err: fmt.Errorf("column %d is %q, want %q", i, header[i], col)}
		}
	}

	ds := &core.Dataset{Columns: columns}
	for n, record := range records[1:] {
		if len(record) != len(columns)+1 {
			return nil, &core.PersistenceError{Artifact: "dataset snapshot", Err: fmt.Errorf("row %d has %d fields", n+1, len(record))}
		}
		row := make([]float64, len(columns))
		for i := range columns {
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				return nil, &core.PersistenceError{Artifact: "dataset snapshot", Err: fmt.Errorf("row %d column %q: %w", n+1, columns[i], err)}
			}
			row[i] = v
		}
		ds.Rows = append(ds.Rows, row)
		ds.Labels = append(ds.Labels, core.Label(record[len(columns)]))
	}
	return ds, nil
}

package datastore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// missingToken is the marker the pipeline's CSV files use for missing values.
const missingToken = "na"

// Cell is a single frame value. Missing cells keep no value.
type Cell struct {
	Value   string
	Missing bool
}

// NA returns a missing cell.
func NA() Cell {
	return Cell{Missing: true}
}

// Val returns a present cell holding s.
func Val(s string) Cell {
	return Cell{Value: s}
}

// Frame is an in-memory table with named columns and ordered rows, parsed
// from and serialized to CSV.
type Frame struct {
	Columns []string
	Rows    [][]Cell
}

// ReadFrame parses CSV content into a frame. The first record is the header.
// The "na" token and empty fields are treated as missing values. Ragged
// records fail with the csv package's field-count error.
func ReadFrame(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	f := &Frame{Columns: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row := make([]Cell, len(record))
		for i, field := range record {
			if field == "" || field == missingToken {
				row[i] = NA()
			} else {
				row[i] = Val(field)
			}
		}
		f.Rows = append(f.Rows, row)
	}

	return f, nil
}

// WriteCSV serializes the frame: header row first, no index column, missing
// cells rendered as empty fields.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(f.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(f.Columns))
	for _, row := range f.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) && !row[i].Missing {
				record[i] = row[i].Value
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile serializes the frame to a CSV file at path.
func (f *Frame) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file %s: %w", path, err)
	}

	if err := f.WriteCSV(out); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV loads a CSV file into a Table. Ragged rows are tolerated.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("csv open %s: %w", path, err)
	}
	defer f.Close()
	return readCSV(f)
}

// ReadCSVBytes is ReadCSV over in-memory data (downloaded inputs).
func ReadCSVBytes(data []byte) (Table, error) {
	return readCSV(bytes.NewReader(data))
}

func readCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("csv read: %w", err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}
	return Table{Headers: records[0], Rows: records[1:]}, nil
}

package tabular

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadSheet loads one sheet of an XLSX workbook into a Table. An empty
// sheet name selects the first sheet.
func ReadSheet(path, sheet string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("xlsx open %s: %w", path, err)
	}
	defer f.Close()
	return sheetTable(f, sheet)
}

// ReadSheetBytes is ReadSheet over an in-memory workbook (downloaded inputs).
func ReadSheetBytes(data []byte, sheet string) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Table{}, fmt.Errorf("xlsx open: %w", err)
	}
	defer f.Close()
	return sheetTable(f, sheet)
}

func sheetTable(f *excelize.File, sheet string) (Table, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return Table{}, fmt.Errorf("xlsx: workbook has no sheets")
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("xlsx read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}
	return Table{Headers: rows[0], Rows: rows[1:]}, nil
}

package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

// ParseSheet reads the first tabular sheet of an uploaded file into rows
// keyed by normalized header name. The first row is the header; fully empty
// rows are dropped.
func ParseSheet(r io.Reader, filename string) ([]Row, error) {
	records, err := readRecords(r, filename)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = NormalizeHeader(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		empty := true
		for i, cell := range record {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
			row[headers[i]] = cell
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readRecords(r io.Reader, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		return reader.ReadAll()
	case ".xlsx", ".xls":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheet := f.GetSheetName(0)
		return f.GetRows(sheet)
	default:
		return nil, ErrUnsupportedFile
	}
}

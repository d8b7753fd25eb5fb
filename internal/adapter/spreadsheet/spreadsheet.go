// Package spreadsheet reads row-oriented tables (CSV, TSV, XLSX) from disk.
// Pure functions: file path in, rows out. Header cells are used verbatim;
// whitespace cleanup is the domain normalizer's job.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cldf-datasets/antipassives/internal/domain"
)

// ReadTable reads a table whose first row is a header and returns one
// header-keyed row per data line. Short rows are padded with empty cells;
// cells beyond the header width are dropped.
func ReadTable(path string) ([]domain.Row, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]domain.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(domain.Row, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadRecords reads a table as positional records, header included.
// The format is chosen by file extension: .tsv is tab-separated, .xlsx is
// read from the first sheet, anything else is treated as comma-separated.
func ReadRecords(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readExcel(path)
	case ".tsv":
		return readCSV(path, '\t')
	default:
		return readCSV(path, ',')
	}
}

func readCSV(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		records = append(records, record)
	}
	return records, nil
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s: no sheets", filepath.Base(path))
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return records, nil
}

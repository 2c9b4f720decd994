package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/okian/rematricula/internal/domain/model"
	"github.com/xuri/excelize/v2"
)

// ReadFile reads path into a Table. ".xlsx" files are read from their
// first sheet; everything else is parsed as CSV.
func ReadFile(name, path string) (*model.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(name, path)
	case ".csv", ".txt", "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		return ReadCSV(name, f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
}

// ReadCSV parses a comma separated table with a header row. Every record
// must have as many fields as the header.
func ReadCSV(name string, r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	if err != nil {
		return nil, fmt.Errorf("csv header %s: %w", name, err)
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read %s: %w", name, err)
	}
	return model.NewTable(name, header, rows), nil
}

// ReadXLSX reads the first sheet of a workbook. Trailing empty cells are
// dropped by excelize; Table treats them as missing.
func ReadXLSX(name, path string) (*model.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", ErrEmptyFile, name)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	return model.NewTable(name, rows[0], rows[1:]), nil
}

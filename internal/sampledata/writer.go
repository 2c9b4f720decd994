package sampledata

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okian/rematricula/internal/adapters/dataset"
	"github.com/okian/rematricula/internal/domain/model"
	"github.com/xuri/excelize/v2"
)

const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// FilesFor returns the dataset file names for format.
func FilesFor(format string) dataset.Files {
	f := dataset.DefaultFiles()
	if format != FormatXLSX {
		return f
	}
	swap := func(name string) string { return strings.TrimSuffix(name, filepath.Ext(name)) + ".xlsx" }
	return dataset.Files{
		Scores:    swap(f.Scores),
		Detail:    swap(f.Detail),
		Sentiment: swap(f.Sentiment),
		Polarity:  swap(f.Polarity),
		Results:   swap(f.Results),
	}
}

// Write stores the sample under dir and returns the written paths.
func Write(ctx context.Context, dir, format string, s *Sample) ([]string, error) {
	if err := os.MkdirAll(dir, directoryPermission); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	files := FilesFor(format)
	pairs := []struct {
		name string
		t    *model.Table
	}{
		{files.Scores, s.Dataset.Scores},
		{files.Detail, s.Dataset.Detail},
		{files.Sentiment, s.Dataset.Sentiment},
		{files.Polarity, s.Dataset.Polarity},
		{files.Results, s.Dataset.Results},
	}

	paths := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, p.name)
		var err error
		if format == FormatXLSX {
			err = writeXLSX(path, p.t)
		} else {
			err = writeCSV(path, p.t)
		}
		if err != nil {
			return paths, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSV(path string, t *model.Table) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return err
	}
	return w.Error()
}

func writeXLSX(path string, t *model.Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range append([][]string{t.Header}, t.Rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

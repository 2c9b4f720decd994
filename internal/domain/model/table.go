// Package model contains domain models passed between layers.
package model

import "strings"

// Table is an in-memory flat table: an ordered header and string rows.
// Rows shorter than the header read as missing cells.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds a Table and indexes its header. Header names are trimmed;
// the first occurrence of a repeated name wins.
func NewTable(name string, header []string, rows [][]string) *Table {
	t := &Table{Name: name, Rows: rows, index: make(map[string]int, len(header))}
	t.Header = make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		t.Header[i] = h
		if _, ok := t.index[h]; !ok {
			t.index[h] = i
		}
	}
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool { return t.Len() == 0 }

// Has reports whether the header contains column.
func (t *Table) Has(column string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[column]
	return ok
}

// HasAll reports whether every column is present.
func (t *Table) HasAll(columns ...string) bool {
	for _, c := range columns {
		if !t.Has(c) {
			return false
		}
	}
	return true
}

// Cell returns the trimmed value at (row, column). ok is false when the
// column is absent, the row is out of range, or the row is too short.
func (t *Table) Cell(row int, column string) (string, bool) {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	i, ok := t.index[column]
	if !ok || i >= len(t.Rows[row]) {
		return "", false
	}
	return strings.TrimSpace(t.Rows[row][i]), true
}

// Column returns every value of column, or nil when it is absent.
func (t *Table) Column(column string) []string {
	if !t.Has(column) {
		return nil
	}
	out := make([]string, 0, len(t.Rows))
	for r := range t.Rows {
		v, _ := t.Cell(r, column)
		out = append(out, v)
	}
	return out
}

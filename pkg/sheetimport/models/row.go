// Package models defines the data shapes returned by a sheet import.
package models

import "github.com/xuri/excelize/v2"

// Row represents a single worksheet row.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// Cells holds the cell values in column order, starting at column A.
	Cells []string `json:"c" yaml:"c"`
}

// Get returns the value in the column with the given letter label (e.g. "B").
func (r Row) Get(column string) (string, bool) {
	n, err := excelize.ColumnNameToNumber(column)
	if err != nil || n > len(r.Cells) {
		return "", false
	}
	return r.Cells[n-1], true
}

// Columns maps each column letter to its cell value.
func (r Row) Columns() map[string]string {
	out := make(map[string]string, len(r.Cells))
	for i, v := range r.Cells {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		out[name] = v
	}
	return out
}

// Record maps header field names to cell values.
type Record map[string]string

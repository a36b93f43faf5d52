package models

import "testing"

func TestRowGet(t *testing.T) {
	row := Row{R: 2, Cells: []string{"a", "b", "c"}}

	tests := []struct {
		column string
		want   string
		ok     bool
	}{
		{"A", "a", true},
		{"C", "c", true},
		{"D", "", false},
		{"1", "", false},
	}
	for _, tt := range tests {
		got, ok := row.Get(tt.column)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Get(%q) = %q, %v; expected %q, %v", tt.column, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRowColumns(t *testing.T) {
	cells := make([]string, 28)
	cells[0] = "first"
	cells[27] = "last"
	cols := Row{R: 1, Cells: cells}.Columns()

	if len(cols) != 28 {
		t.Fatalf("Expected 28 columns, got %d", len(cols))
	}
	if cols["A"] != "first" {
		t.Errorf("Expected A=first, got %q", cols["A"])
	}
	if cols["AB"] != "last" {
		t.Errorf("Expected AB=last, got %q", cols["AB"])
	}
}

func TestSheetDataLen(t *testing.T) {
	raw := SheetData{Rows: []Row{{R: 1}, {R: 2}}}
	if raw.Labeled() || raw.Len() != 2 {
		t.Errorf("Unexpected raw sheet state: labeled=%v len=%d", raw.Labeled(), raw.Len())
	}

	labeled := SheetData{Header: []string{}, Records: []Record{{"a": "1"}}}
	if !labeled.Labeled() || labeled.Len() != 1 {
		t.Errorf("Unexpected labeled sheet state: labeled=%v len=%d", labeled.Labeled(), labeled.Len())
	}
}

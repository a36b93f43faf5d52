package workbook

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxBook struct {
	f      *excelize.File
	sheets []string
}

// OpenXLSX opens an Office Open XML workbook with excelize.
func OpenXLSX(path string, opts LoadOptions) (Workbook, error) {
	f, err := excelize.OpenFile(path, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, err
	}
	return &xlsxBook{f: f, sheets: f.GetSheetList()}, nil
}

func (b *xlsxBook) SheetCount() int {
	return len(b.sheets)
}

func (b *xlsxBook) SheetNames() []string {
	return append([]string(nil), b.sheets...)
}

func (b *xlsxBook) SheetByName(name string) (Sheet, error) {
	for i, s := range b.sheets {
		if s == name {
			return &xlsxSheet{f: b.f, name: s, index: i}, nil
		}
	}
	return nil, sheetNotFound(name)
}

func (b *xlsxBook) SheetByIndex(index int) (Sheet, error) {
	if index < 0 || index >= len(b.sheets) {
		return nil, sheetIndexNotFound(index)
	}
	return &xlsxSheet{f: b.f, name: b.sheets[index], index: index}, nil
}

func (b *xlsxBook) ActiveSheet() (Sheet, error) {
	index := b.f.GetActiveSheetIndex()
	if index < 0 || index >= len(b.sheets) {
		index = 0
	}
	return b.SheetByIndex(index)
}

func (b *xlsxBook) Close() error {
	return b.f.Close()
}

type xlsxSheet struct {
	f     *excelize.File
	name  string
	index int
}

func (s *xlsxSheet) Name() string { return s.name }
func (s *xlsxSheet) Index() int   { return s.index }

// Rows returns formatted cell values. excelize trims trailing empty cells
// and rows, so the grid is grown back to the sheet's stored dimension.
func (s *xlsxSheet) Rows() ([][]string, error) {
	rows, err := s.f.GetRows(s.name)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	width, height := s.extent()
	rows = ExtendRows(rows, height)
	return PadRows(rows, width), nil
}

// extent reads the used range (e.g. "A1:D10") recorded in the sheet.
func (s *xlsxSheet) extent() (cols, rows int) {
	dim, err := s.f.GetSheetDimension(s.name)
	if err != nil || dim == "" {
		return 0, 0
	}
	ref := dim
	if i := strings.LastIndex(dim, ":"); i >= 0 {
		ref = dim[i+1:]
	}
	cols, rows, err = excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0
	}
	return cols, rows
}

package workbook

import (
	"errors"
	"io"

	"github.com/extrame/xls"
)

// defaultXLSCharset is used when LoadOptions.Encoding is empty.
const defaultXLSCharset = "utf-8"

type xlsBook struct {
	wb     *xls.WorkBook
	closer io.Closer
	sheets []string
}

// OpenXLS opens a legacy BIFF (.xls) workbook.
func OpenXLS(path string, opts LoadOptions) (Workbook, error) {
	charset := opts.Encoding
	if charset == "" {
		charset = defaultXLSCharset
	}
	wb, closer, err := xls.OpenWithCloser(path, charset)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	if wb == nil {
		closer.Close()
		return nil, errors.New("no workbook stream found in xls file")
	}

	b := &xlsBook{wb: wb, closer: closer}
	for i := 0; i < wb.NumSheets(); i++ {
		if ws := wb.GetSheet(i); ws != nil {
			b.sheets = append(b.sheets, ws.Name)
		}
	}
	return b, nil
}

func (b *xlsBook) SheetCount() int {
	return len(b.sheets)
}

func (b *xlsBook) SheetNames() []string {
	return append([]string(nil), b.sheets...)
}

func (b *xlsBook) SheetByName(name string) (Sheet, error) {
	for i, s := range b.sheets {
		if s == name {
			return b.SheetByIndex(i)
		}
	}
	return nil, sheetNotFound(name)
}

func (b *xlsBook) SheetByIndex(index int) (Sheet, error) {
	if index < 0 || index >= len(b.sheets) {
		return nil, sheetIndexNotFound(index)
	}
	ws := b.wb.GetSheet(index)
	if ws == nil {
		return nil, sheetIndexNotFound(index)
	}
	return &xlsSheet{ws: ws, index: index}, nil
}

// ActiveSheet returns the sheet flagged as selected, or the first sheet if
// none is.
func (b *xlsBook) ActiveSheet() (Sheet, error) {
	for i := range b.sheets {
		if ws := b.wb.GetSheet(i); ws != nil && ws.Selected {
			return &xlsSheet{ws: ws, index: i}, nil
		}
	}
	return b.SheetByIndex(0)
}

func (b *xlsBook) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

type xlsSheet struct {
	ws    *xls.WorkSheet
	index int
}

func (s *xlsSheet) Name() string { return s.ws.Name }
func (s *xlsSheet) Index() int   { return s.index }

func (s *xlsSheet) Rows() ([][]string, error) {
	return xlsGrid(int(s.ws.MaxRow), func(i int) xlsRow {
		if row := s.ws.Row(i); row != nil {
			return row
		}
		return nil
	}), nil
}

// xlsRow is the part of *xls.Row used to read cells.
type xlsRow interface {
	FirstCol() int
	LastCol() int
	Col(i int) string
}

// xlsGrid reads rows 0..maxRow. rowAt returns nil for rows with no record.
//
// LastCol is one past the last cell for rows stored with a ROW record but
// the last cell itself for rows built only from cell records, so columns up
// to LastCol are read and trailing blanks trimmed.
func xlsGrid(maxRow int, rowAt func(i int) xlsRow) [][]string {
	var rows [][]string
	for i := 0; i <= maxRow; i++ {
		row := rowAt(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		var cells []string
		for c := 0; c <= row.LastCol(); c++ {
			if c < row.FirstCol() {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, row.Col(c))
		}
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		rows = append(rows, cells)
	}

	// Drop trailing rows without any record or value.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil
	}
	return PadRows(rows, 0)
}

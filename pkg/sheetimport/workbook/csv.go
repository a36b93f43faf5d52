package workbook

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// csvBook is a delimited text file presented as a one-sheet workbook named
// after the file.
type csvBook struct {
	sheet *csvSheet
}

// OpenCSV reads a delimited text file. The whole file is read before
// returning, so Close is a no-op.
func OpenCSV(path string, opts LoadOptions) (Workbook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	encoding := opts.Encoding
	if encoding == "" {
		encoding = "utf-8"
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", encoding, err)
	}

	reader := csv.NewReader(transform.NewReader(file, unicode.BOMOverride(enc.NewDecoder())))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.Comma = opts.Comma
	if reader.Comma == 0 {
		reader.Comma = ','
		if strings.EqualFold(filepath.Ext(path), ".tsv") {
			reader.Comma = '\t'
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read delimited file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &csvBook{sheet: &csvSheet{name: name, rows: PadRows(rows, 0)}}, nil
}

func (b *csvBook) SheetCount() int             { return 1 }
func (b *csvBook) SheetNames() []string        { return []string{b.sheet.name} }
func (b *csvBook) ActiveSheet() (Sheet, error) { return b.sheet, nil }
func (b *csvBook) Close() error                { return nil }

func (b *csvBook) SheetByName(name string) (Sheet, error) {
	if name != b.sheet.name {
		return nil, sheetNotFound(name)
	}
	return b.sheet, nil
}

func (b *csvBook) SheetByIndex(index int) (Sheet, error) {
	if index != 0 {
		return nil, sheetIndexNotFound(index)
	}
	return b.sheet, nil
}

type csvSheet struct {
	name string
	rows [][]string
}

func (s *csvSheet) Name() string { return s.name }
func (s *csvSheet) Index() int   { return 0 }

func (s *csvSheet) Rows() ([][]string, error) {
	out := make([][]string, len(s.rows))
	for i, row := range s.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

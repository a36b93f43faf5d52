package sheetimport

import (
	"fmt"
	"log/slog"

	"github.com/moxuandi/sheetimport/pkg/sheetimport/models"
	"github.com/moxuandi/sheetimport/pkg/sheetimport/workbook"
)

// Importer reads spreadsheet files with a fixed set of options. It holds no
// per-call state and may be used concurrently.
type Importer struct {
	opts   Options
	load   workbook.Loader
	logger *slog.Logger
}

// New validates opts and returns an Importer.
func New(opts Options) (*Importer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	imp := &Importer{
		opts:   opts,
		load:   opts.Loader,
		logger: opts.Logger,
	}
	if imp.load == nil {
		imp.load = workbook.Open
	}
	if imp.logger == nil {
		imp.logger = slog.New(slog.DiscardHandler)
	}
	return imp, nil
}

// Import reads the sheets of a single spreadsheet file.
func Import(path string, opts Options) (*Result, error) {
	imp, err := New(opts)
	if err != nil {
		return nil, err
	}
	return imp.Import(path)
}

// Import reads the sheets of exactly one file. Passing zero or several
// paths fails with ErrInvalidInput before anything is opened.
func (imp *Importer) Import(paths ...string) (*Result, error) {
	if len(paths) != 1 {
		return nil, fmt.Errorf("%w: importing %d files at once is not supported", ErrInvalidInput, len(paths))
	}
	path := paths[0]
	if path == "" {
		return nil, fmt.Errorf("%w: empty file path", ErrInvalidInput)
	}

	log := imp.logger.With(slog.String("path", path))
	wb, err := imp.load(path, imp.opts.Load)
	if err != nil {
		return nil, NewImportError(path, "", "load", ErrLoadFailure, err)
	}
	defer func() {
		if err := wb.Close(); err != nil {
			log.Warn("failed to close workbook", slog.Any("error", err))
		}
	}()

	sheetCount := wb.SheetCount()
	log.Debug("workbook loaded", slog.Int("sheets", sheetCount))

	// Single sheet by name
	if imp.opts.Sheets.IsSingle() {
		name := imp.opts.Sheets.Name()
		sheet, err := wb.SheetByName(name)
		if err != nil {
			return nil, NewImportError(path, name, "sheet", ErrSheetNotFound, err)
		}
		data, err := imp.readSheet(path, sheet)
		if err != nil {
			return nil, err
		}
		return &Result{Single: data}, nil
	}

	// Workbook with a single sheet
	if sheetCount <= 1 {
		sheet, err := wb.ActiveSheet()
		if err != nil {
			return nil, NewImportError(path, "", "sheet", ErrSheetNotFound, err)
		}
		data, err := imp.readSheet(path, sheet)
		if err != nil {
			return nil, err
		}
		return &Result{Single: data}, nil
	}

	result := &Result{}
	byName := imp.opts.ShouldKeySheetsByName()
	for index, name := range wb.SheetNames() {
		var id SheetID = SheetIndex(index)
		if byName {
			id = SheetName(name)
		}
		if !imp.opts.Sheets.Includes(id) {
			log.Debug("skipping sheet", slog.String("sheet", name))
			continue
		}

		var sheet workbook.Sheet
		if byName {
			sheet, err = wb.SheetByName(name)
		} else {
			sheet, err = wb.SheetByIndex(index)
		}
		if err != nil {
			return nil, NewImportError(path, name, "sheet", ErrSheetNotFound, err)
		}

		data, err := imp.readSheet(path, sheet)
		if err != nil {
			return nil, err
		}
		result.add(id, data)
	}

	return result, nil
}

// readSheet converts a sheet to rows and, if configured, promotes its header.
func (imp *Importer) readSheet(path string, sheet workbook.Sheet) (*models.SheetData, error) {
	grid, err := sheet.Rows()
	if err != nil {
		return nil, NewImportError(path, sheet.Name(), "rows", ErrLoadFailure, err)
	}

	rows := make([]models.Row, len(grid))
	for i, cells := range grid {
		rows[i] = models.Row{R: i + 1, Cells: cells}
	}

	data := &models.SheetData{
		Name:  sheet.Name(),
		Index: sheet.Index(),
	}
	if !imp.opts.ShouldPromoteHeaderRow() {
		data.Rows = rows
		imp.logger.Debug("sheet imported",
			slog.String("path", path),
			slog.String("sheet", data.Name),
			slog.Int("rows", len(rows)),
		)
		return data, nil
	}

	if imp.opts.DuplicateHeaders == DuplicateReject {
		data.Header, data.Records, err = PromoteHeaderStrict(rows)
		if err != nil {
			return nil, NewImportError(path, sheet.Name(), "header", ErrDuplicateHeader, err)
		}
	} else {
		data.Header, data.Records = PromoteHeader(rows)
	}
	if data.Header == nil {
		data.Header = []string{}
	}
	if data.Records == nil {
		data.Records = []models.Record{}
	}

	imp.logger.Debug("sheet imported",
		slog.String("path", path),
		slog.String("sheet", data.Name),
		slog.Int("records", len(data.Records)),
	)
	return data, nil
}

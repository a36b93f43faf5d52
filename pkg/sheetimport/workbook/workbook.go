// Package workbook opens spreadsheet files and exposes their sheets as
// string grids, hiding which parsing library handles a given format.
package workbook

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrSheetNotFound indicates a requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnsupportedFormat indicates no backend is registered for a file extension.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Workbook is an opened spreadsheet file.
type Workbook interface {
	// SheetCount returns the number of sheets.
	SheetCount() int
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// SheetByName returns the named sheet or ErrSheetNotFound.
	SheetByName(name string) (Sheet, error)
	// SheetByIndex returns the sheet at a zero-based position or ErrSheetNotFound.
	SheetByIndex(index int) (Sheet, error)
	// ActiveSheet returns the sheet selected when the file was last saved.
	ActiveSheet() (Sheet, error)
	// Close releases the underlying file.
	Close() error
}

// Sheet is a single worksheet.
type Sheet interface {
	Name() string
	Index() int
	// Rows returns the full grid of formatted cell values. Rows are padded
	// to the sheet's column extent.
	Rows() ([][]string, error)
}

// LoadOptions configures how files are opened.
type LoadOptions struct {
	// Comma is the CSV field delimiter. Zero means ',' (or '\t' for .tsv).
	Comma rune
	// Encoding names the text encoding of CSV and XLS files (e.g. "gbk",
	// "shift_jis", "windows-1252"). Empty means UTF-8.
	Encoding string
	// Password opens encrypted xlsx files.
	Password string
}

// Loader opens a spreadsheet file. Open is the default Loader; each
// registered backend is one too.
type Loader func(path string, opts LoadOptions) (Workbook, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Loader)
)

func init() {
	for _, ext := range []string{".xlsx", ".xlsm", ".xltx", ".xltm"} {
		Register(ext, OpenXLSX)
	}
	Register(".xls", OpenXLS)
	Register(".csv", OpenCSV)
	Register(".tsv", OpenCSV)
}

// Register associates a file extension with a loader, replacing any
// existing one.
func Register(ext string, open Loader) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalizeExt(ext)] = open
}

// SupportedFormats returns all registered extensions, sorted.
func SupportedFormats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	formats := make([]string, 0, len(registry))
	for ext := range registry {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}

// Open opens path with the backend registered for its extension.
func Open(path string, opts LoadOptions) (Workbook, error) {
	ext := normalizeExt(filepath.Ext(path))
	registryMu.RLock()
	open, ok := registry[ext]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return open(path, opts)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func sheetNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

func sheetIndexNotFound(index int) error {
	return fmt.Errorf("%w: index %d", ErrSheetNotFound, index)
}

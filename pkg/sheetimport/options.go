// Package sheetimport reads spreadsheet files into in-memory rows and
// header-keyed records.
package sheetimport

import (
	"fmt"
	"log/slog"

	"github.com/moxuandi/sheetimport/pkg/sheetimport/workbook"
)

// DuplicateHeaderPolicy decides what happens when the header row repeats a
// field name.
type DuplicateHeaderPolicy string

const (
	// DuplicateLastWins keeps the value of the right-most column sharing a name.
	DuplicateLastWins DuplicateHeaderPolicy = "last-wins"
	// DuplicateReject fails the import with ErrDuplicateHeader.
	DuplicateReject DuplicateHeaderPolicy = "reject"
)

// Options configures import behavior.
type Options struct {
	// PromoteHeaderRow turns the first row of each sheet into field names.
	// If nil, defaults to true.
	PromoteHeaderRow *bool
	// KeySheetsByName keys multi-sheet results by sheet name instead of
	// zero-based index. If nil, defaults to true.
	KeySheetsByName *bool
	// Sheets restricts which sheets are read. The zero value reads all.
	Sheets Selector
	// DuplicateHeaders defaults to DuplicateLastWins.
	DuplicateHeaders DuplicateHeaderPolicy
	// Load is passed to the workbook loader.
	Load workbook.LoadOptions
	// Loader opens files. If nil, workbook.Open is used.
	Loader workbook.Loader
	// Logger receives debug output. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default import options.
func DefaultOptions() Options {
	return Options{
		PromoteHeaderRow: Bool(true),
		KeySheetsByName:  Bool(true),
		DuplicateHeaders: DuplicateLastWins,
	}
}

// Bool returns a pointer to b, for filling optional Options fields.
func Bool(b bool) *bool {
	return &b
}

// ShouldPromoteHeaderRow returns whether the first row becomes field names.
func (o Options) ShouldPromoteHeaderRow() bool {
	if o.PromoteHeaderRow != nil {
		return *o.PromoteHeaderRow
	}
	return true
}

// ShouldKeySheetsByName returns whether sheets are keyed by name.
func (o Options) ShouldKeySheetsByName() bool {
	if o.KeySheetsByName != nil {
		return *o.KeySheetsByName
	}
	return true
}

// Validate checks that the options are consistent. A selector listing
// indexes while sheets are keyed by name (or the reverse) could never match
// anything, so it is rejected rather than producing an empty result.
func (o Options) Validate() error {
	switch o.DuplicateHeaders {
	case "", DuplicateLastWins, DuplicateReject:
	default:
		return fmt.Errorf("%w: unknown duplicate header policy %q", ErrInvalidInput, o.DuplicateHeaders)
	}

	if o.Sheets.IsSingle() {
		if o.Sheets.only == "" {
			return fmt.Errorf("%w: empty sheet name", ErrInvalidInput)
		}
		return nil
	}

	byName := o.ShouldKeySheetsByName()
	for _, id := range o.Sheets.ids {
		switch v := id.(type) {
		case SheetName:
			if !byName {
				return fmt.Errorf("%w: sheet name %q selected but sheets are keyed by index", ErrInvalidInput, string(v))
			}
		case SheetIndex:
			if byName {
				return fmt.Errorf("%w: sheet index %d selected but sheets are keyed by name", ErrInvalidInput, int(v))
			}
			if v < 0 {
				return fmt.Errorf("%w: negative sheet index %d", ErrInvalidInput, int(v))
			}
		default:
			return fmt.Errorf("%w: unsupported sheet identifier %T", ErrInvalidInput, id)
		}
	}
	return nil
}

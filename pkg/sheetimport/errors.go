package sheetimport

import (
	"errors"
	"fmt"

	"github.com/moxuandi/sheetimport/pkg/sheetimport/workbook"
)

// ErrInvalidInput indicates the import was called with bad arguments, such
// as more than one file. No file is opened when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// ErrLoadFailure indicates the file could not be opened or parsed.
var ErrLoadFailure = errors.New("failed to load workbook")

// ErrSheetNotFound indicates a requested sheet does not exist.
var ErrSheetNotFound = workbook.ErrSheetNotFound

// ErrDuplicateHeader indicates a header row repeats a field name under
// DuplicateReject.
var ErrDuplicateHeader = errors.New("duplicate header field")

// ImportError represents an error while importing a file.
type ImportError struct {
	Path  string
	Sheet string
	Op    string // "load", "sheet", "rows", "header"
	Kind  error
	Err   error
}

func (e *ImportError) Error() string {
	msg := fmt.Sprintf("import %q", e.Path)
	if e.Sheet != "" {
		msg += fmt.Sprintf(" sheet %q", e.Sheet)
	}
	if e.Err == nil || errors.Is(e.Err, e.Kind) {
		return fmt.Sprintf("%s (%s): %v", msg, e.Op, e.errOrKind())
	}
	return fmt.Sprintf("%s (%s): %v: %v", msg, e.Op, e.Kind, e.Err)
}

func (e *ImportError) errOrKind() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Unwrap exposes both the error kind and the underlying cause.
func (e *ImportError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewImportError creates a new ImportError.
func NewImportError(path, sheet, op string, kind, err error) *ImportError {
	return &ImportError{
		Path:  path,
		Sheet: sheet,
		Op:    op,
		Kind:  kind,
		Err:   err,
	}
}

package sheetimport

import "strconv"

// SheetID identifies a sheet in a Result: either a SheetName or a SheetIndex.
type SheetID interface {
	String() string
	isSheetID()
}

// SheetName identifies a sheet by its name.
type SheetName string

func (n SheetName) String() string { return string(n) }
func (SheetName) isSheetID()       {}

// SheetIndex identifies a sheet by its zero-based position.
type SheetIndex int

func (i SheetIndex) String() string { return strconv.Itoa(int(i)) }
func (SheetIndex) isSheetID()       {}

// Selector chooses which sheets to import.
type Selector struct {
	only   string
	single bool
	ids    []SheetID
}

// All selects every sheet.
func All() Selector {
	return Selector{}
}

// Only selects one sheet by name. The result is that sheet's data, not a
// keyed collection.
func Only(name string) Selector {
	return Selector{only: name, single: true}
}

// Names selects a set of sheets by name. Use with KeySheetsByName.
func Names(names ...string) Selector {
	ids := make([]SheetID, len(names))
	for i, n := range names {
		ids[i] = SheetName(n)
	}
	return Selector{ids: ids}
}

// Indexes selects a set of sheets by zero-based index. Use with
// KeySheetsByName set to false.
func Indexes(indexes ...int) Selector {
	ids := make([]SheetID, len(indexes))
	for i, n := range indexes {
		ids[i] = SheetIndex(n)
	}
	return Selector{ids: ids}
}

// IsSingle reports whether the selector names exactly one sheet via Only.
func (s Selector) IsSingle() bool {
	return s.single
}

// Name returns the sheet name given to Only.
func (s Selector) Name() string {
	return s.only
}

// IDs returns the identifiers of a set selector.
func (s Selector) IDs() []SheetID {
	return append([]SheetID(nil), s.ids...)
}

// Includes reports whether a sheet with the given identifier is selected.
// An empty set selects everything.
func (s Selector) Includes(id SheetID) bool {
	if len(s.ids) == 0 {
		return true
	}
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

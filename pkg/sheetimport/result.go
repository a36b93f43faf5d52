package sheetimport

import "github.com/moxuandi/sheetimport/pkg/sheetimport/models"

// Result holds imported sheet data.
//
// When a single sheet was imported (via Only, or because the workbook has
// just one sheet) the result is collapsed: Single is set and Sheets is nil.
// Otherwise Sheets maps each selected sheet's identifier to its data, and
// Order lists the identifiers in workbook order.
type Result struct {
	Single *models.SheetData
	Sheets map[SheetID]*models.SheetData
	Order  []SheetID
}

// Collapsed reports whether the result is a single sheet's data.
func (r *Result) Collapsed() bool {
	return r.Single != nil
}

// Sheet looks up a sheet in a keyed result.
func (r *Result) Sheet(id SheetID) (*models.SheetData, bool) {
	s, ok := r.Sheets[id]
	return s, ok
}

// Each calls fn for every keyed sheet in workbook order.
func (r *Result) Each(fn func(id SheetID, sheet *models.SheetData)) {
	for _, id := range r.Order {
		fn(id, r.Sheets[id])
	}
}

func (r *Result) add(id SheetID, sheet *models.SheetData) {
	if r.Sheets == nil {
		r.Sheets = make(map[SheetID]*models.SheetData)
	}
	r.Sheets[id] = sheet
	r.Order = append(r.Order, id)
}

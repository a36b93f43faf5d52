package models

// SheetData represents the imported contents of a single sheet.
//
// Exactly one of Rows or Records is populated: Rows when the header row was
// kept as data, Records (with Header) when it was promoted to field names.
type SheetData struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name" yaml:"name"`
	// Index is the zero-based position of the sheet in the workbook.
	Index int `json:"index" yaml:"index"`
	// Rows contains the raw grid.
	Rows []Row `json:"rows,omitempty" yaml:"rows,omitempty"`
	// Header lists the promoted field names in column order.
	Header []string `json:"header,omitempty" yaml:"header,omitempty"`
	// Records contains one entry per data row below the header.
	Records []Record `json:"records,omitempty" yaml:"records,omitempty"`
}

// Labeled reports whether the header row was promoted.
func (s *SheetData) Labeled() bool {
	return s.Header != nil
}

// Len returns the number of data rows or records.
func (s *SheetData) Len() int {
	if s.Labeled() {
		return len(s.Records)
	}
	return len(s.Rows)
}

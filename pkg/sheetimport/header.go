package sheetimport

import (
	"fmt"

	"github.com/moxuandi/sheetimport/pkg/sheetimport/models"
)

// PromoteHeader removes the first row and uses its cells as field names for
// every following row. Fields are paired by position: values beyond the
// header are dropped, and fields beyond a short row are absent from its
// record. When a name repeats, the right-most column wins.
//
// The returned header keeps every name in column order, duplicates included.
func PromoteHeader(rows []models.Row) ([]string, []models.Record) {
	if len(rows) == 0 {
		return nil, nil
	}

	header := append([]string(nil), rows[0].Cells...)
	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		n := min(len(header), len(row.Cells))
		record := make(models.Record, n)
		for i := 0; i < n; i++ {
			record[header[i]] = row.Cells[i]
		}
		records = append(records, record)
	}
	return header, records
}

// PromoteHeaderStrict is PromoteHeader but fails with ErrDuplicateHeader if
// the header row repeats a non-empty field name. Blank header cells, such as
// columns padded out to the sheet width, are not checked.
func PromoteHeaderStrict(rows []models.Row) ([]string, []models.Record, error) {
	if len(rows) > 0 {
		seen := make(map[string]int, len(rows[0].Cells))
		for i, name := range rows[0].Cells {
			if name == "" {
				continue
			}
			if prev, ok := seen[name]; ok {
				return nil, nil, fmt.Errorf("%w: %q in columns %d and %d", ErrDuplicateHeader, name, prev+1, i+1)
			}
			seen[name] = i
		}
	}
	header, records := PromoteHeader(rows)
	return header, records, nil
}

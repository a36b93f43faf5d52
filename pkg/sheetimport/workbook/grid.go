package workbook

// PadRows makes every row width columns long, filling with empty strings.
// Rows already wider than width are left untouched, and width grows to the
// widest row when it is smaller. The input slice is modified in place.
func PadRows(rows [][]string, width int) [][]string {
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return rows
}

// ExtendRows appends empty rows until the grid has height rows.
func ExtendRows(rows [][]string, height int) [][]string {
	for len(rows) < height {
		rows = append(rows, nil)
	}
	return rows
}

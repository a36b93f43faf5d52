package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testdata/negatives.xls: one sheet "第1页", rows 1-2 blank, labels in
// column A from row 3 and amounts in column B.
func TestOpenXLS(t *testing.T) {
	wb, err := Open(filepath.Join("testdata", "negatives.xls"), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, wb.SheetCount())
	assert.Equal(t, []string{"第1页"}, wb.SheetNames())

	byName, err := wb.SheetByName("第1页")
	require.NoError(t, err)
	byIndex, err := wb.SheetByIndex(0)
	require.NoError(t, err)
	active, err := wb.ActiveSheet()
	require.NoError(t, err)
	for _, sheet := range []Sheet{byName, byIndex, active} {
		assert.Equal(t, "第1页", sheet.Name())
		assert.Equal(t, 0, sheet.Index())
	}

	rows, err := byName.Rows()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)

	width := len(rows[0])
	assert.GreaterOrEqual(t, width, 2)
	for i, row := range rows {
		assert.Len(t, row, width, "row %d", i+1)
	}
	assert.Equal(t, "", rows[0][0])
	assert.Equal(t, "日期", rows[2][0])
	assert.Equal(t, "上一交易日实有货币资金余额", rows[3][0])
	assert.NotEmpty(t, rows[3][1])

	_, err = wb.SheetByName("Sheet1")
	assert.ErrorIs(t, err, ErrSheetNotFound)
	_, err = wb.SheetByIndex(1)
	assert.ErrorIs(t, err, ErrSheetNotFound)

	assert.NoError(t, wb.Close())
}

func TestOpenXLS_NotXLS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xls")
	require.NoError(t, writeFile(path, []byte("a,b\n1,2\n")))

	_, err := OpenXLS(path, LoadOptions{})
	assert.Error(t, err)
}

type stubRow struct {
	first, last int
	cells       map[int]string
}

func (r stubRow) FirstCol() int    { return r.first }
func (r stubRow) LastCol() int     { return r.last }
func (r stubRow) Col(i int) string { return r.cells[i] }

func TestXLSGrid(t *testing.T) {
	stored := map[int]xlsRow{
		0: stubRow{first: 0, last: 2, cells: map[int]string{0: "id", 1: "name"}},
		// row 1 has no record
		2: stubRow{first: 1, last: 1, cells: map[int]string{1: "b"}},
		3: stubRow{first: 0, last: 3, cells: map[int]string{3: "d"}},
	}
	rows := xlsGrid(4, func(i int) xlsRow { return stored[i] })

	assert.Equal(t, [][]string{
		{"id", "name", "", ""},
		{"", "", "", ""},
		{"", "b", "", ""},
		{"", "", "", "d"},
	}, rows)
}

func TestXLSGrid_Empty(t *testing.T) {
	assert.Nil(t, xlsGrid(0, func(int) xlsRow { return nil }))
}

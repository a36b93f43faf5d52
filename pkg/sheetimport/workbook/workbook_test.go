package workbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func TestOpen_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, writeFile(path, []byte("hello")))

	_, err := Open(path, LoadOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOpen_MissingFile(t *testing.T) {
	for _, name := range []string{"missing.xlsx", "missing.xls", "missing.csv"} {
		_, err := Open(filepath.Join(t.TempDir(), name), LoadOptions{})
		assert.Error(t, err, name)
	}
}

func TestRegister_CustomExtension(t *testing.T) {
	Register("TXT2", OpenCSV)
	t.Cleanup(func() {
		registryMu.Lock()
		delete(registry, ".txt2")
		registryMu.Unlock()
	})

	assert.Contains(t, SupportedFormats(), ".txt2")

	path := filepath.Join(t.TempDir(), "data.txt2")
	require.NoError(t, writeFile(path, []byte("a,b\n1,2\n")))

	wb, err := Open(path, LoadOptions{})
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, []string{"data"}, wb.SheetNames())
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	for _, ext := range []string{".csv", ".tsv", ".xls", ".xlsm", ".xlsx"} {
		assert.Contains(t, formats, ext)
	}
}

func TestPadRows(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}, {"d"}, nil}
	rows = PadRows(rows, 0)

	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "", ""}, {"", "", ""}}, rows)
}

func TestPadRows_Width(t *testing.T) {
	rows := PadRows([][]string{{"a"}}, 3)
	assert.Equal(t, [][]string{{"a", "", ""}}, rows)
}

func TestExtendRows(t *testing.T) {
	rows := ExtendRows([][]string{{"a"}}, 3)
	assert.Len(t, rows, 3)
	assert.Nil(t, rows[2])

	rows = ExtendRows(rows, 1)
	assert.Len(t, rows, 3)
}

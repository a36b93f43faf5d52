package workbook

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	build(f)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

func TestOpenXLSX_Rows(t *testing.T) {
	path := writeXLSX(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Header1")
		f.SetCellValue("Sheet1", "B1", "Header2")
		f.SetCellValue("Sheet1", "A2", 100)
		f.SetCellValue("Sheet1", "B2", 200.5)
		f.SetCellValue("Sheet1", "A3", "Text")
	})

	wb, err := Open(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	if wb.SheetCount() != 1 {
		t.Fatalf("Expected 1 sheet, got %d", wb.SheetCount())
	}

	sheet, err := wb.SheetByName("Sheet1")
	if err != nil {
		t.Fatalf("SheetByName failed: %v", err)
	}
	rows, err := sheet.Rows()
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0][0])
	}
	if rows[1][0] != "100" || rows[1][1] != "200.5" {
		t.Errorf("Expected formatted numbers, got %v", rows[1])
	}
	// Row 3 only has column A but is padded to the sheet width.
	if len(rows[2]) != 2 || rows[2][1] != "" {
		t.Errorf("Expected row 3 padded to 2 cells, got %q", rows[2])
	}
}

func TestOpenXLSX_Sheets(t *testing.T) {
	path := writeXLSX(t, func(f *excelize.File) {
		f.NewSheet("Second")
		idx, _ := f.NewSheet("Third")
		f.SetActiveSheet(idx)
		f.SetCellValue("Second", "A1", "x")
	})

	wb, err := OpenXLSX(path, LoadOptions{})
	if err != nil {
		t.Fatalf("OpenXLSX failed: %v", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	expected := []string{"Sheet1", "Second", "Third"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Sheet %d: expected %q, got %q", i, expected[i], names[i])
		}
	}

	second, err := wb.SheetByIndex(1)
	if err != nil {
		t.Fatalf("SheetByIndex failed: %v", err)
	}
	if second.Name() != "Second" || second.Index() != 1 {
		t.Errorf("Unexpected sheet %q at %d", second.Name(), second.Index())
	}

	active, err := wb.ActiveSheet()
	if err != nil {
		t.Fatalf("ActiveSheet failed: %v", err)
	}
	if active.Name() != "Third" {
		t.Errorf("Expected active sheet 'Third', got %q", active.Name())
	}

	if _, err := wb.SheetByName("Missing"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
	if _, err := wb.SheetByIndex(3); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
}

func TestOpenXLSX_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := writeFile(path, []byte("not a zip archive")); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path, LoadOptions{}); err == nil {
		t.Error("Expected error opening corrupt file")
	}
}

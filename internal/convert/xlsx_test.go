// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tealeg/xlsx/v3"
)

// writeWorkbook builds an XLSX file with one sheet per entry; each entry
// is a grid of cell values.
func writeWorkbook(t *testing.T, path string, sheets map[string][][]string) {
	t.Helper()
	wb := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := wb.AddSheet(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, cells := range rows {
			row := sheet.AddRow()
			for _, v := range cells {
				row.AddCell().SetString(v)
			}
		}
	}
	if err := wb.Save(path); err != nil {
		t.Fatal(err)
	}
}

func TestExcelConverter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"Stock": {
			{"Name", "Qty"},
			{"Widget", "4"},
			{"Gadget", "7"},
		},
	})

	got, err := (&ExcelConverter{}).Convert(path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(got, "## Stock") {
		t.Errorf("output should contain a sheet heading, got:\n%s", got)
	}
	if !strings.Contains(got, "| Name | Qty |") {
		t.Errorf("output should contain the header row, got:\n%s", got)
	}
	if !strings.Contains(got, "| --- | --- |") {
		t.Errorf("output should contain the header separator, got:\n%s", got)
	}
	if !strings.Contains(got, "| Widget | 4 |") || !strings.Contains(got, "| Gadget | 7 |") {
		t.Errorf("output should contain the data rows, got:\n%s", got)
	}
}

func TestExcelConverterEscapesCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"Notes": {
			{"a|b", "line one\nline two"},
		},
	})

	got, err := (&ExcelConverter{}).Convert(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `a\|b`) {
		t.Errorf("pipes should be escaped, got:\n%s", got)
	}
	if strings.Contains(got, "line one\nline two") {
		t.Errorf("cell newlines should be flattened, got:\n%s", got)
	}
}

func TestExcelConverterCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("this is not a workbook"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := (&ExcelConverter{}).Convert(path)
	if err == nil {
		t.Fatal("conversion should fail")
	}
	var ce *ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("error should be a *ConversionError, got %T", err)
	}
	if ce.Path != path {
		t.Errorf("error path = %q, want %q", ce.Path, path)
	}
}

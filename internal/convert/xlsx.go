// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tealeg/xlsx/v3"
)

// ExcelConverter converts XLSX workbooks. Each sheet becomes a ##
// section holding one Markdown table, with the first row treated as the
// header.
type ExcelConverter struct{}

func (c *ExcelConverter) Convert(path string) (string, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return "", &ConversionError{Path: path, Err: fmt.Errorf("opening workbook: %w", err)}
	}
	if len(wb.Sheets) == 0 {
		return "", &ConversionError{Path: path, Err: errors.New("workbook has no sheets")}
	}

	var out strings.Builder
	for i, sheet := range wb.Sheets {
		if i > 0 {
			out.WriteString("\n")
		}
		fmt.Fprintf(&out, "## %s\n\n", sheet.Name)

		rowIdx := 0
		err := sheet.ForEachRow(func(row *xlsx.Row) error {
			var cells []string
			if err := row.ForEachCell(func(cell *xlsx.Cell) error {
				cells = append(cells, escapeCell(cell.String()))
				return nil
			}); err != nil {
				return err
			}
			if len(cells) == 0 {
				return nil
			}
			out.WriteString("| " + strings.Join(cells, " | ") + " |\n")
			if rowIdx == 0 {
				out.WriteString("|" + strings.Repeat(" --- |", len(cells)) + "\n")
			}
			rowIdx++
			return nil
		})
		if err != nil {
			return "", &ConversionError{Path: path, Err: fmt.Errorf("reading sheet %s: %w", sheet.Name, err)}
		}
	}
	return out.String(), nil
}

// escapeCell keeps cell text from breaking the table row: pipes are
// escaped and newlines flattened to spaces.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

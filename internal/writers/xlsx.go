// internal/writers/xlsx.go
package writers

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"protdom/internal/report"
)

func init() {
	Register(".xlsx", WriteXLSX)
}

// maxSheetName is the spreadsheet format's sheet name limit.
const maxSheetName = 31

// WriteXLSX writes each table to its own sheet, auto-fitting column
// widths to the data.
func WriteXLSX(path string, tables []report.Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, t := range tables {
		name := sheetName(t.Name, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("writers: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("writers: %w", err)
		}
		if err := writeSheet(f, name, t); err != nil {
			return fmt.Errorf("writers: sheet %s: %w", name, err)
		}
	}
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, name string, t report.Table) error {
	if err := f.SetSheetRow(name, "A1", asRow(t.Columns)); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, asRow(row)); err != nil {
			return err
		}
	}
	return fitColumns(f, name, t)
}

// fitColumns sizes each column to its longest value plus a little air.
func fitColumns(f *excelize.File, name string, t report.Table) error {
	for j, col := range t.Columns {
		width := len(col)
		for _, row := range t.Rows {
			if j < len(row) && len(row[j]) > width {
				width = len(row[j])
			}
		}
		letter, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, letter, letter, float64(width+2)); err != nil {
			return err
		}
	}
	return nil
}

func asRow(values []string) *[]interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return &row
}

func sheetName(name string, i int) string {
	if name == "" {
		return fmt.Sprintf("Sheet%d", i+1)
	}
	if len(name) > maxSheetName {
		return name[:maxSheetName]
	}
	return name
}

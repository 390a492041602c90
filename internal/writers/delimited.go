// internal/writers/delimited.go
package writers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"protdom/internal/report"
)

func init() {
	Register(".csv", func(path string, tables []report.Table) error {
		return writeDelimitedFile(path, ',', tables)
	})
	Register(".tsv", func(path string, tables []report.Table) error {
		return writeDelimitedFile(path, '\t', tables)
	})
}

// WriteDelimited serializes one table as delimited text: header then rows.
func WriteDelimited(w io.Writer, comma rune, t report.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeDelimitedFile refuses multi-table layouts: delimited text has no
// sheet concept. config.Validate rejects that combination up front, so
// hitting this error means a wiring bug.
func writeDelimitedFile(path string, comma rune, tables []report.Table) error {
	if len(tables) != 1 {
		return fmt.Errorf("writers: delimited output holds a single table, got %d", len(tables))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDelimited(f, comma, tables[0]); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

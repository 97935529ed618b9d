// Package report renders a batch report as a spreadsheet: one row per
// successfully indexed compound, row label = compound name, one column
// per index identifier in the canonical order, values rounded to three
// decimals upstream. Failed compounds are excluded from the table; they
// remain visible in the edge-relations document.
package report

import (
	"fmt"

	"github.com/molvath/topochem/batch"
	"github.com/molvath/topochem/indices"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the index table.
const SheetName = "Indices"

// nameHeader labels the row-name column.
const nameHeader = "drug"

// Row is one table row: a compound name plus its ten index values in
// Keys() order.
type Row struct {
	Name   string
	Values []float64
}

// Build assembles the table header and rows from a report, skipping
// failure records. Row order follows the report order (lexicographic by
// name by construction).
func Build(rep batch.Report) (header []string, rows []Row) {
	header = append([]string{nameHeader}, indices.Keys()...)
	var rec batch.Record
	for _, rec = range rep {
		if rec.Err != "" || rec.Indices == nil {
			continue
		}
		row := Row{Name: rec.Name, Values: make([]float64, 0, 10)}
		var key string
		for _, key = range indices.Keys() {
			val, _ := rec.Indices.Get(key)
			row.Values = append(row.Values, val)
		}
		rows = append(rows, row)
	}

	return header, rows
}

// WriteXLSX writes the table to an xlsx workbook at path.
func WriteXLSX(path string, rep batch.Report) error {
	header, rows := Build(rep)

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet is renamed rather than adding a second one.
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}

	var col, line int
	var cell string
	var err error
	for col = range header {
		if cell, err = excelize.CoordinatesToCellName(col+1, 1); err != nil {
			return fmt.Errorf("report: header cell: %w", err)
		}
		if err = f.SetCellValue(SheetName, cell, header[col]); err != nil {
			return fmt.Errorf("report: write header: %w", err)
		}
	}

	for line = range rows {
		if cell, err = excelize.CoordinatesToCellName(1, line+2); err != nil {
			return fmt.Errorf("report: name cell: %w", err)
		}
		if err = f.SetCellValue(SheetName, cell, rows[line].Name); err != nil {
			return fmt.Errorf("report: write name: %w", err)
		}
		for col = range rows[line].Values {
			if cell, err = excelize.CoordinatesToCellName(col+2, line+2); err != nil {
				return fmt.Errorf("report: value cell: %w", err)
			}
			if err = f.SetCellValue(SheetName, cell, rows[line].Values[col]); err != nil {
				return fmt.Errorf("report: write value: %w", err)
			}
		}
	}

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save workbook: %w", err)
	}

	return nil
}

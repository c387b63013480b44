// Package measure - CSV report writer.
//
// No retrieved example repo imports a CSV library, so the report is
// written with stdlib encoding/csv, semicolon-delimited.
package measure

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{
	"Vertex count",
	"Instance name",
	"Optimal cost",
	"Computed cost",
	"Time [us]",
	"Error [%]",
}

// WriteCSV writes header then one row per element of rows to w, semicolon-delimited,
// matching the column order WriteCSV's header declares.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.VertexCount),
			row.InstanceName,
			optionalInt(row.HasOptimal, row.OptimalCost),
			strconv.Itoa(row.ComputedCost),
			fmt.Sprintf("%.2f", row.TimeMicros),
			optionalPercent(row.HasError, row.ErrorPercent),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func optionalInt(has bool, v int) string {
	if !has {
		return ""
	}
	return strconv.Itoa(v)
}

func optionalPercent(has bool, v float64) string {
	if !has {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}

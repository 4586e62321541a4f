// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/linear/pkg/util/humanizeutil"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v2"
)

// tableDisplayFormat identifies one of the result display formats.
type tableDisplayFormat int

const (
	tableDisplayTable tableDisplayFormat = iota
	tableDisplayTSV
	tableDisplayCSV
	tableDisplayRecords
	tableDisplayYAML
)

var tableDisplayFormatNames = map[tableDisplayFormat]string{
	tableDisplayTable:   "table",
	tableDisplayTSV:     "tsv",
	tableDisplayCSV:     "csv",
	tableDisplayRecords: "records",
	tableDisplayYAML:    "yaml",
}

// Type implements the pflag.Value interface.
func (f *tableDisplayFormat) Type() string { return "string" }

// String implements the pflag.Value interface.
func (f *tableDisplayFormat) String() string { return tableDisplayFormatNames[*f] }

// Set implements the pflag.Value interface.
func (f *tableDisplayFormat) Set(s string) error {
	for k, name := range tableDisplayFormatNames {
		if name == s {
			*f = k
			return nil
		}
	}
	return errors.Newf("invalid table display format: %s "+
		"(possible values: table, tsv, csv, records, yaml)", s)
}

// printQueryOutput writes the rows under the given column names to w in
// the requested display format.
func printQueryOutput(
	w io.Writer, cols []string, allRows [][]string, displayFormat tableDisplayFormat,
) error {
	switch displayFormat {
	case tableDisplayTable:
		// Initialize tablewriter and set column names as the header row.
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader(cols)
		for _, row := range allRows {
			expanded := make([]string, len(row))
			for i, r := range row {
				expanded[i] = expandTabsAndNewLines(r)
			}
			table.Append(expanded)
		}
		table.Render()
		fmt.Fprintf(w, "(%s)\n", humanizeutil.Rows(int64(len(allRows))))

	case tableDisplayTSV, tableDisplayCSV:
		csvWriter := csv.NewWriter(w)
		if displayFormat == tableDisplayTSV {
			csvWriter.Comma = '\t'
		}
		if err := csvWriter.Write(cols); err != nil {
			return err
		}
		return csvWriter.WriteAll(allRows)

	case tableDisplayRecords:
		maxColWidth := 0
		for _, col := range cols {
			colLen := utf8.RuneCountInString(col)
			if colLen > maxColWidth {
				maxColWidth = colLen
			}
		}
		for i, row := range allRows {
			fmt.Fprintf(w, "-[ RECORD %d ]\n", i+1)
			for j, r := range row {
				lines := strings.Split(r, "\n")
				for l, line := range lines {
					colLabel := cols[j]
					if l > 0 {
						colLabel = ""
					}
					fmt.Fprintf(w, "%-*s | %s\n", maxColWidth, colLabel, line)
				}
			}
		}

	case tableDisplayYAML:
		records := make([]yaml.MapSlice, 0, len(allRows))
		for _, row := range allRows {
			rec := make(yaml.MapSlice, len(row))
			for j, r := range row {
				rec[j] = yaml.MapItem{Key: cols[j], Value: r}
			}
			records = append(records, rec)
		}
		out, err := yaml.Marshal(records)
		if err != nil {
			return errors.Wrap(err, "rendering yaml")
		}
		_, err = w.Write(out)
		return err

	default:
		return errors.AssertionFailedf("unknown display format %d", displayFormat)
	}
	return nil
}

// expandTabsAndNewLines ensures that multi-line values are properly
// indented in the table.
func expandTabsAndNewLines(s string) string {
	var buf strings.Builder
	for _, c := range s {
		switch c {
		case '\t':
			buf.WriteString("  ")
		case '\n':
			buf.WriteString("\n  ")
		default:
			buf.WriteRune(c)
		}
	}
	return buf.String()
}

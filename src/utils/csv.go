package utils

import (
	"bytes"
	"strings"
)

// CSVColumn describes one exported column. Quoted columns are wrapped in
// double quotes verbatim: embedded quotes and commas are not escaped, which
// is the format the inventory exports have always produced.
type CSVColumn struct {
	Header string
	Quoted bool
}

// BuildCSV renders a header row followed by one line per record.
func BuildCSV(columns []CSVColumn, records [][]string) []byte {
	var buf bytes.Buffer

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	buf.WriteString(strings.Join(headers, ","))
	buf.WriteString("\n")

	for _, record := range records {
		fields := make([]string, len(columns))
		for i, col := range columns {
			var value string
			if i < len(record) {
				value = record[i]
			}
			if col.Quoted {
				value = `"` + value + `"`
			}
			fields[i] = value
		}
		buf.WriteString(strings.Join(fields, ","))
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

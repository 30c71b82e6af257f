package tabular

import "strings"

// Row maps header names to field values for a single data row.
type Row map[string]string

// Lookup returns the first non-empty value among keys, in order.
// It reports false when every key is missing or blank.
func (r Row) Lookup(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// Table is a parsed document with its header preserved in column order.
type Table struct {
	Header []string
	Rows   []Row
}

// minFields is the smallest raw field count for a data row to be kept.
const minFields = 2

// Parse splits text into header-keyed rows. It never fails.
func Parse(text string) []Row {
	return ParseTable(text).Rows
}

// ParseTable is like [Parse] but also returns the header in column order.
func ParseTable(text string) Table {
	records := split(text)
	if len(records) == 0 {
		return Table{}
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < minFields {
			continue
		}
		row := make(Row, len(header))
		for j, name := range header {
			var v string
			if j < len(rec) {
				v = rec[j]
			}
			row[name] = strings.TrimSpace(v)
		}
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}
}

// split tokenizes text into raw records of untrimmed fields.
// Quote, comma and line-break bytes are ASCII, so scanning bytes is safe
// for UTF-8 input.
func split(text string) [][]string {
	var (
		records [][]string
		record  []string
		field   strings.Builder
		quoted  bool
	)
	endField := func() {
		record = append(record, field.String())
		field.Reset()
	}
	endRecord := func() {
		records = append(records, record)
		record = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if quoted {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
				} else {
					quoted = false
				}
			} else {
				field.WriteByte(c)
			}
			continue
		}

		switch c {
		case '"':
			quoted = true
		case ',':
			endField()
		case '\n', '\r':
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endField()
			endRecord()
		default:
			field.WriteByte(c)
		}
	}

	endField()
	endRecord()
	return records
}

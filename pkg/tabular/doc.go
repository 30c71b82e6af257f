// Package tabular parses loosely formatted comma-separated text into rows of
// named fields.
//
// The parser is deliberately forgiving. It never returns an error for
// malformed input; instead it recovers the most plausible reading:
//
//   - Fields are separated by commas and may be quoted with '"'.
//   - Inside a quoted field, a doubled quote ("") is one literal quote, and
//     commas and line breaks are kept verbatim.
//   - Outside quotes, "\n", "\r\n" and a lone "\r" each end a row.
//   - An unterminated quote consumes the rest of the input as one field.
//   - The last row is kept even without a trailing line break.
//
// The first row is the header. Its trimmed values become the keys of every
// following [Row]. Rows with fewer than two raw fields (typically blank
// lines) are dropped, field values are trimmed, and header columns missing
// from a short row map to "".
//
//	rows := tabular.Parse("id,brand\nbb54,Tudor\n")
//	rows[0]["brand"] // "Tudor"
package tabular

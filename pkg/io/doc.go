// Package io reads structured catalog documents and exports datasets.
//
// # Import
//
// [ReadRows] decodes a JSON or YAML document into [tabular.Row] values so
// structured sources flow through the same normalizer as delimited text.
// Two document shapes are accepted:
//
//	[{"brand": "Tudor", "model": "Black Bay 54", "l2l_mm": 46, ...}, ...]
//
//	{"records": [{"brand": "Tudor", ...}, ...]}
//
// Scalar values are converted to their textual form; nested objects and
// arrays are ignored. Numbers keep their literal representation, so
// "46.0" in the document stays "46.0" in the row.
//
// # Export
//
// [WriteJSON] serializes a [catalog.Dataset] as an indented JSON document
// in the second shape above, with the generation ID, source name and load
// time alongside the records. Exported files can be read back with
// [ReadRows] and normalized into identical records.
package io

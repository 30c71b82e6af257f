// Package source resolves the active catalog from an ordered list of
// external data sources.
//
// # Sources
//
// A [Source] produces raw rows. Three kinds are provided:
//
//   - [Tabular]: comma-separated text, parsed with [tabular.Parse]
//   - [Structured]: a JSON or YAML array of mappings, decoded with [io.ReadRows]
//   - [Mongo]: documents from a MongoDB collection
//
// Tabular and structured sources read their content through a [Fetcher],
// which loads local files or http(s) URLs.
//
// # Resolution
//
// [Resolver.Resolve] tries sources strictly in order, one at a time. Each
// attempt fetches, parses, normalizes and filters to valid records; the
// first source yielding at least one valid record wins and later sources
// are not tried. Every failure is recorded as an [Attempt] and logged,
// never returned. When no source succeeds, or when the resolver is
// offline, the embedded [catalog.Fallback] dataset is used, so a
// resolution always holds at least two records.
//
// Each source is attempted exactly once per resolution; there are no
// retries and results are not cached.
//
// [io.ReadRows]: github.com/matzehuels/wristscale/pkg/io.ReadRows
package source

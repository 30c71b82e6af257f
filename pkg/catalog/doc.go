// Package catalog defines the canonical item record compared by wristscale
// and the in-memory working set those records live in.
//
// # Records
//
// A [Record] is produced by [Normalize] from one loosely structured input
// row. Normalize is total: it accepts any row and always returns a record,
// resolving each measurement from a priority list of field aliases and
// treating missing, blank and unparseable values alike as absent.
//
// Only records passing [Record.Valid] (width and diameter both positive)
// may enter a working set. Filtering is the caller's job; see the source
// package's resolver.
//
// # Working set
//
// A [Dataset] is an immutable, ordered snapshot of valid records. The
// [WorkingSet] holds the active dataset behind a single atomic pointer so a
// reload swaps the whole set at once and readers always observe either the
// old or the new dataset in full.
//
// # Fallback
//
// [Fallback] returns the embedded dataset used when no external source
// yields usable records. Its validity is asserted when the package loads.
package catalog

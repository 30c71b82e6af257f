// Package styles defines the color themes shared by every render sink.
//
// A [Theme] is a flat palette: page background, the rounded container the
// items are drawn on, label colors, the error fill used when an item's
// image cannot be loaded, and the outline of empty boxes. Switching theme
// changes only colors; geometry is computed independently in package
// layout.
package styles

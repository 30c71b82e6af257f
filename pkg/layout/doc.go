// Package layout computes scale-accurate comparison geometry for two items.
//
// # Scale
//
// The canvas is defined to represent a fixed physical width, the viewport
// (200 mm by default). Every layout shares one scale factor:
//
//	pxPerMm = canvasWidth / viewportMm
//
// so two items drawn in the same [Geometry] are at true relative size
// regardless of how many pixels the canvas has.
//
// # Modes
//
// [Compute] supports three placement policies:
//
//   - [SideBySide]: both items at mid-height, offset left and right of the
//     canvas center by a fixed gap, labels centered above each box.
//   - [Touching]: boxes sized by max(width, diameter) and placed so they
//     meet at the canvas center, labels facing outward.
//   - [Overlapped]: both boxes on the canvas center, the left item behind
//     at reduced opacity, labels placed where side-by-side would put them.
//
// # Purity
//
// Compute is a pure function of its arguments. It never fails: unknown
// modes fall back to side-by-side and a non-positive viewport falls back
// to [DefaultViewportMm]. Asset-load failures downstream change only how a
// box is filled, never the geometry.
package layout

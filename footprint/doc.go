// Package footprint generates boolean structuring elements (neighborhood
// masks) for grayscale morphology.
//
// 🚀 What is a footprint?
//
//	An N-dimensional boolean mask with an implicit center at
//	floor(extent/2) per axis (even extents tie-break toward the lower
//	index). Offsets() turns the mask into the set of integer offset
//	vectors the gray kernel reduces over.
//
// ✨ Shipped factories:
//
//   - Square(n), Rectangle(rows, cols) — filled boxes (the decomposable
//     shapes the 2-D fast path recognizes)
//   - Diamond(r) — |dy|+|dx| ≤ r
//   - Disk(r)    — dy²+dx² ≤ r²
//   - Star(a)    — union of a centered square and its 45°-rotated hull
//   - Cube(n)    — filled 3-D box
//   - Cross(rank) — radius-1 N-D cross, the default footprint of every
//     gray operation
//
// Every factory guarantees at least one set cell. Mirror() returns the
// point reflection about the center, used by opening/closing for their
// second stage.
package footprint

// Package gray implements grayscale morphological operations over
// N-dimensional numeric arrays: erosion, dilation, opening, closing,
// white tophat and black tophat.
//
// 🚀 What is grayscale morphology?
//
//	Each output pixel is the minimum (erosion) or maximum (dilation) of
//	the input over a spatially-offset neighborhood — the footprint. The
//	composites follow: opening removes small bright features, closing
//	fills small dark ones, the tophats isolate features smaller than the
//	footprint.
//
// ✨ Key guarantees:
//
//   - Same shape and element type in and out, for every rank ≥ 1
//   - Out-of-range neighbors never constrain the reduction: reads past
//     the edge contribute the dtype/operation identity value
//   - Caller-supplied output buffers are safe even when they alias the
//     input or are strided views — every pass reduces into a fresh
//     scratch buffer first
//   - A 2-D fast path (separable filled rectangles) and the generic N-D
//     reducer produce bit-identical results; the dispatch is per call
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/graymorph/footprint"
//	  "github.com/katalvlaran/graymorph/gray"
//	)
//
//	fp, _ := footprint.Disk(3)
//	opened, err := gray.Opening(img, fp, nil) // nil out ⇒ fresh buffer
//
// Offset convention:
//
//	Erosion and dilation both reduce over the footprint offsets directly
//	(cell − floor-center, no reflection). Opening and closing apply the
//	point-mirrored footprint in their second stage, which restores the
//	adjunction property for even-sized footprints. For symmetric
//	footprints the mirror is a no-op.
//
// Complexity: O(size · active-cells) for the generic reducer; the 2-D
// fast path runs two separable 1-D passes for filled rectangles.
package gray

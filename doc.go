// Package graymorph computes grayscale morphological operations — erosion,
// dilation, opening, closing and the two tophats — over N-dimensional
// numeric arrays with arbitrary boolean structuring elements.
//
// 🚀 What is graymorph?
//
//	A pure-Go morphology kernel that brings together:
//		• ndarray/   — generic N-D numeric arrays with strided views
//		• footprint/ — structuring-element factories (square, disk, diamond, star, …)
//		• gray/      — the morphology kernel itself (min/max neighborhood reduction)
//		• grey/      — deprecated alias of gray, kept for compatibility
//		• imgutil/   — dtype conversion, grayscale image I/O, downscaling
//
// ✨ Why choose graymorph?
//
//   - Exact semantics – boundary handling and even-footprint centering
//     pinned by literal test fixtures, not textbook prose
//   - Total – every array rank ≥ 1, every integer and float element type
//   - Safe – caller-supplied output buffers (even strided views over the
//     input) never corrupt a pass; scratch buffers are acquired per call
//   - Pure Go – no cgo, no GPU, no hidden global state
//
// Quick example:
//
//	img, _ := ndarray.FromFlat([]uint8{5, 6, 2, 7, 2, 2, 3, 5, 1}, 3, 3)
//	dil, _ := gray.Dilation(img, nil, nil) // nil footprint ⇒ radius-1 cross
//
// Dive into gray/doc.go for the operation contracts and into DESIGN.md for
// the boundary-convention rationale.
//
//	go get github.com/katalvlaran/graymorph/gray
package graymorph

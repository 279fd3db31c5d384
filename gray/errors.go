// SPDX-License-Identifier: MIT
// Package: gray
//
// errors.go — sentinel errors for the morphology kernel.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • All conditions are detected before the reduction pass starts: an
//     operation either fails fast or writes a complete result, never a
//     partial one.
//   • Implementations attach method context with %w wrapping.

package gray

import "errors"

var (
	// ErrShapeMismatch indicates a caller-supplied output buffer whose
	// shape differs from the image shape.
	ErrShapeMismatch = errors.New("gray: output buffer shape must equal image shape")

	// ErrUnsupportedInput indicates a nil image or a footprint with zero
	// set cells.
	ErrUnsupportedInput = errors.New("gray: unsupported input")

	// ErrRankMismatch indicates a footprint whose rank differs from the
	// image rank. The generic reducer itself is total for every rank >= 1,
	// so rank errors surface only from this pairing check.
	ErrRankMismatch = errors.New("gray: footprint rank must equal image rank")
)

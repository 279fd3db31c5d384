// Package imgutil hosts the collaborators around the morphology kernel:
// element-type conversion, grayscale image decode/encode and downscaling.
//
// The kernel itself (package gray) is dtype-generic and pure; everything
// that touches pixels-as-files or re-quantizes values lives here:
//
//   - AsUbyte / AsUint16 — float64 in [0,1] to fixed-width unsigned, by
//     monotone rounding (so min/max reductions commute with the encoding)
//   - UbyteToFloat64 / Uint16ToFloat64 — the inverse scalings
//   - FromBool — boolean data as a uint8 0/1 view; emits a one-time
//     precision notice because boundary conventions of boolean morphology
//     are inherited from the unsigned zero-padding rule
//   - DecodeGray / EncodePNG — PNG/JPEG to Array[uint8] and back, using
//     BT.601 luminance weights
//   - Resize — Catmull-Rom resampling via golang.org/x/image/draw
//   - DownscaleLocalMean — N-D block mean with zero padding
package imgutil

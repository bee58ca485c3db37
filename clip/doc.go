// SPDX-License-Identifier: EPL-2.0

// Package clip implements frame-accurate editing of loaded audio segments.
//
// A Segment is an immutable run of interleaved audio frames with a fixed
// sample rate and channel count. Two concrete types implement it:
//
//   - PCM holds decoded, interleaved 16-bit samples. It is produced by the
//     decode backend after any input format has been normalized.
//   - Raw holds untouched PCM frame bytes at the source sample width. It is
//     produced by the raw backend for linear-PCM WAV inputs and guarantees a
//     bit-perfect copy of the kept frames.
//
// # Operations
//
// Each editing operation takes millisecond boundaries, validates them
// against the segment duration, and returns a new segment:
//
//	out, err := seg.CutFront(5000)        // drop the first 5 seconds
//	out, err := seg.CutBack(5000)         // drop the last 5 seconds
//	out, err := seg.CutMiddle(60000, 150000) // drop 1:00..2:30
//	out, err := seg.Extract(60000, 150000)   // keep only 1:00..2:30
//
// # Boundary conversion
//
// Millisecond boundaries map to frame indices by truncation:
//
//	frame = ms * rate / 1000
//
// Two boundaries closer together than one sample period can therefore map
// to the same frame. This keeps output lengths predictable across both
// backends and matches how the tool has always behaved; it is intentional
// and must not be replaced with rounding.
//
// CutMiddle joins the two kept parts by plain concatenation. There is no
// crossfade or click suppression at the splice point.
package clip

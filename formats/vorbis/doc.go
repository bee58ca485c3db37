// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into the audio.Source
// interface using jfreymuth/oggvorbis. The library already produces
// interleaved float32 samples, so decoding is a thin frame-to-sample
// adaptation. Decode-only; there is no Vorbis encoder in the cutter.
package vorbis

// SPDX-License-Identifier: EPL-2.0

// Package wav provides both WAV backends of the cutter.
//
// Decoder is the streaming decode-backend codec: it scans the RIFF chunk
// list, accepts 16-bit linear PCM, and yields normalized float32 samples
// through the audio.Source interface. Encoder is its counterpart for
// writing 16-bit PCM output via go-audio.
//
// LoadRaw and WriteRaw form the raw backend: a linear-PCM WAV file of
// any common bit depth (8/16/24/32) is loaded as untouched frame bytes,
// cut at frame boundaries, and written back with a fresh canonical
// header. Samples are never requantized on this path.
package wav

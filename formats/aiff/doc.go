// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes and encodes AIFF files for the cutter using
// go-audio/aiff. Decoding accepts 16-bit PCM and yields normalized
// float32 samples through the audio.Source interface; Encoder writes
// 16-bit PCM AIFF output for the decode backend.
package aiff

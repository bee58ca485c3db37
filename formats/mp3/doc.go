// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into the audio.Source interface using
// hajimehoshi/go-mp3. Output is always stereo 16-bit PCM normalized to
// float32; there is no MP3 encoder, so MP3 is a decode-only input
// format for the cutter.
package mp3

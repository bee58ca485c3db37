// SPDX-License-Identifier: EPL-2.0

// Package audcut removes or extracts contiguous time ranges from audio
// files with frame accuracy.
//
// # Backends
//
// Two backends load input into an editable segment:
//
//   - The decode backend handles WAV, MP3, Ogg Vorbis and AIFF through a
//     registry of streaming decoders. Samples are normalized to 16-bit
//     PCM, optionally resampled or downmixed, and output is encoded as
//     WAV or AIFF.
//   - The raw backend handles linear-PCM WAV of any common bit depth
//     (8/16/24/32) without requantizing a single sample. It always
//     writes a WAV container.
//
// # Quick Start
//
//	seg, err := audcut.Open("input.mp3", audcut.Options{})
//	if err != nil {
//	    return err
//	}
//
//	// Drop the first ten seconds
//	out, err := seg.CutFront(10_000)
//	if err != nil {
//	    return err
//	}
//
//	path, err := audcut.Save(out, "output.wav", "")
//
// # Editing Operations
//
// Segments support four operations, all taking millisecond boundaries:
// CutFront, CutBack, CutMiddle and Extract. See the clip package for
// their exact boundary semantics — in particular, millisecond
// boundaries map to frames by truncation.
//
// # Time Strings
//
// The timefmt package parses the boundary strings used by the CLI
// (5s, 500ms, 15m, 1:30, 1:23:45, bare seconds) into milliseconds.
//
// # Processing Pipeline
//
// For more control over loading, build the pipeline from the audio
// subpackage directly:
//
//	decoder := wav.Decoder{}
//	src, _ := decoder.Decode(file)
//	resampled := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(resampled)
//	seg, _ := audcut.Collect(mono, audcut.Options{})
//
// See the individual subpackages for more detailed documentation.
package audcut

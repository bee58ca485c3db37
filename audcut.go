// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/clip"
	"github.com/ik5/audcut/formats/aiff"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/formats/vorbis"
	"github.com/ik5/audcut/formats/wav"
)

// Options control how Open loads an input file.
type Options struct {
	// Rate resamples the stream to this sample rate before editing.
	// Forces the decode backend.
	Rate int
	// Mono downmixes to one channel before editing. Forces the decode
	// backend.
	Mono bool
	// BufferSize for pipeline reads; 0 means a 4096-sample default.
	BufferSize int
}

// DefaultRegistry returns a registry with every built-in codec
// registered. MP3 and Ogg Vorbis are decode-only.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.RegisterEncoder("wav", wav.Encoder{})
	reg.RegisterEncoder("aiff", aiff.Encoder{})
	return reg
}

// FormatKey normalizes a format name or file extension to a registry
// key: lowercased, leading dot stripped, common aliases folded.
func FormatKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, "."))
	switch key {
	case "aif", "aifc":
		return "aiff"
	case "oga":
		return "ogg"
	}
	return key
}

// Open loads path into an editable segment.
//
// Plain PCM WAV inputs take the raw backend: frames are kept bit-perfect
// at their source width and the eventual output is always a WAV file.
// Everything else — and any input when opts request resampling or
// downmixing — goes through the decode backend, which normalizes the
// stream to 16-bit PCM via the format registry.
func Open(path string, opts Options) (clip.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio file not found: %w", err)
	}
	defer f.Close()

	key := FormatKey(filepath.Ext(path))

	if key == "wav" && opts.Rate == 0 && !opts.Mono {
		seg, err := wav.LoadRaw(f)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return seg, nil
	}

	dec, ok := DefaultRegistry().Get(key)
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, audio.ErrUnsupportedFormat)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	seg, err := Collect(src, opts)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return seg, nil
}

// Save writes seg to path and returns the path actually written.
//
// Decoded segments are encoded with the registry encoder selected by
// format, or by the output extension when format is empty. Raw segments
// always produce a linear-PCM WAV file and force a .wav suffix on the
// output path, whatever format was requested.
func Save(seg clip.Segment, path, format string) (string, error) {
	switch s := seg.(type) {
	case *clip.Raw:
		if FormatKey(filepath.Ext(path)) != "wav" {
			path = strings.TrimSuffix(path, filepath.Ext(path)) + ".wav"
		}

		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()

		if err := wav.WriteRaw(f, s.SampleRate(), s.Channels(), s.SampleWidth(), s.Data()); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		return path, nil

	case *clip.PCM:
		key := FormatKey(format)
		if key == "" {
			key = FormatKey(filepath.Ext(path))
		}

		enc, ok := DefaultRegistry().GetEncoder(key)
		if !ok {
			return "", fmt.Errorf("%q: %w", key, audio.ErrUnsupportedFormat)
		}

		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()

		if err := enc.Encode(f, s.Data(), s.SampleRate(), s.Channels()); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		return path, nil
	}

	return "", fmt.Errorf("cannot save segment of type %T", seg)
}

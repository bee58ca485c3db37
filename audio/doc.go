// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives the cutter is
// built from.
//
// This package contains the building blocks shared by all format
// backends:
//   - Source interface for streaming decoded audio
//   - Decoder and Encoder interfaces for format codecs
//   - Registry for codec registration by format key
//   - Resampler for sample rate conversion
//   - MonoMixer for channel downmixing
//
// # Source Interface
//
// The Source interface is the foundation of the decode backend:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders return a Source, and the processing stages
// (Resampler, MonoMixer) both consume and implement it, so they can be
// chained into pipelines before the stream is collected into a segment.
//
// # Sample Format
//
// Decoded samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - ±1.0 represents maximum amplitude
//
// The normalized format lets processing stages ignore source bit depths.
// The raw backend bypasses this package entirely to keep samples
// bit-perfect.
//
// # Registry
//
// The registry maps format keys to codecs:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.RegisterEncoder("wav", wav.Encoder{})
//	decoder, ok := registry.Get("wav")
//
// A format may be decode-only; looking up a missing codec reports
// ErrUnsupportedFormat at the caller.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio

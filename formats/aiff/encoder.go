// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// Encoder writes decoded segments as 16-bit PCM AIFF files via
// go-audio. The container sizes are patched on Close, so the writer
// must support seeking. Implements audio.Encoder.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, samples []int16, sampleRate, channels int) error {
	enc := aiff.NewEncoder(w, sampleRate, 16, channels)

	buf := &goaudio.IntBuffer{
		Data: make([]int, len(samples)),
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

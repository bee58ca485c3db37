// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/clip"
	"github.com/ik5/audcut/utils"
)

// Collect drains src into an in-memory 16-bit PCM segment, optionally
// resampling and downmixing on the way.
//
// The pipeline mirrors how the processing stages chain:
//
//  1. Resample to opts.Rate via cubic interpolation, when requested
//  2. Downmix to mono by channel averaging, when requested
//  3. Read everything, converting float32 samples to int16 PCM
//
// A trailing partial frame from a truncated stream is dropped so the
// result always holds whole frames.
func Collect(src audio.Source, opts Options) (*clip.PCM, error) {
	out := src
	if opts.Rate > 0 && opts.Rate != src.SampleRate() {
		out = audio.NewResampler(out, opts.Rate)
	}
	if opts.Mono && out.Channels() > 1 {
		out = audio.NewMonoMixer(out)
	}

	bufSize := opts.BufferSize
	if bufSize == 0 {
		bufSize = 4096
	}

	var pcm []int16
	buf := make([]float32, bufSize)

	for {
		n, err := out.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm = append(pcm, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	channels := out.Channels()
	pcm = pcm[:len(pcm)/channels*channels]

	seg, err := clip.NewPCM(pcm, out.SampleRate(), channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return seg, nil
}

// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audcut/utils"
)

// Resampler streams from src at a new sample rate using cubic
// interpolation over a four-frame window. Works on interleaved samples
// and preserves the channel count. A one-pole low-pass is applied when
// downsampling to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[1] and window[2] bracket the current position; window[0]
	// and window[3] feed the cubic curve.
	window    [4][]float32
	haveFrame [4]bool
	primed    bool
	eof       bool

	// pos is the fractional position between window[1] and window[2].
	pos float64

	frameBuf []float32

	lowpass bool
	lpState []float32
	lpAlpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frameBuf: make([]float32, channels),
		lowpass:  step > 1.0,
		lpAlpha:  0.5,
		lpState:  make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one source frame into dst, optionally low-pass
// filtered.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.frameBuf)
	if n > 0 {
		copy(dst, r.frameBuf[:n])
		if r.lowpass {
			for c := 0; c < r.channels; c++ {
				dst[c] = r.lpAlpha*dst[c] + (1-r.lpAlpha)*r.lpState[c]
				r.lpState[c] = dst[c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		return n > 0, nil
	}
	if err != nil {
		return n > 0, fmt.Errorf("%w", err)
	}

	return n > 0, nil
}

// prime fills the initial window. The first source frame lands in
// window[1] so output at position zero starts exactly on it; it is
// duplicated into window[0] to back the left edge of the cubic curve.
// Short sources duplicate their last frame into the remaining slots.
func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	r.haveFrame[1] = true

	copy(r.window[0], r.window[1])
	r.haveFrame[0] = true
	if r.lowpass {
		// Seed the filter with the first frame to avoid a warm-up
		// transient.
		copy(r.lpState, r.window[1])
	}

	for i := 2; i < len(r.window); i++ {
		if r.eof {
			break
		}

		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		if ok {
			r.haveFrame[i] = true
		}
	}

	last := 1
	for i := 2; i < len(r.window); i++ {
		if r.haveFrame[i] {
			last = i
			continue
		}
		copy(r.window[i], r.window[last])
		r.haveFrame[i] = true
	}

	r.primed = true
	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.haveFrame[0] = r.haveFrame[1]
	r.haveFrame[1] = r.haveFrame[2]
	r.haveFrame[2] = r.haveFrame[3]

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		r.haveFrame[3] = false
		if r.eof && !r.haveFrame[2] {
			return io.EOF
		}
	} else {
		r.haveFrame[3] = true
	}

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.haveFrame[1] || !r.haveFrame[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		frac := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y1 := r.window[1][c]
			y2 := r.window[2][c]

			y0 := y1
			if r.haveFrame[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.haveFrame[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

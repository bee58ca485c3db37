// SPDX-License-Identifier: EPL-2.0

package clip

// Raw is a bit-perfect segment holding interleaved PCM frames as raw
// bytes, preserving the source sample width (1, 2, 3 or 4 bytes per
// sample). It is the segment type produced by the raw backend, which
// never requantizes samples.
type Raw struct {
	data        []byte
	sampleRate  int
	channels    int
	sampleWidth int // bytes per sample
}

// NewRaw wraps interleaved PCM frame bytes as an editable segment.
// len(data) must be a multiple of channels*sampleWidth.
func NewRaw(data []byte, sampleRate, channels, sampleWidth int) (*Raw, error) {
	if sampleRate <= 0 {
		return nil, ErrBadRate
	}
	if channels <= 0 {
		return nil, ErrBadChannels
	}
	if sampleWidth < 1 || sampleWidth > 4 {
		return nil, ErrBadSampleWidth
	}
	if len(data)%(channels*sampleWidth) != 0 {
		return nil, ErrUnalignedData
	}

	return &Raw{
		data:        data,
		sampleRate:  sampleRate,
		channels:    channels,
		sampleWidth: sampleWidth,
	}, nil
}

func (r *Raw) SampleRate() int  { return r.sampleRate }
func (r *Raw) Channels() int    { return r.channels }
func (r *Raw) SampleWidth() int { return r.sampleWidth }
func (r *Raw) Frames() int      { return len(r.data) / r.frameSize() }

// Duration in whole milliseconds, truncated. Recomputed from the byte
// length, so it reflects the actual frames held, not the boundaries the
// segment was cut at.
func (r *Raw) Duration() int { return DurationOf(r.Frames(), r.sampleRate) }

// Data returns the interleaved frame bytes. Callers must not modify the
// returned slice.
func (r *Raw) Data() []byte { return r.data }

// frameSize is the byte length of one frame.
func (r *Raw) frameSize() int { return r.channels * r.sampleWidth }

// CutFront removes durationMS from the start and keeps the rest.
func (r *Raw) CutFront(durationMS int) (Segment, error) {
	if err := checkCut(durationMS, r.Duration()); err != nil {
		return nil, err
	}

	start := FrameAt(durationMS, r.sampleRate)
	return r.slice(start, r.Frames()), nil
}

// CutBack removes durationMS from the end and keeps the rest.
func (r *Raw) CutBack(durationMS int) (Segment, error) {
	if err := checkCut(durationMS, r.Duration()); err != nil {
		return nil, err
	}

	keep := r.Frames() - FrameAt(durationMS, r.sampleRate)
	return r.slice(0, keep), nil
}

// CutMiddle removes [startMS, endMS) and joins the remaining parts.
// The join is a plain byte concatenation at a frame boundary, with no
// crossfade or click suppression.
func (r *Raw) CutMiddle(startMS, endMS int) (Segment, error) {
	if err := checkRange(startMS, endMS, r.Duration()); err != nil {
		return nil, err
	}

	fs := r.frameSize()
	start := FrameAt(startMS, r.sampleRate) * fs
	end := FrameAt(endMS, r.sampleRate) * fs

	out := make([]byte, 0, len(r.data)-(end-start))
	out = append(out, r.data[:start]...)
	out = append(out, r.data[end:]...)

	return &Raw{
		data:        out,
		sampleRate:  r.sampleRate,
		channels:    r.channels,
		sampleWidth: r.sampleWidth,
	}, nil
}

// Extract keeps only [startMS, endMS).
func (r *Raw) Extract(startMS, endMS int) (Segment, error) {
	if err := checkRange(startMS, endMS, r.Duration()); err != nil {
		return nil, err
	}

	start := FrameAt(startMS, r.sampleRate)
	end := FrameAt(endMS, r.sampleRate)
	return r.slice(start, end), nil
}

// slice copies frames [from, to) into a new Raw.
func (r *Raw) slice(from, to int) *Raw {
	fs := r.frameSize()
	out := make([]byte, (to-from)*fs)
	copy(out, r.data[from*fs:to*fs])

	return &Raw{
		data:        out,
		sampleRate:  r.sampleRate,
		channels:    r.channels,
		sampleWidth: r.sampleWidth,
	}
}

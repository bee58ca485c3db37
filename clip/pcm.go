// SPDX-License-Identifier: EPL-2.0

package clip

// PCM is a decoded segment holding interleaved 16-bit samples. It is the
// segment type produced by the decode backend, where any supported input
// format has been normalized to int16 PCM.
type PCM struct {
	data       []int16
	sampleRate int
	channels   int
}

// NewPCM wraps interleaved 16-bit samples as an editable segment.
// len(data) must be a multiple of channels.
func NewPCM(data []int16, sampleRate, channels int) (*PCM, error) {
	if sampleRate <= 0 {
		return nil, ErrBadRate
	}
	if channels <= 0 {
		return nil, ErrBadChannels
	}
	if len(data)%channels != 0 {
		return nil, ErrUnalignedData
	}

	return &PCM{
		data:       data,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (p *PCM) SampleRate() int { return p.sampleRate }
func (p *PCM) Channels() int   { return p.channels }
func (p *PCM) Frames() int     { return len(p.data) / p.channels }

// Duration in whole milliseconds, truncated.
func (p *PCM) Duration() int { return DurationOf(p.Frames(), p.sampleRate) }

// Data returns the interleaved samples. Callers must not modify the
// returned slice.
func (p *PCM) Data() []int16 { return p.data }

// CutFront removes durationMS from the start and keeps the rest.
func (p *PCM) CutFront(durationMS int) (Segment, error) {
	if err := checkCut(durationMS, p.Duration()); err != nil {
		return nil, err
	}

	start := FrameAt(durationMS, p.sampleRate)
	return p.slice(start, p.Frames()), nil
}

// CutBack removes durationMS from the end and keeps the rest.
func (p *PCM) CutBack(durationMS int) (Segment, error) {
	if err := checkCut(durationMS, p.Duration()); err != nil {
		return nil, err
	}

	keep := p.Frames() - FrameAt(durationMS, p.sampleRate)
	return p.slice(0, keep), nil
}

// CutMiddle removes [startMS, endMS) and joins the remaining parts.
// The join is a plain sample concatenation with no crossfade.
func (p *PCM) CutMiddle(startMS, endMS int) (Segment, error) {
	if err := checkRange(startMS, endMS, p.Duration()); err != nil {
		return nil, err
	}

	start := FrameAt(startMS, p.sampleRate) * p.channels
	end := FrameAt(endMS, p.sampleRate) * p.channels

	out := make([]int16, 0, len(p.data)-(end-start))
	out = append(out, p.data[:start]...)
	out = append(out, p.data[end:]...)

	return &PCM{data: out, sampleRate: p.sampleRate, channels: p.channels}, nil
}

// Extract keeps only [startMS, endMS).
func (p *PCM) Extract(startMS, endMS int) (Segment, error) {
	if err := checkRange(startMS, endMS, p.Duration()); err != nil {
		return nil, err
	}

	start := FrameAt(startMS, p.sampleRate)
	end := FrameAt(endMS, p.sampleRate)
	return p.slice(start, end), nil
}

// slice copies frames [from, to) into a new PCM.
func (p *PCM) slice(from, to int) *PCM {
	out := make([]int16, (to-from)*p.channels)
	copy(out, p.data[from*p.channels:to*p.channels])

	return &PCM{data: out, sampleRate: p.sampleRate, channels: p.channels}
}

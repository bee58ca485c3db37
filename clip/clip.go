// SPDX-License-Identifier: EPL-2.0

package clip

// Segment is a fully loaded, immutable run of interleaved audio frames.
// Editing operations never mutate the receiver; each returns a freshly
// allocated Segment of the same concrete type.
type Segment interface {
	// SampleRate of the audio in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Frames is the number of frames (one sample per channel).
	Frames() int
	// Duration in whole milliseconds, truncated.
	Duration() int

	// CutFront removes durationMS from the start and keeps the rest.
	CutFront(durationMS int) (Segment, error)
	// CutBack removes durationMS from the end and keeps the rest.
	CutBack(durationMS int) (Segment, error)
	// CutMiddle removes [startMS, endMS) and joins the two remaining parts.
	CutMiddle(startMS, endMS int) (Segment, error)
	// Extract keeps only [startMS, endMS).
	Extract(startMS, endMS int) (Segment, error)
}

// FrameAt converts a millisecond boundary to a frame index at rate.
// The conversion truncates, so two boundaries closer than one sample
// period can land on the same frame. Output lengths depend on this
// truncation; do not switch to rounding.
func FrameAt(ms, rate int) int {
	return int(int64(ms) * int64(rate) / 1000)
}

// DurationOf returns the whole milliseconds covered by frames at rate,
// truncated.
func DurationOf(frames, rate int) int {
	return int(int64(frames) * 1000 / int64(rate))
}

// checkCut validates a front/back cut length against the total duration.
func checkCut(durationMS, totalMS int) error {
	if durationMS <= 0 {
		return ErrDurationNotPositive
	}
	if durationMS >= totalMS {
		return ErrDurationTooLong
	}
	return nil
}

// checkRange validates a [startMS, endMS) range against the total duration.
func checkRange(startMS, endMS, totalMS int) error {
	if startMS < 0 || endMS < 0 {
		return ErrNegativeBound
	}
	if startMS >= endMS {
		return ErrStartNotBeforeEnd
	}
	if endMS > totalMS {
		return ErrEndPastAudio
	}
	return nil
}

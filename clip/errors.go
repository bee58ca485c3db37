// SPDX-License-Identifier: EPL-2.0

package clip

import "errors"

var (
	// ErrDurationNotPositive indicates a cut length of zero or less.
	ErrDurationNotPositive = errors.New("duration must be positive")

	// ErrDurationTooLong indicates a cut length that covers the whole audio.
	ErrDurationTooLong = errors.New("duration cannot be longer than the audio")

	// ErrNegativeBound indicates a negative start or end time.
	ErrNegativeBound = errors.New("start and end times must be non-negative")

	// ErrStartNotBeforeEnd indicates start >= end.
	ErrStartNotBeforeEnd = errors.New("start time must be before end time")

	// ErrEndPastAudio indicates an end time beyond the audio length.
	ErrEndPastAudio = errors.New("end time cannot be beyond the audio length")

	// ErrBadRate indicates a sample rate of zero or less.
	ErrBadRate = errors.New("sample rate must be positive")

	// ErrBadChannels indicates a channel count of zero or less.
	ErrBadChannels = errors.New("channel count must be positive")

	// ErrBadSampleWidth indicates a sample width outside 1..4 bytes.
	ErrBadSampleWidth = errors.New("sample width must be between 1 and 4 bytes")

	// ErrUnalignedData indicates sample data that does not divide into
	// whole frames.
	ErrUnalignedData = errors.New("sample data must divide into whole frames")
)

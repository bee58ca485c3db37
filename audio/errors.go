// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnsupportedFormat indicates a format key with no registered
	// decoder or encoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

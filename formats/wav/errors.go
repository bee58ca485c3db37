package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCM16Supported   = errors.New("only PCM 16-bit supported")

	// ErrNotLinearPCM indicates a WAV container holding compressed
	// audio, which the raw backend cannot slice.
	ErrNotLinearPCM = errors.New("WAV data is not linear PCM")
)

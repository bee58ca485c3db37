// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audcut/clip"
)

// LoadRaw reads a linear-PCM WAV file into a bit-perfect segment,
// keeping the source sample width (8, 16, 24 or 32 bit). Unlike the
// streaming Decoder, nothing is normalized through float32, so cutting
// a raw segment and writing it back reproduces the kept frames exactly.
func LoadRaw(r io.ReadSeeker) (*clip.Raw, error) {
	dec := gowav.NewDecoder(r)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 {
		return nil, ErrNotLinearPCM
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	width := int(dec.BitDepth) / 8
	data := make([]byte, len(buf.Data)*width)
	for i, v := range buf.Data {
		putSample(data[i*width:], v, width)
	}

	raw, err := clip.NewRaw(data, buf.Format.SampleRate, buf.Format.NumChannels, width)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return raw, nil
}

// putSample writes one sample little-endian at the given byte width.
func putSample(dst []byte, v, width int) {
	switch width {
	case 1:
		dst[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case 3:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	}
}

// WriteRaw writes interleaved PCM frame bytes as a canonical WAV file
// without touching the sample data. frames must already be packed
// little-endian at sampleWidth bytes per sample.
func WriteRaw(w io.Writer, sampleRate, channels, sampleWidth int, frames []byte) error {
	byteRate := uint32(sampleRate * channels * sampleWidth)
	blockAlign := uint16(channels * sampleWidth)
	dataSize := uint32(len(frames))
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(sampleWidth*8))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := w.Write(frames); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

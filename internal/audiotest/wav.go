// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// BuildWAV returns an in-memory canonical linear-PCM WAV file holding
// the given interleaved samples at the requested bit depth. Samples are
// truncated to the depth, packed little-endian. The builder is
// self-contained so format packages can test against fixtures that were
// not produced by the code under test.
func BuildWAV(sampleRate, channels, bitsPerSample int, samples []int) []byte {
	width := bitsPerSample / 8
	buf := new(bytes.Buffer)

	byteRate := uint32(sampleRate * channels * width)
	blockAlign := uint16(channels * width)
	dataSize := uint32(len(samples) * width)
	riffSize := 36 + dataSize

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, v := range samples {
		for b := 0; b < width; b++ {
			buf.WriteByte(byte(v >> (8 * b)))
		}
	}

	return buf.Bytes()
}

// BuildWAV16 is BuildWAV for the common 16-bit case.
func BuildWAV16(sampleRate, channels int, samples []int16) []byte {
	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s)
	}
	return BuildWAV(sampleRate, channels, 16, ints)
}

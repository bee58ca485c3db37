package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/utils"
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	// stream is PCM 16-bit little-endian
	buf []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return cap(s.buf) / 2 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	n, err := io.ReadFull(s.r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(buf[2*i:]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if samples == 0 {
		return 0, io.EOF
	}

	return samples, nil
}

type Decoder struct{}

// Decode scans the RIFF chunk list for fmt and data chunks and returns a
// streaming source over the data chunk. Only 16-bit linear PCM streams
// are accepted; other depths go through the raw loader instead.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	var riffHdr [12]byte
	if _, err := io.ReadFull(r, riffHdr[:]); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if string(riffHdr[:4]) != "RIFF" || string(riffHdr[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	var (
		haveFmt    bool
		sampleRate int
		channels   int
	)

	for {
		var chunkHdr [8]byte
		if _, err := io.ReadFull(r, chunkHdr[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrUnsupportedWavLayout
			}
			return nil, fmt.Errorf("%w", err)
		}

		id := string(chunkHdr[:4])
		size := binary.LittleEndian.Uint32(chunkHdr[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w", err)
			}

			audioFormat := binary.LittleEndian.Uint16(body[0:2])
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample := int(binary.LittleEndian.Uint16(body[14:16]))

			if audioFormat != 1 || bitsPerSample != 16 {
				return nil, ErrOnlyPCM16Supported
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, ErrUnsupportedWavLayout
			}
			return &wavSource{
				r:          io.LimitReader(r, int64(size)),
				sampleRate: sampleRate,
				channels:   channels,
				buf:        make([]byte, 4096),
			}, nil

		default:
			// Skip unknown chunks (LIST, fact, cue, ...), honoring the
			// RIFF padding byte on odd sizes.
			skip := int64(size)
			if size%2 == 1 {
				skip++
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, ErrUnsupportedWavLayout
			}
		}
	}
}

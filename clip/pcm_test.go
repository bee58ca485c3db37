// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"errors"
	"testing"
)

// newTestPCM builds a mono segment where sample i holds the value i,
// so slices are easy to verify.
func newTestPCM(t *testing.T, rate, channels, frames int) *PCM {
	t.Helper()

	data := make([]int16, frames*channels)
	for i := range data {
		data[i] = int16(i)
	}

	p, err := NewPCM(data, rate, channels)
	if err != nil {
		t.Fatalf("NewPCM() error = %v", err)
	}
	return p
}

func TestNewPCM_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []int16
		rate     int
		channels int
		wantErr  error
	}{
		{name: "zero rate", data: []int16{0, 0}, rate: 0, channels: 1, wantErr: ErrBadRate},
		{name: "negative rate", data: []int16{0, 0}, rate: -8000, channels: 1, wantErr: ErrBadRate},
		{name: "zero channels", data: []int16{0, 0}, rate: 8000, channels: 0, wantErr: ErrBadChannels},
		{name: "unaligned stereo", data: []int16{0, 0, 0}, rate: 8000, channels: 2, wantErr: ErrUnalignedData},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewPCM(tt.data, tt.rate, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewPCM() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPCM_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rate   int
		frames int
		want   int
	}{
		{name: "one second", rate: 8000, frames: 8000, want: 1000},
		{name: "truncates", rate: 8000, frames: 8003, want: 1000},
		{name: "half second stereo rate", rate: 44100, frames: 22050, want: 500},
		{name: "empty", rate: 8000, frames: 0, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newTestPCM(t, tt.rate, 1, tt.frames)
			if got := p.Duration(); got != tt.want {
				t.Errorf("Duration() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPCM_CutFront(t *testing.T) {
	t.Parallel()

	// 1 second at 1000Hz mono: frame i == sample value i.
	p := newTestPCM(t, 1000, 1, 1000)

	out, err := p.CutFront(250)
	if err != nil {
		t.Fatalf("CutFront() error = %v", err)
	}

	if out.Frames() != 750 {
		t.Errorf("CutFront(250).Frames() = %d, want 750", out.Frames())
	}
	if out.Duration() != 750 {
		t.Errorf("CutFront(250).Duration() = %d, want 750", out.Duration())
	}

	got := out.(*PCM).Data()
	if got[0] != 250 || got[len(got)-1] != 999 {
		t.Errorf("CutFront(250) kept samples %d..%d, want 250..999", got[0], got[len(got)-1])
	}

	// Source is untouched.
	if p.Frames() != 1000 {
		t.Errorf("source Frames() = %d after cut, want 1000", p.Frames())
	}
}

func TestPCM_CutFront_Guards(t *testing.T) {
	t.Parallel()

	p := newTestPCM(t, 1000, 1, 1000)

	tests := []struct {
		name    string
		d       int
		wantErr error
	}{
		{name: "zero", d: 0, wantErr: ErrDurationNotPositive},
		{name: "negative", d: -5, wantErr: ErrDurationNotPositive},
		{name: "equal to duration", d: 1000, wantErr: ErrDurationTooLong},
		{name: "beyond duration", d: 5000, wantErr: ErrDurationTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := p.CutFront(tt.d); !errors.Is(err, tt.wantErr) {
				t.Errorf("CutFront(%d) error = %v, want %v", tt.d, err, tt.wantErr)
			}
			if _, err := p.CutBack(tt.d); !errors.Is(err, tt.wantErr) {
				t.Errorf("CutBack(%d) error = %v, want %v", tt.d, err, tt.wantErr)
			}
		})
	}
}

func TestPCM_CutBack(t *testing.T) {
	t.Parallel()

	p := newTestPCM(t, 1000, 1, 1000)

	out, err := p.CutBack(250)
	if err != nil {
		t.Fatalf("CutBack() error = %v", err)
	}

	got := out.(*PCM).Data()
	if len(got) != 750 {
		t.Fatalf("CutBack(250) kept %d samples, want 750", len(got))
	}
	if got[0] != 0 || got[749] != 749 {
		t.Errorf("CutBack(250) kept samples %d..%d, want 0..749", got[0], got[749])
	}
}

func TestPCM_CutMiddle(t *testing.T) {
	t.Parallel()

	p := newTestPCM(t, 1000, 1, 1000)

	out, err := p.CutMiddle(200, 300)
	if err != nil {
		t.Fatalf("CutMiddle() error = %v", err)
	}

	got := out.(*PCM).Data()
	if len(got) != 900 {
		t.Fatalf("CutMiddle(200,300) kept %d samples, want 900", len(got))
	}

	// The splice point joins 199 directly to 300.
	if got[199] != 199 || got[200] != 300 {
		t.Errorf("splice = %d|%d, want 199|300", got[199], got[200])
	}
}

func TestPCM_CutMiddle_Guards(t *testing.T) {
	t.Parallel()

	p := newTestPCM(t, 1000, 1, 1000)

	tests := []struct {
		name       string
		start, end int
		wantErr    error
	}{
		{name: "negative start", start: -1, end: 100, wantErr: ErrNegativeBound},
		{name: "negative end", start: 0, end: -100, wantErr: ErrNegativeBound},
		{name: "start equals end", start: 5, end: 5, wantErr: ErrStartNotBeforeEnd},
		{name: "start after end", start: 300, end: 200, wantErr: ErrStartNotBeforeEnd},
		{name: "end past audio", start: 0, end: 1001, wantErr: ErrEndPastAudio},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := p.CutMiddle(tt.start, tt.end); !errors.Is(err, tt.wantErr) {
				t.Errorf("CutMiddle(%d,%d) error = %v, want %v", tt.start, tt.end, err, tt.wantErr)
			}
			if _, err := p.Extract(tt.start, tt.end); !errors.Is(err, tt.wantErr) {
				t.Errorf("Extract(%d,%d) error = %v, want %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestPCM_Extract(t *testing.T) {
	t.Parallel()

	p := newTestPCM(t, 1000, 1, 1000)

	out, err := p.Extract(200, 300)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	got := out.(*PCM).Data()
	if len(got) != 100 {
		t.Fatalf("Extract(200,300) kept %d samples, want 100", len(got))
	}
	if got[0] != 200 || got[99] != 299 {
		t.Errorf("Extract(200,300) kept samples %d..%d, want 200..299", got[0], got[99])
	}
}

func TestPCM_ExtractPlusCutMiddleCoverSource(t *testing.T) {
	t.Parallel()

	// For any valid range, the extracted part and the remainder must
	// together account for every source frame.
	p := newTestPCM(t, 44100, 2, 44100)

	ranges := [][2]int{
		{0, 1},
		{1, 999},
		{250, 750},
		{999, 1000},
		{0, 1000},
		{333, 334},
	}

	for _, r := range ranges {
		r := r
		ex, err := p.Extract(r[0], r[1])
		if err != nil {
			t.Fatalf("Extract(%d,%d) error = %v", r[0], r[1], err)
		}
		rem, err := p.CutMiddle(r[0], r[1])
		if err != nil {
			t.Fatalf("CutMiddle(%d,%d) error = %v", r[0], r[1], err)
		}

		if got := ex.Frames() + rem.Frames(); got != p.Frames() {
			t.Errorf("range %v: extract %d + remainder %d = %d frames, want %d",
				r, ex.Frames(), rem.Frames(), got, p.Frames())
		}
	}
}

func TestPCM_CutFrontDurationProperty(t *testing.T) {
	t.Parallel()

	p := newTestPCM(t, 44100, 1, 44100) // one second

	for _, d := range []int{1, 10, 333, 500, 999} {
		d := d
		out, err := p.CutFront(d)
		if err != nil {
			t.Fatalf("CutFront(%d) error = %v", d, err)
		}

		want := p.Duration() - d
		diff := out.Duration() - want
		if diff < -1 || diff > 1 {
			t.Errorf("CutFront(%d).Duration() = %d, want %d ±1", d, out.Duration(), want)
		}
	}
}

func TestFrameAt_Truncates(t *testing.T) {
	t.Parallel()

	// At 44100Hz one millisecond is 44.1 frames; boundaries differing
	// by less than a sample period can map to the same frame.
	if got := FrameAt(1, 44100); got != 44 {
		t.Errorf("FrameAt(1, 44100) = %d, want 44", got)
	}
	if got := FrameAt(999, 8000); got != 7992 {
		t.Errorf("FrameAt(999, 8000) = %d, want 7992", got)
	}
	if got := FrameAt(0, 44100); got != 0 {
		t.Errorf("FrameAt(0, 44100) = %d, want 0", got)
	}
}

func TestPCM_StereoFrameAlignment(t *testing.T) {
	t.Parallel()

	p := newTestPCM(t, 1000, 2, 1000)

	out, err := p.Extract(100, 200)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	got := out.(*PCM).Data()
	if len(got)%2 != 0 {
		t.Fatalf("stereo extract produced %d samples, not frame aligned", len(got))
	}

	// Frame 100 holds samples 200,201.
	if got[0] != 200 || got[1] != 201 {
		t.Errorf("first frame = %d,%d, want 200,201", got[0], got[1])
	}
}

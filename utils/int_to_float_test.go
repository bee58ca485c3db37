// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int16
		want  float32
	}{
		{name: "zero", input: 0, want: 0.0},
		{name: "max positive", input: math.MaxInt16, want: 32767.0 / 32768.0},
		{name: "max negative", input: math.MinInt16, want: -1.0},
		{name: "half positive", input: 16384, want: 0.5},
		{name: "half negative", input: -16384, want: -0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Int16ToFloat32(tt.input)
			if math.Abs(float64(got-tt.want)) > 0.0001 {
				t.Errorf("Int16ToFloat32(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32Roundtrip(t *testing.T) {
	t.Parallel()

	// Converting to float and back should land within one step.
	for _, v := range []int16{-32768, -12345, -1, 0, 1, 500, 12345, 32767} {
		got := Float32ToInt16(Int16ToFloat32(v))
		diff := int(got) - int(v)
		if diff < -1 || diff > 1 {
			t.Errorf("roundtrip of %d gave %d", v, got)
		}
	}
}

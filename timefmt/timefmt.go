// SPDX-License-Identifier: EPL-2.0

package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a duration or timestamp string to whole milliseconds.
//
// Accepted forms:
//
//	500ms    milliseconds (integer)
//	5s       seconds (float)
//	15m      minutes (float)
//	1:30     MM:SS, fractional seconds allowed
//	1:23:45  HH:MM:SS, fractional seconds allowed
//	75.5     bare float, seconds
//
// The result is truncated toward zero after scaling.
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrBadTime)
	}

	switch {
	case strings.HasSuffix(s, "ms"):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "ms"))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
		}
		return n, nil

	case strings.HasSuffix(s, "s"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
		}
		return int(f * 1000), nil

	case strings.HasSuffix(s, "m"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "m"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
		}
		return int(f * 60 * 1000), nil

	case strings.Contains(s, ":"):
		return parseClock(s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	return int(f * 1000), nil
}

// parseClock handles MM:SS and HH:MM:SS timestamps.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")

	fields := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
		}
		fields[i] = f
	}

	switch len(fields) {
	case 2:
		return int(fields[0]*60*1000 + fields[1]*1000), nil
	case 3:
		return int(fields[0]*3600*1000 + fields[1]*60*1000 + fields[2]*1000), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
}

// Format renders milliseconds as MM:SS.mmm, or HH:MM:SS.mmm once the
// value reaches a full hour. Parse(Format(x)) returns x again, within
// one millisecond of display rounding.
func Format(ms int) string {
	total := float64(ms) / 1000
	hours := int(total) / 3600
	minutes := (int(total) % 3600) / 60
	seconds := total - float64(hours*3600+minutes*60)

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, seconds)
	}

	return fmt.Sprintf("%02d:%06.3f", minutes, seconds)
}

// SPDX-License-Identifier: EPL-2.0

// Package timefmt parses and formats the time boundary strings used on
// the command line.
//
// Parse accepts suffixed durations (500ms, 5s, 15m), clock timestamps
// (1:30, 1:23:45, with optional fractional seconds) and bare floats
// interpreted as seconds. All forms reduce to whole milliseconds,
// truncated toward zero. Format is the matching display form.
package timefmt

// SPDX-License-Identifier: EPL-2.0

package timefmt

import "errors"

var (
	// ErrBadTime indicates a string that matches none of the accepted
	// duration or timestamp forms.
	ErrBadTime = errors.New("unrecognized time format")
)

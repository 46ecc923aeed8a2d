/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

// Location is a half-open byte range [Start, End) into the program source.
type Location struct {
	Start int
	End   int
}

// At returns a Location covering width bytes starting at pos.
func At(pos, width int) Location {
	return Location{Start: pos, End: pos + width}
}

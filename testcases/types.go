// seehuhn.de/go/outline - glyph outline geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases provides named sample contours for tests and tools.
package testcases

import (
	"slices"
	"strings"
)

// TestCase is a named contour.  The nodes are given as VFJ node fragments.
type TestCase struct {
	Name   string   // lowercase a-z and _ only
	Nodes  []string // VFJ node fragments, in contour order
	Closed bool
}

// OnCount returns the number of on-curve nodes.
func (tc TestCase) OnCount() int {
	count := 0
	for _, s := range tc.Nodes {
		fields := strings.Fields(s)
		if len(fields) < 3 || !slices.Contains(fields[2:], "o") {
			count++
		}
	}
	return count
}

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

// Package outline models the outlines of glyphs in a font editor.
//
// A [Contour] is an ordered sequence of [Node] values.  On-curve nodes lie
// on the outline, off-curve nodes are the control points of quadratic and
// cubic Bézier segments.  Contours are collected in a [Shape].  Both are
// built on the generic containers of package
// [seehuhn.de/go/outline/tree], so every node knows its contour and every
// contour knows its shape.
//
// Nodes can be encoded as VFJ node fragments, the per-node text format of
// FontLab's JSON glyph files, using [Node.VFJ] and [ParseVFJ].
//
// Values in this package are not safe for concurrent use.  Callers which
// share a contour between goroutines must serialise all access.
package outline

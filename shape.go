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

package outline

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/tree"
)

// Shape is an ordered collection of contours.
type Shape struct {
	tree.Container[*Contour]

	Name string
}

// NewShape returns a shape holding the given contours.
// The contours must not belong to another shape.
func NewShape(name string, contours ...*Contour) (*Shape, error) {
	s := &Shape{Name: name}
	s.Init(s, contourFrom)
	for _, c := range contours {
		if _, err := s.Append(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// contourFrom converts a list of VFJ node fragments into a closed contour.
func contourFrom(v any) (*Contour, error) {
	fragments, ok := v.([]string)
	if !ok {
		return nil, fmt.Errorf("contour from %T: %w", v, tree.ErrUnsupportedValue)
	}
	return ParseContour(true, fragments...)
}

// Apply maps the coordinates of all nodes through t.
func (s *Shape) Apply(t Transform) {
	for _, c := range s.All() {
		c.Apply(t)
	}
}

// Bounds returns the smallest rectangle containing all nodes of all
// contours.
func (s *Shape) Bounds() rect.Rect {
	var b rect.Rect
	first := true
	for _, c := range s.All() {
		if c.Len() == 0 {
			continue
		}
		cb := c.Bounds()
		if first {
			b = cb
			first = false
			continue
		}
		b.LLx = min(b.LLx, cb.LLx)
		b.LLy = min(b.LLy, cb.LLy)
		b.URx = max(b.URx, cb.URx)
		b.URy = max(b.URy, cb.URy)
	}
	return b
}

// Path returns the outlines of all contours as one path, one subpath
// per non-empty contour.
func (s *Shape) Path() (path.Path, error) {
	var all []segment
	for i, c := range s.All() {
		segs, err := c.segments()
		if err != nil {
			return nil, fmt.Errorf("contour %d: %w", i, err)
		}
		all = append(all, segs...)
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, seg := range all {
			if !yield(seg.cmd, seg.pts) {
				return
			}
		}
	}, nil
}

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
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/tree"
)

// ErrSegment is returned when the nodes of a contour do not form valid
// line, quadratic or cubic segments.
var ErrSegment = errors.New("invalid segment")

// Evaluator computes points on outline segments.
//
// The segment passed to PointAtTime starts and ends with an on-curve point;
// the points in between are the control points.  T is in the open
// interval (0, 1).
type Evaluator interface {
	PointAtTime(segment []Point, t float64) (Point, error)
}

// Syncer refreshes nodes from the application which owns the outline data,
// for example a font editor.
type Syncer interface {
	SyncNode(n *Node) error
}

// Contour is an ordered sequence of nodes.
//
// A contour can itself be part of a [Shape].  Evaluator and Syncer are
// optional; operations which need them fail with [ErrNotImplemented] if
// they are not set.
type Contour struct {
	tree.Link
	tree.Container[*Node]

	Closed    bool
	Evaluator Evaluator
	Syncer    Syncer
}

// NewContour returns a contour holding the given nodes.
// The nodes must be orphans.
func NewContour(closed bool, nodes ...*Node) (*Contour, error) {
	c := &Contour{Closed: closed}
	c.Init(c, NodeFrom)
	for _, n := range nodes {
		if _, err := c.Append(n); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ParseContour builds a contour from a list of VFJ node fragments.
func ParseContour(closed bool, fragments ...string) (*Contour, error) {
	c, err := NewContour(closed)
	if err != nil {
		return nil, err
	}
	for i, s := range fragments {
		n, err := ParseVFJ(s)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		if _, err := c.Append(n); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}
	return c, nil
}

// Shape returns the shape holding c, or nil.
func (c *Contour) Shape() *Shape {
	p := tree.Parent(c)
	if p == nil {
		return nil
	}
	s, _ := p.Owner().(*Shape)
	return s
}

// Clone returns an orphan deep copy of c.
func (c *Contour) Clone() (*Contour, error) {
	nodes := make([]*Node, 0, c.Len())
	for _, n := range c.All() {
		nodes = append(nodes, n.Clone())
	}
	res, err := NewContour(c.Closed, nodes...)
	if err != nil {
		return nil, err
	}
	res.Evaluator = c.Evaluator
	res.Syncer = c.Syncer
	return res, nil
}

// VFJ returns the VFJ fragments of all nodes.
func (c *Contour) VFJ() []string {
	res := make([]string, 0, c.Len())
	for _, n := range c.All() {
		res = append(res, n.VFJ())
	}
	return res
}

// Apply maps all node coordinates through t.
func (c *Contour) Apply(t Transform) {
	for _, n := range c.All() {
		n.X, n.Y = t.ApplyXY(n.X, n.Y)
	}
}

// Fixed returns the node coordinates rounded to 26.6 fixed point, in
// contour order, for use with font rasterisers.
func (c *Contour) Fixed() []fixed.Point26_6 {
	res := make([]fixed.Point26_6, 0, c.Len())
	for _, n := range c.All() {
		res = append(res, n.Point().Fixed())
	}
	return res
}

// Bounds returns the smallest rectangle containing all nodes, including
// off-curve nodes.  The result is the zero rectangle for an empty contour.
func (c *Contour) Bounds() rect.Rect {
	if c.Len() == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, n := range c.All() {
		b.LLx = min(b.LLx, n.X)
		b.LLy = min(b.LLy, n.Y)
		b.URx = max(b.URx, n.X)
		b.URy = max(b.URy, n.Y)
	}
	return b
}

type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

// Path converts c into a geom path.  Runs of zero, one and two off-curve
// nodes between on-curve nodes become line, quadratic and cubic segments.
// Closed contours end with a close command.
func (c *Contour) Path() (path.Path, error) {
	segs, err := c.segments()
	if err != nil {
		return nil, err
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, s := range segs {
			if !yield(s.cmd, s.pts) {
				return
			}
		}
	}, nil
}

func (c *Contour) segments() ([]segment, error) {
	n := c.Len()
	if n == 0 {
		return nil, nil
	}

	start := 0
	if c.Closed {
		start = -1
		for i, node := range c.All() {
			if node.IsOn() {
				start = i
				break
			}
		}
		if start < 0 {
			return nil, fmt.Errorf("closed contour without on-curve node: %w", ErrSegment)
		}
	} else if !c.At(0).IsOn() {
		return nil, fmt.Errorf("open contour starts off-curve: %w", ErrSegment)
	}

	last := n - 1
	if c.Closed {
		last = n
	}
	segs := []segment{{path.CmdMoveTo, []vec.Vec2{c.At(start).Point().Vec()}}}
	var ctrl []vec.Vec2
	for k := 1; k <= last; k++ {
		node := c.At((start + k) % n)
		if !node.IsOn() {
			ctrl = append(ctrl, node.Point().Vec())
			continue
		}
		if k == n && len(ctrl) == 0 {
			break // the close command draws the final line
		}
		pts := append(ctrl, node.Point().Vec())
		switch len(ctrl) {
		case 0:
			segs = append(segs, segment{path.CmdLineTo, pts})
		case 1:
			segs = append(segs, segment{path.CmdQuadTo, pts})
		case 2:
			segs = append(segs, segment{path.CmdCubeTo, pts})
		default:
			return nil, fmt.Errorf("%d off-curve nodes before node %d: %w",
				len(ctrl), (start+k)%n, ErrSegment)
		}
		ctrl = nil
	}
	if len(ctrl) > 0 {
		return nil, fmt.Errorf("open contour ends off-curve: %w", ErrSegment)
	}
	if c.Closed {
		segs = append(segs, segment{cmd: path.CmdClose})
	}
	return segs, nil
}

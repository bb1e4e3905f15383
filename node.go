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
	"log/slog"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/tree"
)

var (
	// ErrBoundary is returned when an operation needs a neighbouring node
	// but the node is at the start or end of its contour.
	ErrBoundary = errors.New("no neighbouring node")

	// ErrNotImplemented is returned by operations which need a
	// collaborator that has not been provided.
	ErrNotImplemented = errors.New("not implemented")

	// ErrTimeRange is returned for segment times outside [0, 1].
	ErrTimeRange = errors.New("time outside [0, 1]")

	// ErrDegenerate is returned when a segment has zero length.
	ErrDegenerate = errors.New("degenerate segment")
)

// NodeType distinguishes points on the outline from control points.
type NodeType uint8

// These are the supported node types.
const (
	NodeOn NodeType = iota
	NodeOff
	NodeCurve
	NodeMove
)

func (t NodeType) String() string {
	switch t {
	case NodeOn:
		return "on"
	case NodeOff:
		return "off"
	case NodeCurve:
		return "curve"
	case NodeMove:
		return "move"
	default:
		return fmt.Sprintf("NodeType(%d)", uint8(t))
	}
}

// ParseNodeType converts the name of a node type back to the type.
func ParseNodeType(s string) (NodeType, error) {
	for t := NodeOn; t <= NodeMove; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown node type %q", s)
}

// Orientation classifies the turn made by the outline at a node.
type Orientation int8

// These are the possible orientations.  Collinear is degenerate and
// must not be read as either direction.
const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "collinear"
	}
}

// BleedMode restricts the direction of a random node displacement.
type BleedMode int

// These are the bleed modes understood by [Node.Randomize].
const (
	BleedAny              BleedMode = 0 // accept any displacement
	BleedClockwise        BleedMode = 1 // the node must turn clockwise afterwards
	BleedCounterClockwise BleedMode = 2 // the node must not turn clockwise afterwards
)

// Node is a single point of a contour.
//
// If the node belongs to a contour, Parent returns the node container of
// that contour.  Nodes without a parent are orphans; all operations which
// look at neighbouring nodes fail for orphans with [tree.ErrOrphan].
type Node struct {
	tree.Link

	X, Y      float64
	Angle     float64
	Transform Transform
	Complex   bool

	Type       NodeType
	Name       string
	Identifier string
	Smooth     bool // tangent continuity
	G2         bool // curvature continuity
	Selected   bool
}

// NodeOption configures a node created by [NewNode].
type NodeOption func(*Node)

// WithType sets the node type.
func WithType(t NodeType) NodeOption {
	return func(n *Node) { n.Type = t }
}

// WithSmooth marks the node as smooth.
func WithSmooth(smooth bool) NodeOption {
	return func(n *Node) { n.Smooth = smooth }
}

// WithG2 marks the node as curvature continuous.
func WithG2(g2 bool) NodeOption {
	return func(n *Node) { n.G2 = g2 }
}

// WithName sets the node name.
func WithName(name string) NodeOption {
	return func(n *Node) { n.Name = name }
}

// WithIdentifier sets the node identifier.
func WithIdentifier(id string) NodeOption {
	return func(n *Node) { n.Identifier = id }
}

// WithAngle sets the orientation hint, in degrees.
func WithAngle(deg float64) NodeOption {
	return func(n *Node) { n.Angle = deg }
}

// WithTransform sets the transform attached to the node's point.
func WithTransform(t Transform) NodeOption {
	return func(n *Node) { n.Transform = t }
}

// WithComplex selects complex number arithmetic for the node's point.
func WithComplex(on bool) NodeOption {
	return func(n *Node) { n.Complex = on }
}

// WithSelected sets the selection flag.
func WithSelected(selected bool) NodeOption {
	return func(n *Node) { n.Selected = selected }
}

// NewNode returns an on-curve node at (x, y), modified by the given options.
func NewNode(x, y float64, opts ...NodeOption) *Node {
	n := &Node{X: x, Y: y}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NodeFrom converts v into a new node.
//
// V can be a *Node (which is cloned), a [Point], a [vec.Vec2], a [2]float64,
// a []float64 of length two, or nil for the origin.  NodeFrom is used as the
// factory for contour containers.
func NodeFrom(v any) (*Node, error) {
	switch v := v.(type) {
	case nil:
		return &Node{}, nil
	case *Node:
		if v == nil {
			break
		}
		return v.Clone(), nil
	case Point:
		n := &Node{}
		n.SetPoint(v)
		return n, nil
	case vec.Vec2:
		return &Node{X: v.X, Y: v.Y}, nil
	case [2]float64:
		return &Node{X: v[0], Y: v[1]}, nil
	case []float64:
		if len(v) == 2 {
			return &Node{X: v[0], Y: v[1]}, nil
		}
	}
	return nil, fmt.Errorf("node from %T: %w", v, tree.ErrUnsupportedValue)
}

// Clone returns an orphan copy of n.  The copy has all geometry and
// metadata of n, except that it is not selected and has no identifier.
func (n *Node) Clone() *Node {
	c := *n
	c.Link = tree.Link{}
	c.Identifier = ""
	c.Selected = false
	return &c
}

func (n *Node) String() string {
	return fmt.Sprintf("<Node: x=%g, y=%g, type=%s>", n.X, n.Y, n.Type)
}

// Parent returns the node container holding n, or nil for an orphan.
func (n *Node) Parent() *tree.Container[*Node] {
	return tree.Parent(n)
}

// Contour returns the contour holding n, or nil.
func (n *Node) Contour() *Contour {
	c := n.Parent()
	if c == nil {
		return nil
	}
	contour, _ := c.Owner().(*Contour)
	return contour
}

// Index returns the current position of n in its contour.
func (n *Node) Index() (int, error) {
	return tree.Index(n)
}

// Next returns the node after n, or nil at the end of the contour.
func (n *Node) Next() (*Node, error) {
	next, _, err := tree.Next(n)
	return next, err
}

// Prev returns the node before n, or nil at the start of the contour.
func (n *Node) Prev() (*Node, error) {
	prev, _, err := tree.Prev(n)
	return prev, err
}

// IsOn reports whether n lies on the outline.
func (n *Node) IsOn() bool {
	return n.Type == NodeOn
}

// NextOn returns the first on-curve node after n, or nil if there is none
// before the end of the contour.
func (n *Node) NextOn() (*Node, error) {
	return n.walkOn(tree.Next[*Node], "next")
}

// PrevOn returns the last on-curve node before n, or nil if there is none
// after the start of the contour.
func (n *Node) PrevOn() (*Node, error) {
	return n.walkOn(tree.Prev[*Node], "previous")
}

func (n *Node) walkOn(step func(*Node) (*Node, bool, error), dir string) (*Node, error) {
	if n.Orphan() {
		return nil, fmt.Errorf("%s on-curve node: %w", dir, tree.ErrOrphan)
	}
	cur := n
	for {
		next, ok, err := step(cur)
		if err != nil || !ok {
			return nil, err
		}
		if next.IsOn() {
			return next, nil
		}
		cur = next
	}
}

// Triad returns the previous node, n and the next node.
// Missing neighbours at the contour boundary are nil.
func (n *Node) Triad() (prev, self, next *Node, err error) {
	prev, err = n.Prev()
	if err != nil {
		return nil, nil, nil, err
	}
	next, err = n.Next()
	if err != nil {
		return nil, nil, nil, err
	}
	return prev, n, next, nil
}

// TriadOn returns the previous on-curve node, n and the next on-curve node.
// Missing neighbours are nil.
func (n *Node) TriadOn() (prev, self, next *Node, err error) {
	prev, err = n.PrevOn()
	if err != nil {
		return nil, nil, nil, err
	}
	next, err = n.NextOn()
	if err != nil {
		return nil, nil, nil, err
	}
	return prev, n, next, nil
}

// TriadOnMaxY returns whichever of the neighbouring on-curve nodes is
// higher.  On a tie the previous node is returned.
func (n *Node) TriadOnMaxY() (*Node, error) {
	prev, next, err := n.onNeighbours()
	if err != nil {
		return nil, err
	}
	if next.Y > prev.Y {
		return next, nil
	}
	return prev, nil
}

// TriadOnMinY returns whichever of the neighbouring on-curve nodes is
// lower.  On a tie the previous node is returned.
func (n *Node) TriadOnMinY() (*Node, error) {
	prev, next, err := n.onNeighbours()
	if err != nil {
		return nil, err
	}
	if next.Y < prev.Y {
		return next, nil
	}
	return prev, nil
}

func (n *Node) onNeighbours() (prev, next *Node, err error) {
	prev, _, next, err = n.TriadOn()
	if err != nil {
		return nil, nil, err
	}
	if prev == nil || next == nil {
		return nil, nil, ErrBoundary
	}
	return prev, next, nil
}

func (n *Node) neighbours() (prev, next *Node, err error) {
	prev, _, next, err = n.Triad()
	if err != nil {
		return nil, nil, err
	}
	if prev == nil || next == nil {
		return nil, nil, ErrBoundary
	}
	return prev, next, nil
}

// Point returns the location of n.
func (n *Node) Point() Point {
	return Point{
		X:         n.X,
		Y:         n.Y,
		Angle:     n.Angle,
		Transform: n.Transform,
		Complex:   n.Complex,
	}
}

// SetPoint moves n to p.  Angle, transform and arithmetic mode are taken
// from p as well.
func (n *Node) SetPoint(p Point) {
	n.X, n.Y = p.X, p.Y
	n.Angle = p.Angle
	n.Transform = p.Transform
	n.Complex = p.Complex
}

// Turn classifies the turn from the previous node through n to the next
// node, using the sign of the cross product of (n - prev) and (next - n).
func (n *Node) Turn() (Orientation, error) {
	prev, next, err := n.neighbours()
	if err != nil {
		return Collinear, err
	}
	a, b, c := prev.Point(), n.Point(), next.Point()
	cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	switch {
	case cross > 0:
		return CounterClockwise, nil
	case cross < 0:
		return Clockwise, nil
	default:
		return Collinear, nil
	}
}

// Clockwise reports whether the outline turns clockwise at n.
// For collinear neighbours the result is false; use [Node.Turn] to
// distinguish this case.
func (n *Node) Clockwise() (bool, error) {
	o, err := n.Turn()
	return o == Clockwise, err
}

// DistanceTo returns the distance between n and other.
func (n *Node) DistanceTo(other *Node) float64 {
	return n.Point().DistanceTo(other.Point())
}

// AngleTo returns the direction from n to other in degrees.
func (n *Node) AngleTo(other *Node) float64 {
	return n.Point().AngleTo(other.Point())
}

func required(m *Node, err error) (*Node, error) {
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrBoundary
	}
	return m, nil
}

func (n *Node) distanceVia(get func() (*Node, error)) (float64, error) {
	m, err := required(get())
	if err != nil {
		return 0, err
	}
	return n.DistanceTo(m), nil
}

func (n *Node) angleVia(get func() (*Node, error)) (float64, error) {
	m, err := required(get())
	if err != nil {
		return 0, err
	}
	return n.AngleTo(m), nil
}

// DistanceToNext returns the distance to the next node.
func (n *Node) DistanceToNext() (float64, error) { return n.distanceVia(n.Next) }

// DistanceToPrev returns the distance to the previous node.
func (n *Node) DistanceToPrev() (float64, error) { return n.distanceVia(n.Prev) }

// DistanceToNextOn returns the distance to the next on-curve node.
func (n *Node) DistanceToNextOn() (float64, error) { return n.distanceVia(n.NextOn) }

// DistanceToPrevOn returns the distance to the previous on-curve node.
func (n *Node) DistanceToPrevOn() (float64, error) { return n.distanceVia(n.PrevOn) }

// AngleToNext returns the direction to the next node.
func (n *Node) AngleToNext() (float64, error) { return n.angleVia(n.Next) }

// AngleToPrev returns the direction to the previous node.
func (n *Node) AngleToPrev() (float64, error) { return n.angleVia(n.Prev) }

// AngleToNextOn returns the direction to the next on-curve node.
func (n *Node) AngleToNextOn() (float64, error) { return n.angleVia(n.NextOn) }

// AngleToPrevOn returns the direction to the previous on-curve node.
func (n *Node) AngleToPrevOn() (float64, error) { return n.angleVia(n.PrevOn) }

// Reloc moves n to (x, y).  Angle and transform are reset.
func (n *Node) Reloc(x, y float64) {
	n.SetPoint(Pt(x, y))
}

// Shift moves n by (dx, dy).  Angle and transform are kept.
func (n *Node) Shift(dx, dy float64) {
	n.SetPoint(n.Point().Add(Pt(dx, dy)))
}

// SmartShift moves n by (dx, dy).  If n is on-curve, neighbouring
// off-curve nodes are moved along with it.
func (n *Node) SmartShift(dx, dy float64) error {
	if !n.IsOn() {
		n.Shift(dx, dy)
		return nil
	}
	prev, _, next, err := n.Triad()
	if err != nil {
		return err
	}
	n.Shift(dx, dy)
	for _, m := range []*Node{prev, next} {
		if m != nil && !m.IsOn() {
			m.Shift(dx, dy)
		}
	}
	return nil
}

// SmartReloc moves n to (x, y) and neighbouring off-curve nodes by the same
// amount.
func (n *Node) SmartReloc(x, y float64) error {
	return n.SmartShift(x-n.X, y-n.Y)
}

// Randomize moves n, as for [Node.SmartShift], by a random amount drawn
// uniformly from [-cx, cx] × [-cy, cy].  If rng is nil, the global source
// is used.
//
// For modes other than BleedAny the orientation at n is checked after the
// move.  If it does not match, the move is undone by shifting back once;
// the result of this correction is not checked again.
func (n *Node) Randomize(rng *rand.Rand, cx, cy float64, mode BleedMode) error {
	if mode != BleedAny {
		// fail before moving anything
		if _, err := n.Turn(); err != nil {
			return err
		}
	}

	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}
	dx := (2*uniform() - 1) * cx
	dy := (2*uniform() - 1) * cy
	if err := n.SmartShift(dx, dy); err != nil {
		return err
	}
	if mode == BleedAny {
		return nil
	}

	cw, err := n.Clockwise()
	if err != nil {
		return err
	}
	if (mode == BleedClockwise && !cw) || (mode == BleedCounterClockwise && cw) {
		Logger().Debug("bleed correction",
			slog.Float64("dx", -dx), slog.Float64("dy", -dy))
		return n.SmartShift(-dx, -dy)
	}
	return nil
}

// InsertAfter inserts a new node on the segment from n to the next
// on-curve node, at the given time, directly after n.
//
// For t = 0 the new node is a copy of n, for t = 1 a copy of the next
// on-curve node.  Other times need the [Evaluator] of the contour; without
// one ErrNotImplemented is returned.
func (n *Node) InsertAfter(t float64) (*Node, error) {
	if !(t >= 0 && t <= 1) {
		return nil, fmt.Errorf("insert after %g: %w", t, ErrTimeRange)
	}
	idx, err := n.Index()
	if err != nil {
		return nil, err
	}
	end, err := required(n.NextOn())
	if err != nil {
		return nil, err
	}

	var node *Node
	switch t {
	case 0:
		node = n.Clone()
	case 1:
		node = end.Clone()
	default:
		node, err = n.interpolate(n, end, t)
		if err != nil {
			return nil, err
		}
	}
	return n.insertAt(idx+1, node)
}

// InsertBefore inserts a new node on the segment from the previous
// on-curve node to n, at the given time, directly before n.
//
// The new node takes over the index of n, so that it ends up immediately
// before n and n moves up by one.  It is not placed one position further
// back, in front of the node preceding n.
//
// For t = 1 the new node is a copy of n, for t = 0 a copy of the previous
// on-curve node.  Other times need the [Evaluator] of the contour.
func (n *Node) InsertBefore(t float64) (*Node, error) {
	if !(t >= 0 && t <= 1) {
		return nil, fmt.Errorf("insert before %g: %w", t, ErrTimeRange)
	}
	idx, err := n.Index()
	if err != nil {
		return nil, err
	}
	start, err := required(n.PrevOn())
	if err != nil {
		return nil, err
	}

	var node *Node
	switch t {
	case 1:
		node = n.Clone()
	case 0:
		node = start.Clone()
	default:
		node, err = n.interpolate(start, n, t)
		if err != nil {
			return nil, err
		}
	}
	return n.insertAt(idx, node)
}

// InsertAfterDistance inserts a node at distance d from n, measured along
// the chord to the next on-curve node.
func (n *Node) InsertAfterDistance(d float64) (*Node, error) {
	total, err := n.DistanceToNextOn()
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrDegenerate
	}
	return n.InsertAfter(d / total)
}

// InsertBeforeDistance inserts a node at distance d before n, measured
// along the chord to the previous on-curve node.
func (n *Node) InsertBeforeDistance(d float64) (*Node, error) {
	total, err := n.DistanceToPrevOn()
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrDegenerate
	}
	return n.InsertBefore(1 - d/total)
}

func (n *Node) insertAt(idx int, node *Node) (*Node, error) {
	node, err := n.Parent().Insert(idx, node)
	if err != nil {
		return nil, err
	}
	Logger().Debug("node inserted",
		slog.Int("index", idx), slog.Float64("x", node.X), slog.Float64("y", node.Y))
	return node, nil
}

// interpolate evaluates the segment from start to end (both on-curve,
// start before end) at time t.
func (n *Node) interpolate(start, end *Node, t float64) (*Node, error) {
	contour := n.Contour()
	if contour == nil || contour.Evaluator == nil {
		Logger().Warn("no curve evaluator", slog.Float64("t", t))
		return nil, fmt.Errorf("point at time %g: %w", t, ErrNotImplemented)
	}

	i, err := start.Index()
	if err != nil {
		return nil, err
	}
	j, err := end.Index()
	if err != nil {
		return nil, err
	}
	seg := make([]Point, 0, j-i+1)
	for k := i; k <= j; k++ {
		seg = append(seg, contour.At(k).Point())
	}

	p, err := contour.Evaluator.PointAtTime(seg, t)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return nil, fmt.Errorf("point at time %g: %w", t, ErrDegenerate)
	}
	node := &Node{}
	node.SetPoint(p)
	return node, nil
}

// Remove takes n out of its contour.  Afterwards n is an orphan.
func (n *Node) Remove() error {
	idx, err := n.Index()
	if err != nil {
		return err
	}
	if _, err := n.Parent().Pop(idx); err != nil {
		return err
	}
	Logger().Debug("node removed", slog.Int("index", idx))
	return nil
}

// Update refreshes n from the host application, using the [Syncer] of the
// contour.  Without a syncer ErrNotImplemented is returned.
func (n *Node) Update() error {
	if n.Orphan() {
		return fmt.Errorf("update: %w", tree.ErrOrphan)
	}
	contour := n.Contour()
	if contour == nil || contour.Syncer == nil {
		return fmt.Errorf("update: %w", ErrNotImplemented)
	}
	return contour.Syncer.SyncNode(n)
}

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

// Package tree implements ordered containers whose members know their
// container.
//
// A [Container] owns an ordered sequence of members. Each member embeds a
// [Link], which holds a non-owning reference back to the container. The
// position of a member is never stored; [Index] finds it by identity in the
// parent's sequence, so it cannot go stale after insertions or removals.
//
// Containers nest: a type which embeds a Container for its own members can
// at the same time embed a Link and thus be a member of an outer container.
// This is how glyph outlines are assembled from shapes, contours and nodes.
//
// Containers are not safe for concurrent use.
package tree

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrOrphan is returned when navigating from a member which is not
	// in any container.
	ErrOrphan = errors.New("orphan member")

	// ErrNotFound is returned when a member or position is not present
	// in a container.
	ErrNotFound = errors.New("member not found")

	// ErrAttached is returned when a member which already belongs to a
	// container is added to another one.
	ErrAttached = errors.New("member already in a container")

	// ErrUnsupportedValue is returned when a raw value cannot be
	// converted into a member.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Link holds the back-reference from a member to its container.
// Embed Link in the member type.
type Link struct {
	parent any // *Container[T] for the member type T
}

// Orphan reports whether the member is not in any container.
func (l *Link) Orphan() bool {
	return l.parent == nil
}

func (l *Link) link() *Link {
	return l
}

// Member is the constraint satisfied by types which can be stored in a
// Container.  This is normally a pointer to a struct embedding Link.
type Member interface {
	comparable
	link() *Link
}

// Factory converts a raw value into a new member.
type Factory[T any] func(v any) (T, error)

// Container is an ordered sequence of members.
type Container[T Member] struct {
	members []T
	factory Factory[T]
	owner   any
}

// New allocates a container.  Owner is the value the container belongs to,
// normally the struct which embeds it; it is returned by [Container.Owner].
// Factory may be nil, in which case only ready members can be added.
func New[T Member](owner any, factory Factory[T]) *Container[T] {
	c := &Container[T]{}
	c.Init(owner, factory)
	return c
}

// Init sets owner and factory of a container which is embedded by value.
// Init must be called before the container is used.
func (c *Container[T]) Init(owner any, factory Factory[T]) {
	c.owner = owner
	c.factory = factory
}

// Owner returns the value which embeds the container.
func (c *Container[T]) Owner() any {
	return c.owner
}

// Len returns the number of members.
func (c *Container[T]) Len() int {
	return len(c.members)
}

// At returns the member at position i.
// Like a slice index, At panics if i is out of range.
func (c *Container[T]) At(i int) T {
	return c.members[i]
}

// All iterates over the members in their current order.
// The container must not be modified during iteration; use [Container.Members]
// to obtain a snapshot first if the loop body inserts or removes members.
func (c *Container[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, m := range c.members {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Members returns a snapshot of the current members.
func (c *Container[T]) Members() []T {
	return slices.Clone(c.members)
}

// IndexOf returns the position of m.  The search is linear and compares
// members by identity.
func (c *Container[T]) IndexOf(m T) (int, error) {
	for i, x := range c.members {
		if x == m {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// Append adds v at the end of the container.  See [Container.Insert] for the
// accepted values.
func (c *Container[T]) Append(v any) (T, error) {
	return c.Insert(len(c.members), v)
}

// Insert adds v at position i.  Members at or after i move up by one.
//
// V is either a member of type T or a raw value which is converted using
// the container's factory.  Negative positions count from the end and
// positions past the end append, as for list insertion.
func (c *Container[T]) Insert(i int, v any) (T, error) {
	var zero T
	m, err := c.coerce(v)
	if err != nil {
		return zero, err
	}
	l := m.link()
	if l.parent != nil {
		return zero, ErrAttached
	}

	n := len(c.members)
	if i < 0 {
		i = max(n+i, 0)
	} else if i > n {
		i = n
	}
	c.members = slices.Insert(c.members, i, m)
	l.parent = c
	return m, nil
}

// Pop removes and returns the member at position i.
// Negative positions count from the end.
func (c *Container[T]) Pop(i int) (T, error) {
	var zero T
	n := len(c.members)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return zero, fmt.Errorf("position %d of %d: %w", i, n, ErrNotFound)
	}
	m := c.members[i]
	c.members = slices.Delete(c.members, i, i+1)
	m.link().parent = nil
	return m, nil
}

// Remove removes m from the container.
func (c *Container[T]) Remove(m T) error {
	i, err := c.IndexOf(m)
	if err != nil {
		return err
	}
	_, err = c.Pop(i)
	return err
}

// Clear removes all members.
func (c *Container[T]) Clear() {
	for _, m := range c.members {
		m.link().parent = nil
	}
	clear(c.members)
	c.members = c.members[:0]
}

func (c *Container[T]) coerce(v any) (T, error) {
	var zero T
	if m, ok := v.(T); ok {
		if m == zero {
			return zero, fmt.Errorf("nil %T: %w", v, ErrUnsupportedValue)
		}
		return m, nil
	}
	if c.factory == nil {
		return zero, fmt.Errorf("%T: %w", v, ErrUnsupportedValue)
	}
	return c.factory(v)
}

// Index returns the position of m in its container.
func Index[T Member](m T) (int, error) {
	c := Parent(m)
	if c == nil {
		return -1, ErrOrphan
	}
	return c.IndexOf(m)
}

// Parent returns the container holding m, or nil if m is an orphan.
func Parent[T Member](m T) *Container[T] {
	c, _ := m.link().parent.(*Container[T])
	return c
}

// Next returns the member following m.  At the end of the container the
// zero value is returned and ok is false.  There is no wraparound.
func Next[T Member](m T) (next T, ok bool, err error) {
	return sibling(m, 1)
}

// Prev returns the member preceding m.  At the start of the container the
// zero value is returned and ok is false.  There is no wraparound.
func Prev[T Member](m T) (prev T, ok bool, err error) {
	return sibling(m, -1)
}

func sibling[T Member](m T, step int) (T, bool, error) {
	var zero T
	i, err := Index(m)
	if err != nil {
		return zero, false, err
	}
	c := Parent(m)
	j := i + step
	if j < 0 || j >= len(c.members) {
		return zero, false, nil
	}
	return c.members[j], true, nil
}

// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"fmt"

	"github.com/matrixorigin/seqvec/pkg/common/moerr"
)

// Position is implemented by Iterator and ConstIterator. Every positional
// operation of Vector accepts either of them.
type Position[T any] interface {
	position() Iterator[T]
}

// Iterator is a position inside the storage of a Vector.
//
// An iterator does not own the storage it points into. Any reallocation of
// the producing vector, or any shift of its elements (insert, erase,
// push_front, pop_front), makes previously issued iterators stale. Nothing
// checks for that; a stale iterator keeps reading the buffer it was created
// from.
//
// The zero value is a null iterator: dereferencing panics, and it is Equal
// only to other null iterators at the same slot. A zero Vector hands out null
// iterators, so its Begin and End are equal. Ordering ignores null-ness.
type Iterator[T any] struct {
	buf []T
	pos int
}

func newIterator[T any](buf []T, pos int) Iterator[T] {
	return Iterator[T]{buf: buf, pos: pos}
}

func (it Iterator[T]) position() Iterator[T] {
	return it
}

// IsNull reports whether it was built without a storage buffer.
func (it Iterator[T]) IsNull() bool {
	return it.buf == nil
}

// Pos returns the slot index it points at.
func (it Iterator[T]) Pos() int {
	return it.pos
}

func (it Iterator[T]) mustNotNull() {
	if it.buf == nil {
		panic(moerr.NewInternalErrorNoCtx("dereference of a null iterator"))
	}
}

// Value returns the element it points at.
func (it Iterator[T]) Value() T {
	it.mustNotNull()
	return it.buf[it.pos]
}

// Ptr returns the address of the element it points at.
func (it Iterator[T]) Ptr() *T {
	it.mustNotNull()
	return &it.buf[it.pos]
}

// Set overwrites the element it points at.
func (it Iterator[T]) Set(v T) {
	it.mustNotNull()
	it.buf[it.pos] = v
}

// Inc moves it one slot forward and returns the moved iterator.
func (it *Iterator[T]) Inc() Iterator[T] {
	it.pos++
	return *it
}

// PostInc moves it one slot forward and returns the iterator before the move.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.pos++
	return old
}

// Dec moves it one slot backward and returns the moved iterator.
func (it *Iterator[T]) Dec() Iterator[T] {
	it.pos--
	return *it
}

// PostDec moves it one slot backward and returns the iterator before the move.
func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.pos--
	return old
}

// Advance moves it n slots forward. The result is the same as calling Inc n
// times; a negative n moves backward.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.pos += n
	return it
}

// Retreat moves it n slots backward.
func (it *Iterator[T]) Retreat(n int) *Iterator[T] {
	it.pos -= n
	return it
}

// Next returns the iterator one slot after it.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns the iterator one slot before it.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Sub(1)
}

// Add returns it moved n slots forward.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.Advance(n)
	return it
}

// Sub returns it moved n slots backward.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.Retreat(n)
	return it
}

// Offset returns it moved n slots forward; the operand order mirrors n + it.
func Offset[T any](n int, it Iterator[T]) Iterator[T] {
	return it.Add(n)
}

// Distance returns the signed number of slots from other to it.
func (it Iterator[T]) Distance(other Position[T]) int {
	return it.pos - other.position().pos
}

// Compare returns -1, 0 or 1 depending on whether it is before, at, or after
// other. Both iterators must come from the same storage; only slots are
// compared.
func (it Iterator[T]) Compare(other Position[T]) int {
	o := other.position().pos
	switch {
	case it.pos < o:
		return -1
	case it.pos > o:
		return 1
	}
	return 0
}

// Equal reports whether it and other point at the same slot. A null iterator
// never equals a non-null one.
func (it Iterator[T]) Equal(other Position[T]) bool {
	o := other.position()
	return it.IsNull() == o.IsNull() && it.pos == o.pos
}

func (it Iterator[T]) NotEqual(other Position[T]) bool  { return !it.Equal(other) }
func (it Iterator[T]) Less(other Position[T]) bool      { return it.Compare(other) < 0 }
func (it Iterator[T]) LessEq(other Position[T]) bool    { return it.Compare(other) <= 0 }
func (it Iterator[T]) Greater(other Position[T]) bool   { return it.Compare(other) > 0 }
func (it Iterator[T]) GreaterEq(other Position[T]) bool { return it.Compare(other) >= 0 }

// String prints the slot index and the value stored there.
func (it Iterator[T]) String() string {
	return fmt.Sprintf("[@ %d: %v ]", it.pos, it.Value())
}

// ConstIterator is the read-only variant of Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// AsConst drops write access from it.
func (it Iterator[T]) AsConst() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

func (c ConstIterator[T]) position() Iterator[T] {
	return c.it
}

func (c ConstIterator[T]) IsNull() bool { return c.it.IsNull() }
func (c ConstIterator[T]) Pos() int     { return c.it.pos }
func (c ConstIterator[T]) Value() T     { return c.it.Value() }

func (c *ConstIterator[T]) Inc() ConstIterator[T] {
	c.it.pos++
	return *c
}

func (c *ConstIterator[T]) PostInc() ConstIterator[T] {
	old := *c
	c.it.pos++
	return old
}

func (c *ConstIterator[T]) Dec() ConstIterator[T] {
	c.it.pos--
	return *c
}

func (c *ConstIterator[T]) PostDec() ConstIterator[T] {
	old := *c
	c.it.pos--
	return old
}

func (c *ConstIterator[T]) Advance(n int) *ConstIterator[T] {
	c.it.pos += n
	return c
}

func (c *ConstIterator[T]) Retreat(n int) *ConstIterator[T] {
	c.it.pos -= n
	return c
}

func (c ConstIterator[T]) Next() ConstIterator[T]     { return c.Add(1) }
func (c ConstIterator[T]) Prev() ConstIterator[T]     { return c.Sub(1) }
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it: c.it.Add(n)} }
func (c ConstIterator[T]) Sub(n int) ConstIterator[T] { return ConstIterator[T]{it: c.it.Sub(n)} }

func (c ConstIterator[T]) Distance(other Position[T]) int  { return c.it.Distance(other) }
func (c ConstIterator[T]) Compare(other Position[T]) int   { return c.it.Compare(other) }
func (c ConstIterator[T]) Equal(other Position[T]) bool    { return c.it.Equal(other) }
func (c ConstIterator[T]) NotEqual(other Position[T]) bool { return c.it.NotEqual(other) }
func (c ConstIterator[T]) Less(other Position[T]) bool     { return c.it.Less(other) }
func (c ConstIterator[T]) LessEq(other Position[T]) bool   { return c.it.LessEq(other) }
func (c ConstIterator[T]) Greater(other Position[T]) bool  { return c.it.Greater(other) }
func (c ConstIterator[T]) GreaterEq(other Position[T]) bool {
	return c.it.GreaterEq(other)
}

func (c ConstIterator[T]) String() string { return c.it.String() }

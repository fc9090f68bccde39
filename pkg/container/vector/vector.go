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
	"golang.org/x/exp/slices"

	"github.com/matrixorigin/seqvec/pkg/common/moerr"
)

// Vector is a sequence container over a contiguous buffer.
//
// Every slot of the buffer, not only the first Size() ones, holds a valid
// value of T. Slots vacated by pop and erase are reset to the zero value;
// Clear leaves them untouched.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	// storage always has len == cap == capacity
	storage []T
	// number of logically present elements
	size int

	growth   GrowthPolicy
	observer Observer
}

func newVector[T any](capacity, size int, opts ...Option) *Vector[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Vector[T]{
		storage:  make([]T, capacity),
		size:     size,
		growth:   o.growth,
		observer: o.observer,
	}
}

// New returns a vector holding n zero values: Size() and Capacity() are
// both n. It does not reserve room for n elements in an empty vector, use
// New(0) followed by Reserve(n) for that.
func New[T any](n int, opts ...Option) *Vector[T] {
	if n < 0 {
		panic(moerr.NewInvalidArgNoCtx("vector capacity", n))
	}
	return newVector[T](n, n, opts...)
}

// Of returns a vector holding values, with capacity len(values).
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(values)
}

// FromSlice returns a vector holding a copy of s, with capacity len(s).
func FromSlice[T any](s []T, opts ...Option) *Vector[T] {
	v := newVector[T](len(s), len(s), opts...)
	copy(v.storage, s)
	return v
}

// FromRange returns a vector holding the elements in [first, last), with
// capacity last-first.
func FromRange[T any](first, last Position[T], opts ...Option) (*Vector[T], error) {
	src, err := snapshot(first, last)
	if err != nil {
		return nil, err
	}
	return FromSlice(src, opts...), nil
}

// Clone returns a copy of v with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	w := &Vector[T]{
		storage: make([]T, len(v.storage)),
		size:    v.size,
		growth:  v.growth,
	}
	copy(w.storage, v.storage[:v.size])
	return w
}

// CopyFrom replaces the content of v with the content of rhs. v grows only
// when its capacity is smaller than rhs.Size(); otherwise the capacity is
// kept.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	if v.Capacity() < rhs.size {
		v.Reserve(rhs.size)
	}
	copy(v.storage, rhs.storage[:rhs.size])
	v.size = rhs.size
}

// Free drops the storage buffer. v stays usable as an empty vector.
func (v *Vector[T]) Free() {
	v.storage = make([]T, 0)
	v.size = 0
}

func (v *Vector[T]) SetGrowthPolicy(p GrowthPolicy) {
	v.growth = p
}

// Policy returns the growth policy in effect.
func (v *Vector[T]) Policy() GrowthPolicy {
	if v.growth == nil {
		return defaultGrowth
	}
	return v.growth
}

func (v *Vector[T]) SetObserver(ob Observer) {
	v.observer = ob
}

func (v *Vector[T]) Begin() Iterator[T] {
	return newIterator(v.storage, 0)
}

func (v *Vector[T]) End() Iterator[T] {
	return newIterator(v.storage, v.size)
}

func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().AsConst()
}

func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().AsConst()
}

func (v *Vector[T]) Size() int {
	return v.size
}

func (v *Vector[T]) Capacity() int {
	return len(v.storage)
}

func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

func (v *Vector[T]) Full() bool {
	return v.size == len(v.storage)
}

// Reserve grows the buffer to exactly n slots. It does nothing when n is
// not larger than the current capacity.
func (v *Vector[T]) Reserve(n int) {
	if n == 0 || n <= len(v.storage) {
		return
	}
	v.realloc(n)
}

// ShrinkToFit reallocates the buffer to exactly Size() slots. It does
// nothing on an empty vector.
func (v *Vector[T]) ShrinkToFit() {
	if v.Empty() {
		return
	}
	v.realloc(v.size)
}

func (v *Vector[T]) realloc(n int) {
	oldCap := len(v.storage)
	buf := make([]T, n)
	copy(buf, v.storage[:v.size])
	v.storage = buf
	if v.observer != nil {
		v.observer.OnRealloc(oldCap, n)
	}
}

// grow reserves want slots, never less than one more than the current
// capacity.
func (v *Vector[T]) grow(want int) {
	if floor := len(v.storage) + 1; want < floor {
		want = floor
	}
	v.Reserve(want)
}

// Index returns the element in slot i without checking Size(). i must be
// less than Capacity().
func (v *Vector[T]) Index(i int) T {
	return v.storage[i]
}

// IndexRef is the addressable form of Index.
func (v *Vector[T]) IndexRef(i int) *T {
	return &v.storage[i]
}

func (v *Vector[T]) At(pos int) (T, error) {
	p, err := v.AtRef(pos)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtRef returns the address of element pos. It fails with ErrEmptyVector
// on an empty vector and with ErrOutOfRange when pos is not below Size().
func (v *Vector[T]) AtRef(pos int) (*T, error) {
	if v.Empty() {
		return nil, moerr.NewEmptyVectorNoCtx("at")
	}
	if pos < 0 || pos >= v.size {
		return nil, moerr.NewOutOfRangeNoCtx("at", "position %d, size %d", pos, v.size)
	}
	return &v.storage[pos], nil
}

func (v *Vector[T]) Front() (T, error) {
	p, err := v.FrontRef()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (v *Vector[T]) FrontRef() (*T, error) {
	if v.Empty() {
		return nil, moerr.NewEmptyVectorNoCtx("front")
	}
	return &v.storage[0], nil
}

func (v *Vector[T]) Back() (T, error) {
	p, err := v.BackRef()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (v *Vector[T]) BackRef() (*T, error) {
	if v.Empty() {
		return nil, moerr.NewEmptyVectorNoCtx("back")
	}
	return &v.storage[v.size-1], nil
}

// Data returns the whole backing buffer, len(Data()) == Capacity(). Writes
// through it are visible to v until the next reallocation.
func (v *Vector[T]) Data() []T {
	return v.storage
}

// ToSlice returns a copy of the logical elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.size)
	copy(out, v.storage[:v.size])
	return out
}

// Iter calls fn on every element from offset on. fn stops the walk early by
// returning moerr.GetOkStopCurrRecur(), which Iter does not report; any other
// error stops the walk and is returned.
func (v *Vector[T]) Iter(offset int, fn func(int, T) error) error {
	if offset < 0 {
		offset = 0
	}
	for i := offset; i < v.size; i++ {
		if err := fn(i, v.storage[i]); err != nil {
			if moerr.IsMoErrCode(err, moerr.OkStopCurrRecur) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (v *Vector[T]) Clear() {
	v.size = 0
}

func (v *Vector[T]) PushBack(value T) {
	if v.Full() {
		v.grow(v.Policy().GrowBack(len(v.storage)))
	}
	v.storage[v.size] = value
	v.size++
}

func (v *Vector[T]) PushFront(value T) {
	if v.Full() {
		v.grow(v.Policy().GrowFront(len(v.storage)))
	}
	copy(v.storage[1:v.size+1], v.storage[:v.size])
	v.storage[0] = value
	v.size++
}

func (v *Vector[T]) PopBack() error {
	if v.Empty() {
		return moerr.NewEmptyVectorNoCtx("pop_back")
	}
	var zero T
	v.storage[v.size-1] = zero
	v.size--
	return nil
}

func (v *Vector[T]) PopFront() error {
	if v.Empty() {
		return moerr.NewEmptyVectorNoCtx("pop_front")
	}
	copy(v.storage, v.storage[1:v.size])
	var zero T
	v.storage[v.size-1] = zero
	v.size--
	return nil
}

// Insert inserts values before pos and returns an iterator to the first
// inserted element, or pos itself when values is empty.
func (v *Vector[T]) Insert(pos Position[T], values ...T) (Iterator[T], error) {
	src := make([]T, len(values))
	copy(src, values)
	return v.insert(pos, src)
}

func (v *Vector[T]) InsertSlice(pos Position[T], s []T) (Iterator[T], error) {
	return v.Insert(pos, s...)
}

// InsertRange inserts the elements of [first, last) before pos. The source
// range is read before v changes, so it may come from v itself.
func (v *Vector[T]) InsertRange(pos Position[T], first, last Position[T]) (Iterator[T], error) {
	src, err := snapshot(first, last)
	if err != nil {
		return pos.position(), err
	}
	return v.insert(pos, src)
}

func (v *Vector[T]) insert(pos Position[T], src []T) (Iterator[T], error) {
	if len(src) == 0 {
		return pos.position(), nil
	}
	// pos is only trusted for its offset, the buffer may be replaced below
	offset := pos.position().pos
	if offset < 0 || offset > v.size {
		return pos.position(), moerr.NewOutOfRangeNoCtx("insert", "position %d, size %d", offset, v.size)
	}

	n := len(src)
	if v.size+n > len(v.storage) {
		v.Reserve(v.size + n)
	}
	copy(v.storage[offset+n:v.size+n], v.storage[offset:v.size])
	copy(v.storage[offset:], src)
	v.size += n
	return newIterator(v.storage, offset), nil
}

// Erase removes the elements in [first, last) and returns an iterator to
// the slot that held first.
func (v *Vector[T]) Erase(first, last Position[T]) (Iterator[T], error) {
	f, l := first.position().pos, last.position().pos
	if v.Empty() {
		return first.position(), moerr.NewOutOfRangeNoCtx("erase", "vector is empty")
	}
	if f < 0 || l > v.size || f > l {
		return first.position(), moerr.NewOutOfRangeNoCtx("erase", "range [%d, %d), size %d", f, l, v.size)
	}

	count := l - f
	if l < v.size {
		copy(v.storage[f:], v.storage[l:v.size])
	}
	var zero T
	for i := v.size - count; i < v.size; i++ {
		v.storage[i] = zero
	}
	v.size -= count
	return newIterator(v.storage, f), nil
}

// EraseAt removes the element at pos.
func (v *Vector[T]) EraseAt(pos Position[T]) (Iterator[T], error) {
	return v.Erase(pos, pos.position().Next())
}

// AssignRange replaces the content of v with the elements of [first, last).
// When they do not fit, the buffer grows as decided by the growth policy.
func (v *Vector[T]) AssignRange(first, last Position[T]) error {
	src, err := snapshot(first, last)
	if err != nil {
		return err
	}
	v.assign(src)
	return nil
}

// Assign replaces the content of v with values.
func (v *Vector[T]) Assign(values ...T) {
	src := make([]T, len(values))
	copy(src, values)
	v.assign(src)
}

func (v *Vector[T]) assign(src []T) {
	if n := len(src); n > len(v.storage) {
		want := v.Policy().GrowAssign(len(v.storage), n)
		if want < n {
			want = n
		}
		v.Reserve(want)
	}
	copy(v.storage, src)
	v.size = len(src)
}

// AssignN replaces the content of v with count copies of value.
func (v *Vector[T]) AssignN(count int, value T) error {
	if count < 0 {
		return moerr.NewInvalidArgNoCtx("assign count", count)
	}
	if count > len(v.storage) {
		v.Reserve(count)
	}
	for i := 0; i < count; i++ {
		v.storage[i] = value
	}
	v.size = count
	return nil
}

// Swap exchanges the storage of v and other without copying elements.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.storage, other.storage = other.storage, v.storage
	v.size, other.size = other.size, v.size
}

func Swap[T any](a, b *Vector[T]) {
	a.Swap(b)
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacities are not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.storage[:a.size], b.storage[:b.size])
}

func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.storage[:a.size], b.storage[:b.size], eq)
}

// snapshot copies the elements of [first, last).
func snapshot[T any](first, last Position[T]) ([]T, error) {
	f, l := first.position(), last.position()
	n := l.Distance(f)
	if n < 0 {
		return nil, moerr.NewOutOfRangeNoCtx("range", "first %d is after last %d", f.pos, l.pos)
	}
	if n == 0 {
		return nil, nil
	}
	if f.IsNull() {
		return nil, moerr.NewInvalidInputNoCtx("null iterator as range source")
	}
	if f.pos < 0 || l.pos > len(f.buf) {
		return nil, moerr.NewOutOfRangeNoCtx("range", "[%d, %d) outside a buffer of %d slots", f.pos, l.pos, len(f.buf))
	}
	src := make([]T, n)
	copy(src, f.buf[f.pos:l.pos])
	return src, nil
}

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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/seqvec/pkg/common/moerr"
)

func TestNew(t *testing.T) {
	v := New[int](3)
	require.Equal(t, 3, v.Size())
	require.Equal(t, 3, v.Capacity())
	require.True(t, v.Full())
	require.False(t, v.Empty())
	require.Equal(t, []int{0, 0, 0}, v.ToSlice())

	e := New[string](0)
	require.True(t, e.Empty())
	require.True(t, e.Full())
	require.NotNil(t, e.Data())
	require.True(t, e.Begin().Equal(e.End()))

	require.Panics(t, func() { New[int](-1) })
}

func TestZeroValueVector(t *testing.T) {
	var v Vector[int]
	require.True(t, v.Empty())
	require.Equal(t, 0, v.Capacity())
	require.True(t, v.Begin().Equal(v.End()))

	v.PushBack(1)
	v.PushFront(0)
	require.Equal(t, []int{0, 1}, v.ToSlice())
}

func TestOfAndFromSlice(t *testing.T) {
	s := []int{1, 2, 3}
	v := FromSlice(s)
	s[0] = 100
	require.Equal(t, []int{1, 2, 3}, v.ToSlice())
	require.Equal(t, 3, v.Capacity())

	w := Of("a", "b")
	require.Equal(t, 2, w.Size())
	require.Equal(t, 2, w.Capacity())
}

func TestFromRange(t *testing.T) {
	src := Of(1, 2, 3, 4)
	v, err := FromRange[int](src.Begin().Add(1), src.CEnd())
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, v.ToSlice())
	require.Equal(t, 3, v.Capacity())

	v, err = FromRange[int](src.Begin(), src.Begin())
	require.NoError(t, err)
	require.True(t, v.Empty())
	require.Equal(t, 0, v.Capacity())

	_, err = FromRange[int](src.End(), src.Begin())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))

	var null Iterator[int]
	_, err = FromRange[int](null, null.Add(2))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestPushBack(t *testing.T) {
	v := New[int](0)
	for i := 1; i <= 10; i++ {
		v.PushBack(i)
		require.Equal(t, i, v.Size())
		require.GreaterOrEqual(t, v.Capacity(), v.Size())
		// one slot at a time
		require.Equal(t, i, v.Capacity())
	}
	back, err := v.Back()
	require.NoError(t, err)
	require.Equal(t, 10, back)
}

func TestPushFront(t *testing.T) {
	v := New[int](0)
	caps := []int{1, 2, 4, 4, 8}
	for i := 1; i <= 5; i++ {
		v.PushFront(i)
		require.Equal(t, caps[i-1], v.Capacity())
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, v.ToSlice())

	front, err := v.Front()
	require.NoError(t, err)
	require.Equal(t, 5, front)
}

func TestPushFrontPopFrontRestores(t *testing.T) {
	v := Of(1, 2, 3)
	for _, x := range []int{10, 20, 30} {
		v.PushFront(x)
	}
	require.Equal(t, []int{30, 20, 10, 1, 2, 3}, v.ToSlice())
	for i := 0; i < 3; i++ {
		require.NoError(t, v.PopFront())
	}
	require.Equal(t, []int{1, 2, 3}, v.ToSlice())
	require.True(t, Equal(v, Of(1, 2, 3)))
}

func TestPopBack(t *testing.T) {
	v := Of(1, 2, 3)
	require.NoError(t, v.PopBack())
	require.Equal(t, 2, v.Size())
	require.Equal(t, 3, v.Capacity())
	require.Equal(t, 0, v.Index(2))
	require.Equal(t, "{ 1 2 | 0 }, m_end=2, m_capacity=3", v.String())
}

func TestPopFront(t *testing.T) {
	v := Of(1, 2, 3)
	require.NoError(t, v.PopFront())
	require.Equal(t, []int{2, 3}, v.ToSlice())
	require.Equal(t, 0, v.Index(2))
	require.Equal(t, 3, v.Capacity())
}

func TestPopEmpty(t *testing.T) {
	v := New[int](0)
	v.Reserve(4)

	err := v.PopBack()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
	err = v.PopFront()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
	require.Equal(t, 0, v.Size())
	require.Equal(t, 4, v.Capacity())
}

func TestAt(t *testing.T) {
	v := Of(1, 2, 3)

	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 2, x)

	p, err := v.AtRef(2)
	require.NoError(t, err)
	*p = 30
	require.Equal(t, 30, v.Index(2))

	_, err = v.At(3)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))
	_, err = v.At(-1)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))

	v.Clear()
	_, err = v.At(0)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
}

func TestFrontBack(t *testing.T) {
	v := Of("a", "b", "c")

	p, err := v.FrontRef()
	require.NoError(t, err)
	*p = "A"
	p, err = v.BackRef()
	require.NoError(t, err)
	*p = "C"
	require.Equal(t, []string{"A", "b", "C"}, v.ToSlice())

	e := New[string](0)
	_, err = e.Front()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
	_, err = e.Back()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
	_, err = e.FrontRef()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
	_, err = e.BackRef()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
}

func TestIndexBeyondSize(t *testing.T) {
	v := New[int](0)
	v.Reserve(3)
	v.PushBack(1)
	require.Equal(t, 0, v.Index(2))
	*v.IndexRef(2) = 5
	require.Equal(t, "{ 1 | 0 5 }, m_end=1, m_capacity=3", v.String())
	require.Len(t, v.Data(), 3)
}

func TestInsert(t *testing.T) {
	v := Of(1, 2, 3)
	it, err := v.Insert(v.Begin().Add(1), 9, 9)
	require.NoError(t, err)
	require.Equal(t, []int{1, 9, 9, 2, 3}, v.ToSlice())
	require.Equal(t, 5, v.Size())
	require.Equal(t, 5, v.Capacity())
	require.Equal(t, 1, it.Pos())
	require.Equal(t, 9, it.Value())

	it, err = v.Insert(v.End(), 4)
	require.NoError(t, err)
	require.Equal(t, 4, it.Value())
	require.Equal(t, []int{1, 9, 9, 2, 3, 4}, v.ToSlice())

	it, err = v.Insert(v.CBegin(), 0)
	require.NoError(t, err)
	require.True(t, it.Equal(v.Begin()))
	require.Equal(t, []int{0, 1, 9, 9, 2, 3, 4}, v.ToSlice())

	_, err = v.InsertSlice(v.End().Prev(), []int{7, 8})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 9, 9, 2, 3, 7, 8, 4}, v.ToSlice())
}

func TestInsertEmptySource(t *testing.T) {
	v := Of(1, 2, 3)
	pos := v.Begin().Add(1)
	it, err := v.Insert(pos)
	require.NoError(t, err)
	require.True(t, it.Equal(pos))
	require.Equal(t, 3, v.Size())
	require.Equal(t, 3, v.Capacity())
}

func TestInsertNoGrowth(t *testing.T) {
	v := New[int](0)
	v.Reserve(10)
	v.Assign(1, 2, 3)
	data := &v.Data()[0]

	_, err := v.Insert(v.Begin().Add(1), 7)
	require.NoError(t, err)
	require.Equal(t, []int{1, 7, 2, 3}, v.ToSlice())
	require.Equal(t, 10, v.Capacity())
	require.Same(t, data, &v.Data()[0])
}

func TestInsertOutOfRange(t *testing.T) {
	v := Of(1, 2, 3)
	_, err := v.Insert(v.End().Add(1), 7)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))
	_, err = v.Insert(v.Begin().Sub(1), 7)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))
	require.Equal(t, []int{1, 2, 3}, v.ToSlice())
	require.Equal(t, 3, v.Capacity())
}

func TestInsertRange(t *testing.T) {
	src := Of(7, 8, 9)
	v := Of(1, 2)
	_, err := v.InsertRange(v.End(), src.Begin().Add(1), src.End())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 8, 9}, v.ToSlice())

	// source taken from the vector being modified
	w := Of(1, 2, 3)
	_, err = w.InsertRange(w.Begin(), w.CBegin(), w.CEnd())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 1, 2, 3}, w.ToSlice())

	_, err = w.InsertRange(w.Begin(), w.End(), w.Begin())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))
	require.Equal(t, 6, w.Size())
}

func TestErase(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	it, err := v.Erase(v.Begin().Add(1), v.Begin().Add(3))
	require.NoError(t, err)
	require.Equal(t, 1, it.Pos())
	require.Equal(t, 4, it.Value())
	require.Equal(t, []int{1, 4, 5}, v.ToSlice())
	require.Equal(t, "{ 1 4 5 | 0 0 }, m_end=3, m_capacity=5", v.String())

	it, err = v.Erase(v.End().Prev(), v.End())
	require.NoError(t, err)
	require.True(t, it.Equal(v.End()))
	require.Equal(t, []int{1, 4}, v.ToSlice())

	// empty range
	_, err = v.Erase(v.Begin(), v.Begin())
	require.NoError(t, err)
	require.Equal(t, 2, v.Size())
}

func TestEraseAll(t *testing.T) {
	v := Of(1, 2, 3, 4)
	it, err := v.Erase(v.Begin(), v.End())
	require.NoError(t, err)
	require.Equal(t, 0, it.Pos())
	require.Equal(t, 0, v.Size())
	require.Equal(t, 4, v.Capacity())
}

func TestEraseAt(t *testing.T) {
	v := Of(1, 2, 3)
	it, err := v.EraseAt(v.CBegin().Add(1))
	require.NoError(t, err)
	require.Equal(t, 3, it.Value())
	require.Equal(t, []int{1, 3}, v.ToSlice())

	_, err = v.EraseAt(v.End())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))
	require.Equal(t, []int{1, 3}, v.ToSlice())
}

func TestEraseErrors(t *testing.T) {
	e := New[int](0)
	_, err := e.Erase(e.Begin(), e.End())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))

	v := Of(1, 2, 3)
	tests := []struct {
		name        string
		first, last Iterator[int]
	}{
		{"last past end", v.Begin(), v.End().Add(1)},
		{"first before begin", v.Begin().Sub(1), v.End()},
		{"first after last", v.End(), v.Begin()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Erase(tt.first, tt.last)
			require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))
			require.Equal(t, []int{1, 2, 3}, v.ToSlice())
		})
	}
}

func TestAssignN(t *testing.T) {
	v := New[int](0)
	require.NoError(t, v.AssignN(3, 7))
	require.Equal(t, 3, v.Size())
	require.Equal(t, 3, v.Capacity())
	require.NoError(t, v.Iter(0, func(_ int, x int) error {
		require.Equal(t, 7, x)
		return nil
	}))

	w := Of(1, 2, 3, 4, 5)
	require.NoError(t, w.AssignN(2, 9))
	require.Equal(t, []int{9, 9}, w.ToSlice())
	require.Equal(t, 5, w.Capacity())

	err := w.AssignN(-1, 0)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
	require.Equal(t, []int{9, 9}, w.ToSlice())
}

func TestAssignRange(t *testing.T) {
	v := Of(1, 2)
	src := Of(5, 6, 7)
	require.NoError(t, v.AssignRange(src.Begin(), src.End()))
	require.Equal(t, []int{5, 6, 7}, v.ToSlice())
	// grows to the old capacity plus the new length
	require.Equal(t, 5, v.Capacity())
	require.Equal(t, "{ 5 6 7 | 0 0 }, m_end=3, m_capacity=5", v.String())

	err := v.AssignRange(src.End(), src.Begin())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))
	require.Equal(t, []int{5, 6, 7}, v.ToSlice())
}

func TestAssignValues(t *testing.T) {
	v := Of(1, 2, 3, 4)
	v.Assign(9)
	require.Equal(t, 1, v.Size())
	require.Equal(t, 4, v.Capacity())
	require.Equal(t, "{ 9 | 2 3 4 }, m_end=1, m_capacity=4", v.String())

	v.Assign()
	require.True(t, v.Empty())
}

func TestClear(t *testing.T) {
	v := Of(1, 2, 3)
	v.Clear()
	require.Equal(t, 0, v.Size())
	require.Equal(t, 3, v.Capacity())
	// storage is not reset
	require.Equal(t, 1, v.Index(0))
	require.Equal(t, "{ | 1 2 3 }, m_end=0, m_capacity=3", v.String())
}

func TestReserve(t *testing.T) {
	v := Of(1, 2, 3)
	data := &v.Data()[0]

	for _, n := range []int{0, -1, 2, 3} {
		v.Reserve(n)
		require.Equal(t, 3, v.Capacity())
		require.Same(t, data, &v.Data()[0])
	}

	v.Reserve(10)
	require.Equal(t, 10, v.Capacity())
	require.Equal(t, []int{1, 2, 3}, v.ToSlice())
	require.NotSame(t, data, &v.Data()[0])
}

func TestShrinkToFit(t *testing.T) {
	v := New[int](0)
	v.Reserve(10)
	v.PushBack(1)
	v.PushBack(2)
	require.Equal(t, 10, v.Capacity())
	v.ShrinkToFit()
	require.Equal(t, 2, v.Capacity())
	require.Equal(t, []int{1, 2}, v.ToSlice())

	e := New[int](0)
	e.Reserve(5)
	e.ShrinkToFit()
	require.Equal(t, 5, e.Capacity())
}

func TestClone(t *testing.T) {
	v := New[int](0)
	v.Reserve(8)
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)

	w := v.Clone()
	require.Equal(t, 8, w.Capacity())
	require.Equal(t, 3, w.Size())
	require.True(t, Equal(v, w))

	*w.IndexRef(0) = 100
	require.Equal(t, 1, v.Index(0))
}

func TestCopyFrom(t *testing.T) {
	big := Of(1, 2, 3, 4, 5)
	small := Of(7, 8)
	big.CopyFrom(small)
	require.Equal(t, 2, big.Size())
	require.Equal(t, 5, big.Capacity())
	require.True(t, Equal(big, small))

	small.CopyFrom(Of(1, 2, 3, 4, 5))
	require.Equal(t, 5, small.Size())
	require.Equal(t, 5, small.Capacity())
	require.Equal(t, []int{1, 2, 3, 4, 5}, small.ToSlice())

	small.CopyFrom(small)
	require.Equal(t, []int{1, 2, 3, 4, 5}, small.ToSlice())
}

func TestEqual(t *testing.T) {
	a := Of("a", "b", "c")
	b := New[string](0)
	b.PushBack("a")
	b.PushBack("b")
	b.PushBack("c")
	require.True(t, Equal(a, b))
	require.False(t, NotEqual(a, b))

	// capacity does not matter
	b.Reserve(100)
	require.True(t, Equal(a, b))

	require.NoError(t, b.PopBack())
	require.False(t, Equal(a, b))
	require.True(t, NotEqual(a, b))

	b.PushBack("x")
	require.False(t, Equal(a, b))

	type item struct{ vals []int }
	x := Of(item{[]int{1}}, item{[]int{2}})
	y := Of(item{[]int{1}}, item{[]int{2}})
	require.True(t, EqualFunc(x, y, func(p, q item) bool { return p.vals[0] == q.vals[0] }))
}

func TestSwap(t *testing.T) {
	a := Of(1, 2, 3)
	b := New[int](0)
	b.Reserve(10)
	b.PushBack(9)
	da, db := &a.Data()[0], &b.Data()[0]

	Swap(a, b)
	require.Equal(t, 1, a.Size())
	require.Equal(t, 10, a.Capacity())
	require.Equal(t, []int{9}, a.ToSlice())
	require.Equal(t, 3, b.Size())
	require.Equal(t, 3, b.Capacity())
	require.Equal(t, []int{1, 2, 3}, b.ToSlice())

	// buffers change hands, nothing is copied
	require.Same(t, db, &a.Data()[0])
	require.Same(t, da, &b.Data()[0])

	a.Swap(b)
	require.Same(t, da, &a.Data()[0])
}

func TestFree(t *testing.T) {
	v := Of(1, 2)
	v.Free()
	require.Equal(t, 0, v.Size())
	require.Equal(t, 0, v.Capacity())
	v.PushBack(3)
	require.Equal(t, []int{3}, v.ToSlice())
}

func TestIter(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)

	var got []int
	err := v.Iter(1, func(i int, x int) error {
		got = append(got, x)
		if x >= 4 {
			return moerr.GetOkStopCurrRecur()
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, got)

	got = got[:0]
	require.NoError(t, v.Iter(-3, func(i int, x int) error {
		got = append(got, i)
		return nil
	}))
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)

	got = got[:0]
	err = v.Iter(0, func(i int, x int) error {
		got = append(got, x)
		if x == 2 {
			return moerr.NewInvalidInputNoCtx("element %d", x)
		}
		return nil
	})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
	require.Equal(t, []int{1, 2}, got)
}

func TestTraverseWithIterators(t *testing.T) {
	v := Of(1, 2, 3, 4)
	sum := 0
	for it := v.Begin(); it.NotEqual(v.End()); it.Inc() {
		sum += it.Value()
	}
	require.Equal(t, 10, sum)

	var rev []int
	for it := v.End(); it.Greater(v.Begin()); {
		it.Dec()
		rev = append(rev, it.Value())
	}
	require.Equal(t, []int{4, 3, 2, 1}, rev)
}

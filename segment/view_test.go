package segment_test

import (
	"errors"
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/segview/api"
	"github.com/momentics/segview/segment"
)

// middle returns the view [1,2,3] over [9,1,2,3,9].
func middle(t *testing.T) ([]int, *segment.View[int]) {
	t.Helper()
	buf := []int{9, 1, 2, 3, 9}
	v, err := segment.New(buf, 1, 3)
	require.NoError(t, err)
	return buf, v
}

func TestNewRejectsInvalidBounds(t *testing.T) {
	buf := make([]int, 5)
	cases := []struct {
		name        string
		off, length int
	}{
		{"negative offset", -1, 2},
		{"negative length", 0, -1},
		{"offset past end", 6, 0},
		{"window past end", 3, 3},
		{"overflow", 1, int(^uint(0) >> 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := segment.New(buf, tc.off, tc.length)
			require.Nil(t, v)
			require.ErrorIs(t, err, api.ErrInvalidBounds)
			assert.Equal(t, api.ErrCodeInvalidBounds, api.CodeOf(err))
		})
	}
}

func TestNewAcceptsEdgeWindows(t *testing.T) {
	buf := []int{1, 2, 3}
	empty, err := segment.New(buf, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 3, empty.Offset())

	whole := segment.Of(buf)
	assert.Equal(t, 3, whole.Len())
	assert.Same(t, &buf[0], &whole.Array()[0])
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { segment.MustNew([]int{1}, 0, 2) })
}

func TestGetTranslatesToPhysicalIndex(t *testing.T) {
	buf, v := middle(t)
	for i := 0; i < v.Len(); i++ {
		x, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, buf[v.Offset()+i], x)
	}
}

func TestSetWritesThroughToBuffer(t *testing.T) {
	buf, v := middle(t)
	require.NoError(t, v.Set(0, 42))
	assert.Equal(t, []int{9, 42, 2, 3, 9}, buf)

	x, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 42, x)
}

func TestSetVisibleThroughOverlappingView(t *testing.T) {
	buf, v := middle(t)
	other, err := segment.New(buf, 2, 3)
	require.NoError(t, err)

	require.NoError(t, v.Set(1, 77))
	x, err := other.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 77, x)
}

func TestGetSetOutOfRange(t *testing.T) {
	buf, v := middle(t)
	before := slices.Clone(buf)
	for _, i := range []int{-1, 3, 4, 100} {
		_, err := v.Get(i)
		require.ErrorIs(t, err, api.ErrOutOfRange, "get %d", i)
		err = v.Set(i, 5)
		require.ErrorIs(t, err, api.ErrOutOfRange, "set %d", i)
	}
	assert.Equal(t, before, buf)
}

func TestStructuralMutationUnsupported(t *testing.T) {
	buf, v := middle(t)
	before := slices.Clone(buf)

	errs := []error{
		v.Insert(0, 1),
		v.Insert(-5, 1),
		v.RemoveAt(0),
		v.RemoveAt(99),
		v.Append(4),
		v.Clear(),
	}
	ok, err := v.Remove(2)
	assert.False(t, ok)
	errs = append(errs, err)

	for _, err := range errs {
		require.ErrorIs(t, err, api.ErrNotSupported)
		assert.False(t, errors.Is(err, api.ErrOutOfRange))
	}
	assert.Equal(t, before, buf)
	assert.Equal(t, 3, v.Len())
	assert.True(t, v.IsFixedSize())
	assert.False(t, v.IsReadOnly())
}

func TestIndexOfScansWindowOnly(t *testing.T) {
	_, v := middle(t)
	assert.Equal(t, -1, v.IndexOf(9))
	assert.Equal(t, 1, v.IndexOf(2))
	assert.Equal(t, 0, v.IndexOf(1))
	assert.Equal(t, 2, v.IndexOf(3))
}

func TestIndexOfReturnsFirstMatch(t *testing.T) {
	v := segment.Of([]int{5, 7, 7, 5})
	assert.Equal(t, 1, v.IndexOf(7))
	assert.Equal(t, 0, v.IndexOf(5))
}

func TestContains(t *testing.T) {
	_, v := middle(t)
	assert.True(t, v.Contains(2))
	assert.False(t, v.Contains(99))
	assert.False(t, v.Contains(9))
}

func TestNewFuncCustomEquality(t *testing.T) {
	buf := [][]byte{[]byte("a"), []byte("bb"), []byte("c")}
	v, err := segment.NewFunc(buf, 1, 2, func(a, b []byte) bool { return string(a) == string(b) })
	require.NoError(t, err)
	assert.Equal(t, 0, v.IndexOf([]byte("bb")))
	assert.False(t, v.Contains([]byte("a")))
}

func TestCopyTo(t *testing.T) {
	_, v := middle(t)
	dst := make([]int, 3)
	require.NoError(t, v.CopyTo(dst, 0))
	assert.Equal(t, []int{1, 2, 3}, dst)

	dst = []int{0, 0, 0, 0, 0}
	require.NoError(t, v.CopyTo(dst, 2))
	assert.Equal(t, []int{0, 0, 1, 2, 3}, dst)
}

func TestCopyToInsufficientCapacity(t *testing.T) {
	_, v := middle(t)
	dst := []int{-1, -1}
	err := v.CopyTo(dst, 0)
	require.ErrorIs(t, err, api.ErrInsufficientCapacity)
	assert.Equal(t, []int{-1, -1}, dst)

	dst = []int{-1, -1, -1, -1}
	require.ErrorIs(t, v.CopyTo(dst, 2), api.ErrInsufficientCapacity)
	require.ErrorIs(t, v.CopyTo(dst, -1), api.ErrOutOfRange)
	require.ErrorIs(t, v.CopyTo(dst, 5), api.ErrOutOfRange)
	assert.Equal(t, []int{-1, -1, -1, -1}, dst)
}

func TestCopyToOverlappingSameBuffer(t *testing.T) {
	buf := []int{0, 1, 2, 3, 4, 5}
	v, err := segment.New(buf, 0, 4)
	require.NoError(t, err)
	require.NoError(t, v.CopyTo(buf, 2))
	assert.Equal(t, []int{0, 1, 0, 1, 2, 3}, buf)

	buf = []int{0, 1, 2, 3, 4, 5}
	v, err = segment.New(buf, 2, 4)
	require.NoError(t, err)
	require.NoError(t, v.CopyTo(buf, 0))
	assert.Equal(t, []int{2, 3, 4, 5, 4, 5}, buf)
}

func TestAllIsRestartable(t *testing.T) {
	_, v := middle(t)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(v.All()))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(v.All()))
}

func TestAllStopsEarly(t *testing.T) {
	_, v := middle(t)
	var got []int
	for x := range v.All() {
		got = append(got, x)
		if x == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestAllSeesLiveBuffer(t *testing.T) {
	buf, v := middle(t)
	var got []int
	for i, x := range v.Enumerate() {
		if i == 0 {
			buf[3] = 30
		}
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 2, 30}, got)
}

func TestNoSnapshotBetweenReads(t *testing.T) {
	buf, v := middle(t)
	x, _ := v.Get(2)
	assert.Equal(t, 3, x)
	buf[3] = 8
	x, _ = v.Get(2)
	assert.Equal(t, 8, x)
}

func TestTakeSkipSlice(t *testing.T) {
	buf, v := middle(t)

	first := v.Take(1)
	assert.Same(t, &buf[0], &first.Array()[0])
	assert.Equal(t, v.Offset(), first.Offset())
	assert.Equal(t, []int{1}, slices.Collect(first.All()))

	assert.Equal(t, 3, v.Take(10).Len())
	assert.Equal(t, 0, v.Take(-2).Len())

	rest := v.Skip(1)
	assert.Equal(t, 2, rest.Offset())
	assert.Equal(t, []int{2, 3}, slices.Collect(rest.All()))
	assert.Equal(t, 0, v.Skip(5).Len())
	assert.Equal(t, 4, v.Skip(5).Offset())

	mid, err := v.Slice(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, slices.Collect(mid.All()))
	assert.Equal(t, -1, mid.IndexOf(3))

	_, err = v.Slice(2, 4)
	require.ErrorIs(t, err, api.ErrInvalidBounds)
	_, err = v.Slice(2, 1)
	require.ErrorIs(t, err, api.ErrInvalidBounds)
}

func TestSubViewCannotReachPastParent(t *testing.T) {
	buf, v := middle(t)
	head := v.Take(2)
	_, err := head.Get(2)
	require.ErrorIs(t, err, api.ErrOutOfRange)
	require.NoError(t, head.Set(1, 20))
	assert.Equal(t, []int{9, 1, 20, 3, 9}, buf)
}

func TestErrorsDoNotCorruptView(t *testing.T) {
	_, v := middle(t)
	_ = v.Append(1)
	_, _ = v.Get(7)
	_ = v.CopyTo(nil, 0)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(v.All()))
}

func TestGetSetProperty(t *testing.T) {
	condition := func(size uint8, off, length uint8, x int) bool {
		buf := make([]int, int(size))
		o := int(off) % (len(buf) + 1)
		n := int(length) % (len(buf) - o + 1)
		v, err := segment.New(buf, o, n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			require.NoError(t, v.Set(i, x+i))
			got, err := v.Get(i)
			require.NoError(t, err)
			if got != x+i || buf[o+i] != x+i {
				return false
			}
		}
		_, err = v.Get(n)
		return errors.Is(err, api.ErrOutOfRange)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestViewSatisfiesList(t *testing.T) {
	var l api.List[int] = segment.Of([]int{4, 5})
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains(5))
}

type tagged struct {
	name  string
	value any
}

func TestIndexOfStructWithUncomparableField(t *testing.T) {
	buf := []tagged{{"a", []byte("x")}, {"b", 2}}
	v := segment.Of(buf)

	assert.NotPanics(t, func() {
		assert.Equal(t, -1, v.IndexOf(tagged{"a", []byte("x")}))
	})
	assert.Equal(t, 1, v.IndexOf(tagged{"b", 2}))
	assert.False(t, v.Contains(tagged{"b", 3}))
}

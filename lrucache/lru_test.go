package lrucache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func keys(c *Cache[string, int]) []string {
	var out []string
	c.Range(func(k string, _ int) bool {
		out = append(out, k)
		return true
	})
	return out
}

func TestGetSet(t *testing.T) {
	c := New[string, int](2)

	_, ok := c.Get("CS101")
	require.False(t, ok)

	c.Set("CS101", 1)
	c.Set("CS200", 2)

	v, ok := c.Get("CS101")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, []string{"CS200", "CS101"}, keys(c))
}

func TestEviction(t *testing.T) {
	c := New[string, int](2)
	c.Set("A", 1)
	c.Set("B", 2)
	c.Get("A")
	c.Set("C", 3)

	_, ok := c.Get("B")
	require.False(t, ok)
	require.Equal(t, 2, c.Len())
	require.Equal(t, []string{"A", "C"}, keys(c))
}

func TestUpdateMovesToBack(t *testing.T) {
	c := New[string, int](3)
	c.Set("A", 1)
	c.Set("B", 2)
	c.Set("A", 10)

	require.Equal(t, []string{"B", "A"}, keys(c))
	v, _ := c.Get("A")
	require.Equal(t, 10, v)
}

func TestZeroCapacity(t *testing.T) {
	for _, cap := range []int{0, -1} {
		c := New[string, int](cap)
		c.Set("A", 1)
		_, ok := c.Get("A")
		require.False(t, ok)
		require.Zero(t, c.Len())
	}
}

func TestRangeStops(t *testing.T) {
	c := New[string, int](3)
	c.Set("A", 1)
	c.Set("B", 2)
	c.Set("C", 3)

	var seen []string
	c.Range(func(k string, _ int) bool {
		seen = append(seen, k)
		return len(seen) < 2
	})
	require.Equal(t, []string{"A", "B"}, seen)
}

func TestClear(t *testing.T) {
	c := New[string, int](2)
	c.Set("A", 1)
	c.Clear()

	require.Zero(t, c.Len())
	_, ok := c.Get("A")
	require.False(t, ok)

	c.Set("B", 2)
	require.Equal(t, []string{"B"}, keys(c))
}

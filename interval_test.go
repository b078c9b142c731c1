package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	iv := Span(5, 3)
	assert.Equal(t, Interval{5, 8}, iv)
	assert.Equal(t, 3, iv.Len())
	assert.True(t, iv.Contains(5))
	assert.True(t, iv.Contains(7))
	assert.False(t, iv.Contains(8))
	assert.False(t, iv.Empty())
	assert.Equal(t, Interval{7, 10}, iv.Shift(2))
	assert.Equal(t, "[5,8)", iv.String())

	assert.True(t, Span(5, 0).Empty())
	assert.Equal(t, 0, Interval{4, 2}.Len())
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		a, b Interval
		want Interval
		ok   bool
	}{
		{Interval{0, 10}, Interval{5, 15}, Interval{5, 10}, true},
		{Interval{5, 15}, Interval{0, 10}, Interval{5, 10}, true},
		{Interval{0, 10}, Interval{2, 3}, Interval{2, 3}, true},
		{Interval{0, 5}, Interval{5, 10}, Interval{}, false},
		{Interval{0, 5}, Interval{7, 10}, Interval{}, false},
		{Interval{3, 3}, Interval{0, 10}, Interval{}, false},
	}
	for _, tt := range tests {
		got, ok := Intersect(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok, "%v ∩ %v", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%v ∩ %v", tt.a, tt.b)
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		i, o Interval
		want []Interval
	}{
		{Interval{0, 10}, Interval{3, 5}, []Interval{{0, 3}, {5, 10}}},
		{Interval{0, 10}, Interval{0, 5}, []Interval{{5, 10}}},
		{Interval{0, 10}, Interval{5, 20}, []Interval{{0, 5}}},
		{Interval{0, 10}, Interval{-5, 20}, nil},
		{Interval{0, 10}, Interval{10, 20}, []Interval{{0, 10}}},
		{Interval{4, 4}, Interval{10, 20}, nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.i.Subtract(tt.o)); diff != "" {
			t.Errorf("%v - %v mismatch (-want +got):\n%s", tt.i, tt.o, diff)
		}
	}
}

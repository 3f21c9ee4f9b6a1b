package squish_test

import (
	"testing"

	"github.com/go-squish/squish/squish"
	"github.com/stretchr/testify/require"
)

func TestVec4Arithmetic(t *testing.T) {
	a := squish.NewVec4(1, 2, 3, 4)
	b := squish.NewVec4(0.5, 0.5, 0.5, 0.5)

	require.Equal(t, squish.NewVec4(1.5, 2.5, 3.5, 4.5), a.Add(b))
	require.Equal(t, squish.NewVec4(0.5, 1.5, 2.5, 3.5), a.Sub(b))
	require.Equal(t, squish.NewVec4(0.5, 1, 1.5, 2), a.Mul(b))
	require.Equal(t, squish.Splat4(2), squish.NewVec4(2, 2, 2, 2))
}

func TestVec4MulAddNegMulAdd(t *testing.T) {
	a := squish.NewVec4(1, 2, 3, 4)
	b := squish.NewVec4(2, 2, 2, 2)
	c := squish.NewVec4(1, 1, 1, 1)

	require.Equal(t, squish.NewVec4(3, 5, 7, 9), a.MulAdd(b, c))
	require.Equal(t, squish.NewVec4(-1, -3, -5, -7), a.NegMulAdd(b, c))
}

func TestVec4MinMaxClamp(t *testing.T) {
	a := squish.NewVec4(-1, 0.5, 2, 0.2)
	lo := squish.Splat4(0)
	hi := squish.Splat4(1)
	require.Equal(t, squish.NewVec4(0, 0.5, 1, 0.2), a.Clamp(lo, hi))
}

func TestVec4HorizontalAddAndLanes(t *testing.T) {
	a := squish.NewVec4(1, 2, 3, 4)
	if got := a.HorizontalAdd(); got != 10 {
		t.Fatalf("HorizontalAdd: got %v want 10", got)
	}
	for i, want := range []float32{1, 2, 3, 4} {
		if got := a.Lane(i); got != want {
			t.Fatalf("Lane(%d): got %v want %v", i, got, want)
		}
	}
	b := a.WithLane(2, 99)
	if got := b.Lane(2); got != 99 {
		t.Fatalf("WithLane(2, 99): got %v want 99", got)
	}
}

func TestVec4RoundInt(t *testing.T) {
	a := squish.NewVec4(0.5, -0.5, 1.49, -1.5)
	got := a.RoundInt()
	want := squish.NewVec4(1, -1, 1, -2)
	require.Equal(t, want, got)
}

func TestScr4Ordering(t *testing.T) {
	small := squish.NewScr4(1)
	big := squish.NewScr4(2)
	if !small.Less(big) {
		t.Fatalf("Less: 1 should be less than 2")
	}
	sum := small.Add(big)
	if got := sum.Value(); got != 3 {
		t.Fatalf("Add: got %v want 3", got)
	}
}

func TestLengthSquared(t *testing.T) {
	v := squish.NewVec4(3, 4, 0, 0)
	got := squish.LengthSquared(v).Value()
	if got != 25 {
		t.Fatalf("LengthSquared: got %v want 25", got)
	}
}

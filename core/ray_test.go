package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRayAt(t *testing.T) {
	r := NewRay(V3(1, 2, 3), V3(0, 0, 1))
	got := r.At(5)
	require.Equal(t, V3(1, 2, 8), got)
}

func TestRayAtMatchesFormula(t *testing.T) {
	r := NewRay(V3(-1, 4, 2), V3(2, -3, 1))
	for _, tVal := range []float64{-2, 0, 0.5, 3.14159} {
		want := r.Origin.Add(r.Direction.Mul(tVal))
		got := r.At(tVal)
		require.InDelta(t, want.X, got.X, 1e-15)
		require.InDelta(t, want.Y, got.Y, 1e-15)
		require.InDelta(t, want.Z, got.Z, 1e-15)
	}
}

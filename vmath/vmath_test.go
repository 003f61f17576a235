package vmath

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		x, lo, hi, want int
	}{
		{250, 120, 300, 250},
		{100, 120, 300, 120},
		{400, 120, 300, 300},
	}
	for _, tt := range tests {
		if got := ClampInt(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampInt(%d, %d, %d) = %d, want %d", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	// Touching circles count as overlapping
	if !CirclesOverlap(0, 0, 2, 6, 0, 4) {
		t.Error("Expected circles at distance == r1+r2 to overlap")
	}
	if CirclesOverlap(0, 0, 2, 6.01, 0, 4) {
		t.Error("Expected circles at distance > r1+r2 not to overlap")
	}
	if !CirclesOverlap(0, 0, 2, 0, 0, 4) {
		t.Error("Expected concentric circles to overlap")
	}
	// Diagonal: distance 5, radii sum 5
	if !CirclesOverlap(0, 0, 1, 3, 4, 4) {
		t.Error("Expected diagonal touching circles to overlap")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Same seed diverged at draw %d", i)
		}
	}
}

func TestFastRandIntnBounds(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(300)
		if v < 0 || v >= 300 {
			t.Fatalf("Intn(300) = %d, out of range", v)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Expected Intn(0) to return 0")
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Expected zero seed to be remapped to a valid state")
	}
}

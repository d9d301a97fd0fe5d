package world

import "testing"

func TestHash2Deterministic(t *testing.T) {
	first := hash2(10, 20, 42)
	for i := 0; i < 100; i++ {
		if h := hash2(10, 20, 42); h != first {
			t.Fatalf("hash2 not deterministic: %d != %d", h, first)
		}
	}
	if hash2(1, 0, 42) == hash2(2, 0, 42) {
		t.Errorf("hash2 should differ for different X")
	}
	if hash2(0, 1, 42) == hash2(0, 2, 42) {
		t.Errorf("hash2 should differ for different Z")
	}
	if hash2(2, 0, 42) == hash2(0, 1, 42) {
		t.Errorf("hash2 should not alias X and Z")
	}
	if hash2(1, 1, 100) == hash2(1, 1, 200) {
		t.Errorf("hash2 should differ for different seed")
	}
}

func TestValueNoiseRange(t *testing.T) {
	n := NewValueNoise(7)
	for i := 0; i < 1000; i++ {
		x := float64(i)*0.173 - 50
		z := float64(i)*0.311 - 80
		if v := n.Sample(x, z); v < 0 || v > 1 {
			t.Fatalf("Sample(%f,%f) = %f out of [0,1]", x, z, v)
		}
	}
	if (ValueNoise{Seed: 7}).Sample(1, 1) != 0 {
		t.Errorf("Expected 0 with no octaves")
	}
}

func TestValueNoiseHitsLattice(t *testing.T) {
	n := ValueNoise{Seed: 3, Octaves: 1, Persistence: 0.5, Lacunarity: 2}
	if got, want := n.Sample(4, -9), unitHash(4, -9, 3); got != want {
		t.Errorf("Expected lattice value %f at integer point, got %f", want, got)
	}
}

package world

import "math"

// ValueNoise is deterministic 2D fractal value noise. Lattice values come from
// an integer hash of the point and the per-octave seed, so a given seed always
// yields the same field. Sample returns values in [0,1].
type ValueNoise struct {
	Seed        int64
	Octaves     int
	Persistence float64 // amplitude factor per octave
	Lacunarity  float64 // frequency factor per octave
}

// NewValueNoise creates a four-octave field with halving amplitude and doubling frequency.
func NewValueNoise(seed int64) ValueNoise {
	return ValueNoise{Seed: seed, Octaves: 4, Persistence: 0.5, Lacunarity: 2}
}

// Sample sums the octaves at (x, z), normalized by the total amplitude.
// A field with no octaves is flat zero.
func (n ValueNoise) Sample(x, z float64) float64 {
	var sum, total float64
	amp, freq := 1.0, 1.0
	for o := range n.Octaves {
		sum += amp * n.octave(x*freq, z*freq, octaveSeed(n.Seed, o))
		total += amp
		amp *= n.Persistence
		freq *= n.Lacunarity
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// octave interpolates the four lattice corners around (x, z) with a quintic ease.
func (n ValueNoise) octave(x, z float64, seed int64) float64 {
	fx, fz := math.Floor(x), math.Floor(z)
	ix, iz := int64(fx), int64(fz)
	tx, tz := smootherstep(x-fx), smootherstep(z-fz)

	var corners [2][2]float64
	for dx := range int64(2) {
		for dz := range int64(2) {
			corners[dx][dz] = unitHash(ix+dx, iz+dz, seed)
		}
	}
	near := corners[0][0] + tx*(corners[1][0]-corners[0][0])
	far := corners[0][1] + tx*(corners[1][1]-corners[0][1])
	return near + tz*(far-near)
}

// octaveSeed decorrelates octaves of the same field.
func octaveSeed(seed int64, octave int) int64 {
	return seed + int64(octave)*131
}

// smootherstep is 6t^5 - 15t^4 + 10t^3.
func smootherstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// hash2 mixes a lattice point with a seed through a SplitMix64 finalizer.
func hash2(x, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(z)*0xC2B2AE3D27D4EB4F ^ uint64(seed)*0x165667B19E3779F9
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// unitHash maps a lattice point to [0,1].
func unitHash(x, z, seed int64) float64 {
	return float64(hash2(x, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

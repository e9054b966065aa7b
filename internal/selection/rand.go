package selection

// splitMix64 is the SplitMix64 generator (Steele, Lea & Flood; the reference
// implementation from Vigna's xoshiro site). It is written out here instead
// of using math/rand because the shuffle behind question selection must
// produce identical permutations on every platform and across releases: the
// stdlib does not document its Shuffle ordering as stable.
type splitMix64 struct {
	state uint64
}

func newSplitMix64(seed int64) *splitMix64 {
	return &splitMix64{state: uint64(seed)}
}

func (r *splitMix64) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// intn returns a value in [0, n). The modulo bias is negligible for the list
// sizes involved and, more importantly, is identical everywhere.
func (r *splitMix64) intn(n int) int {
	return int(r.next() % uint64(n))
}

// shuffle applies a Fisher-Yates shuffle, iterating from the last element
// down so the permutation for a given seed is fully specified.
func shuffle[T any](items []T, r *splitMix64) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

package selection

import "testing"

func TestSplitMix64Deterministic(t *testing.T) {
	a := newSplitMix64(615)
	b := newSplitMix64(615)

	for i := 0; i < 100; i++ {
		if va, vb := a.next(), b.next(); va != vb {
			t.Fatalf("sequence diverged at step %d: %d != %d", i, va, vb)
		}
	}
}

func TestSplitMix64SeedsDiffer(t *testing.T) {
	a := newSplitMix64(615)
	b := newSplitMix64(616)

	same := 0
	for i := 0; i < 20; i++ {
		if a.next() == b.next() {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestIntnRange(t *testing.T) {
	r := newSplitMix64(101)
	for i := 0; i < 1000; i++ {
		n := r.intn(7)
		if n < 0 || n >= 7 {
			t.Fatalf("intn(7) = %d, out of range", n)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	shuffle(items, newSplitMix64(1225))

	seen := make(map[int]bool)
	for _, v := range items {
		if seen[v] {
			t.Fatalf("value %d appears twice after shuffle", v)
		}
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Fatalf("shuffle lost elements: %d distinct values", len(seen))
	}
}

func TestShuffleStableForSeed(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	shuffle(a, newSplitMix64(704))
	shuffle(b, newSplitMix64(704))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("permutations differ at %d: %d != %d", i, a[i], b[i])
		}
	}
}

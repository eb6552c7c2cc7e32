package simulation

import "testing"

func TestSourceDeterminism(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 10000; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("sequences diverged at draw %d: %v != %v", i, va, vb)
		}
	}
}

func TestSourceRange(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 100000; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestSourceSeedsDiffer(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)
	same := true
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("seeds 1 and 2 produced identical 16-draw prefixes")
	}
}

// The recurrence is a fixed contract; restating the first draws here pins
// it against accidental changes.
func TestSourceFixedRecurrence(t *testing.T) {
	src := NewSource(42)
	first := src.Float64()
	second := src.Float64()

	ref := &Source{state: 42}
	ref.state += 0x6D2B79F5
	z := ref.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	want := float64(z) / 4294967296.0
	if first != want {
		t.Fatalf("first draw %v does not match recurrence value %v", first, want)
	}
	if second == first {
		t.Fatal("state did not advance between draws")
	}
}

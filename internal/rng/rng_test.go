package rng

import "testing"

func TestDeterministicBySeed(t *testing.T) {
	a := New("seed")
	b := New("seed")
	for i := 0; i < 1000; i++ {
		if x, y := a.UpTo(1000), b.UpTo(1000); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}

	d := New("seed")
	c := New("other")
	same := true
	for i := 0; i < 16; i++ {
		if d.UpTo(1<<30) != c.UpTo(1<<30) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical prefixes")
	}
}

func TestUpToBounds(t *testing.T) {
	g := New("bounds")
	for _, limit := range []int{1, 2, 7, 100} {
		for i := 0; i < 200; i++ {
			if v := g.UpTo(limit); v < 0 || v >= limit {
				t.Fatalf("UpTo(%d) = %d out of range", limit, v)
			}
		}
	}
}

func TestBitsWidth(t *testing.T) {
	g := New("bits")
	for i := 0; i < 100; i++ {
		if v := g.Bits(8); v > 0xff {
			t.Fatalf("Bits(8) = %#x exceeds 8 bits", v)
		}
		if v := g.Bits(1); v > 1 {
			t.Fatalf("Bits(1) = %d", v)
		}
	}
}

func TestShufflePermutes(t *testing.T) {
	g := New("shuffle")
	xs := make([]int, 50)
	for i := range xs {
		xs[i] = i
	}
	g.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })

	seen := make(map[int]bool, len(xs))
	for _, v := range xs {
		if v < 0 || v >= len(xs) || seen[v] {
			t.Fatalf("not a permutation: %v", xs)
		}
		seen[v] = true
	}
}

func TestCloneCheckpointsSequence(t *testing.T) {
	g := New("clone")
	for i := 0; i < 37; i++ {
		g.UpTo(100)
	}

	cp := g.Clone()
	for i := 0; i < 100; i++ {
		if x, y := g.UpTo(1 << 20), cp.UpTo(1<<20); x != y {
			t.Fatalf("clone diverged at draw %d: %d vs %d", i, x, y)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := New("encode")
	g.UpTo(12345)

	enc := g.Encode()
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := 0; i < 50; i++ {
		if x, y := g.UpTo(1<<16), dec.UpTo(1<<16); x != y {
			t.Fatalf("decoded state diverged at draw %d: %d vs %d", i, x, y)
		}
	}

	if _, err := Decode("!!!not base64!!!"); err == nil {
		t.Error("Decode of garbage should fail")
	}
}

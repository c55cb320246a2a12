package game

import (
	"testing"

	"github.com/vovakirdan/lightup/internal/rng"
)

func genParams(w, h, blackpc int, symm Symmetry, hard bool) Params {
	return Params{Width: w, Height: h, BlackPercent: blackpc, Symm: symm, Hard: hard}
}

func TestGenerateEasyPuzzle(t *testing.T) {
	p := genParams(7, 7, 20, SymmRot4, false)
	desc, stats := NewDesc(p, rng.New("gen-easy"))

	if err := ValidateDesc(p, desc); err != nil {
		t.Fatalf("generated descriptor %q invalid: %v", desc, err)
	}

	st, err := NewGame(p, desc)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	md := 0
	if n := st.Clone().Solve(false, true, &md); n != 1 {
		t.Fatalf("generated easy puzzle has %d solutions, want 1", n)
	}
	if md != 0 {
		t.Errorf("easy puzzle needed branching depth %d", md)
	}
	if stats.MaxDepth != 0 {
		t.Errorf("stats.MaxDepth = %d, want 0", stats.MaxDepth)
	}
}

func TestGenerateHardPuzzle(t *testing.T) {
	p := genParams(7, 7, 20, SymmRot4, true)
	desc, stats := NewDesc(p, rng.New("gen-hard"))

	st, err := NewGame(p, desc)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	// Unique under guessing...
	md := 0
	if n := st.Clone().Solve(true, true, &md); n != 1 {
		t.Fatalf("generated hard puzzle has %d solutions, want 1", n)
	}
	// ...but not reachable by propagation alone.
	if md == 0 || stats.MaxDepth == 0 {
		t.Errorf("hard puzzle solved without guessing (depth %d, stats %d)", md, stats.MaxDepth)
	}
	if n := st.Clone().Solve(false, true, nil); n == 1 {
		t.Error("hard puzzle must not be provable without guessing")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := genParams(7, 7, 20, SymmRot4, false)
	d1, _ := NewDesc(p, rng.New("fixed-seed"))
	d2, _ := NewDesc(p, rng.New("fixed-seed"))
	if d1 != d2 {
		t.Errorf("same seed produced different puzzles:\n%q\n%q", d1, d2)
	}
	d3, _ := NewDesc(p, rng.New("other-seed"))
	if d1 == d3 {
		t.Log("different seeds produced the same puzzle (possible but unexpected)")
	}
}

func TestGenerateSymmetries(t *testing.T) {
	for _, symm := range []Symmetry{SymmNone, SymmMirror2, SymmRot2, SymmMirror4, SymmRot4} {
		p := genParams(6, 6, 20, symm, false)
		desc, _ := NewDesc(p, rng.New("symm"))
		if err := ValidateDesc(p, desc); err != nil {
			t.Errorf("symmetry %v: invalid descriptor %q: %v", symm, desc, err)
		}
	}
}

func TestGenerateOddRot4(t *testing.T) {
	// Odd-sized rotation-4 exercises the centre-cell Bernoulli trial.
	p := genParams(7, 7, 20, SymmRot4, false)
	desc, _ := NewDesc(p, rng.New("odd-rot4"))
	if err := ValidateDesc(p, desc); err != nil {
		t.Fatalf("invalid descriptor %q: %v", desc, err)
	}
}

func TestGenerateRectangular(t *testing.T) {
	p := genParams(8, 5, 20, SymmRot2, false)
	desc, _ := NewDesc(p, rng.New("rect"))
	st, err := NewGame(p, desc)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if n := st.Solve(false, true, nil); n != 1 {
		t.Errorf("rectangular puzzle has %d solutions, want 1", n)
	}
}

func TestGenerateFullyBlack(t *testing.T) {
	// 100% black leaves no white cells; the puzzle is vacuously solved
	// and generation must still terminate.
	p := genParams(2, 2, 100, SymmNone, false)
	desc, _ := NewDesc(p, rng.New("all-black"))
	if desc != "BBBB" {
		t.Errorf("descriptor = %q, want %q", desc, "BBBB")
	}
}

func TestBlackLayoutSymmetry(t *testing.T) {
	p := genParams(6, 6, 30, SymmRot2, false)
	st := newState(p)
	st.setBlacks(p, rng.New("layout"))

	for y := 0; y < st.H; y++ {
		for x := 0; x < st.W; x++ {
			mx, my := st.W-1-x, st.H-1-y
			if st.IsBlack(x, y) != st.IsBlack(mx, my) {
				t.Errorf("rot-2 asymmetry between (%d,%d) and (%d,%d)", x, y, mx, my)
			}
		}
	}
}

func TestPlaceLightsProducesSolution(t *testing.T) {
	p := genParams(7, 7, 20, SymmRot2, false)
	st := newState(p)
	rs := rng.New("seed-solution")
	st.setBlacks(p, rs)
	st.placeLights(rs)

	if !st.allLit() {
		t.Error("seed solution leaves cells dark")
	}
	if st.hasOverlap() {
		t.Error("seed solution has overlapping lights")
	}
	checkLitInvariant(t, st)

	// Numbering the blacks from this solution keeps it a solution.
	st.placeNumbers()
	if !st.IsCorrect() {
		t.Error("numbered seed solution should be fully correct")
	}
}

func TestRoundTripGeneratedPuzzle(t *testing.T) {
	// Generate, encode, decode, solve via a move string; the final flags
	// must match a direct in-memory solve.
	p := genParams(7, 7, 20, SymmRot4, false)
	desc, _ := NewDesc(p, rng.New("round-trip"))

	st, err := NewGame(p, desc)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	direct := st.Clone()
	if n := direct.Solve(true, true, nil); n != 1 {
		t.Fatalf("direct solve = %d, want 1", n)
	}

	move, err := SolveMove(st, st)
	if err != nil {
		t.Fatalf("SolveMove: %v", err)
	}
	viaMove, err := ExecuteMove(st, move)
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if !viaMove.Completed {
		t.Fatal("move-based solve did not complete the puzzle")
	}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if direct.IsLight(x, y) != viaMove.IsLight(x, y) {
				t.Errorf("light mismatch at (%d,%d)", x, y)
			}
		}
	}
}

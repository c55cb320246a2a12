package game

import "testing"

// mustGame builds a state from params string + descriptor, failing the test
// on any validation error.
func mustGame(t *testing.T, params, desc string) *State {
	t.Helper()
	p := DecodeParams(params)
	if err := p.Validate(true); err != nil {
		t.Fatalf("params %q invalid: %v", params, err)
	}
	st, err := NewGame(p, desc)
	if err != nil {
		t.Fatalf("NewGame(%q, %q): %v", params, desc, err)
	}
	return st
}

// checkLitInvariant recomputes every illumination count from scratch and
// compares with the incrementally maintained plane.
func checkLitInvariant(t *testing.T, s *State) {
	t.Helper()
	nlights := 0
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if s.IsLight(x, y) {
				nlights++
			}
			if s.IsBlack(x, y) {
				continue
			}
			want := 0
			if s.IsLight(x, y) {
				want++
			}
			s.rayFrom(x, y, false).each(func(lx, ly int) {
				if s.IsLight(lx, ly) {
					want++
				}
			})
			if got := s.LitCount(x, y); got != want {
				t.Errorf("lit count at (%d,%d): got %d, want %d", x, y, got, want)
			}
			if s.IsLight(x, y) && s.IsImpossible(x, y) {
				t.Errorf("cell (%d,%d) is both light and impossible", x, y)
			}
		}
	}
	if s.NLights != nlights {
		t.Errorf("NLights = %d, want %d", s.NLights, nlights)
	}
}

func TestSetLightMaintainsCounts(t *testing.T) {
	st := mustGame(t, "5x5b20s0", "aBceb1becBa")

	coords := [][2]int{{0, 0}, {4, 0}, {2, 2}, {0, 4}, {4, 4}}
	for _, c := range coords {
		if st.IsBlack(c[0], c[1]) {
			continue
		}
		st.setLight(c[0], c[1], true)
		checkLitInvariant(t, st)
	}
	for _, c := range coords {
		if st.IsBlack(c[0], c[1]) {
			continue
		}
		st.setLight(c[0], c[1], false)
		checkLitInvariant(t, st)
	}
	if st.NLights != 0 {
		t.Errorf("NLights = %d after removing everything", st.NLights)
	}
}

func TestSetLightIdempotent(t *testing.T) {
	st := mustGame(t, "3x3b5s0", "i")

	st.setLight(1, 1, true)
	before := st.LitCount(0, 1)
	st.setLight(1, 1, true) // no-op
	if st.LitCount(0, 1) != before {
		t.Errorf("repeated setLight changed counts: %d vs %d", st.LitCount(0, 1), before)
	}
	if st.NLights != 1 {
		t.Errorf("NLights = %d, want 1", st.NLights)
	}
}

func TestSetLightOnBlackPanics(t *testing.T) {
	st := mustGame(t, "3x3b20s0", "aBacaBa")
	defer func() {
		if recover() == nil {
			t.Error("setLight on a black cell should panic")
		}
	}()
	st.setLight(1, 0, true)
}

func TestRayStopsAtBlack(t *testing.T) {
	// 5x1-style row inside a 5x2 grid: blacks split the visibility runs.
	st := newState(Params{Width: 5, Height: 2, BlackPercent: 20})
	st.flags[st.idx(2, 0)] |= FlagBlack

	r := st.rayFrom(0, 0, true)
	if r.minX != 0 || r.maxX != 1 {
		t.Errorf("row extent [%d..%d], want [0..1]", r.minX, r.maxX)
	}
	if r.minY != 0 || r.maxY != 1 {
		t.Errorf("column extent [%d..%d], want [0..1]", r.minY, r.maxY)
	}

	// Every cell visited exactly once, origin included.
	seen := map[[2]int]int{}
	r.each(func(x, y int) { seen[[2]int{x, y}]++ })
	want := [][2]int{{1, 0}, {0, 0}, {0, 1}}
	if len(seen) != len(want) {
		t.Fatalf("visited %d cells, want %d: %v", len(seen), len(want), seen)
	}
	for _, c := range want {
		if seen[c] != 1 {
			t.Errorf("cell %v visited %d times", c, seen[c])
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	st := mustGame(t, "3x3b5s0", "i")
	cp := st.Clone()
	cp.setLight(0, 0, true)
	if st.IsLight(0, 0) || st.LitCount(2, 0) != 0 {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestNeighborsEdgeClipped(t *testing.T) {
	st := newState(Params{Width: 3, Height: 3})
	if n := len(st.neighbors(0, 0)); n != 2 {
		t.Errorf("corner has %d neighbours, want 2", n)
	}
	if n := len(st.neighbors(1, 0)); n != 3 {
		t.Errorf("edge has %d neighbours, want 3", n)
	}
	if n := len(st.neighbors(1, 1)); n != 4 {
		t.Errorf("centre has %d neighbours, want 4", n)
	}
}

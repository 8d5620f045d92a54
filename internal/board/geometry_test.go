package board

import "testing"

func TestCoordsToIndex(t *testing.T) {
	cases := []struct {
		row, col, want int
	}{
		{0, 0, 0}, {0, 5, 5}, {1, 0, 6}, {1, 6, 12}, {2, 0, 13}, {2, 5, 18},
		{3, 0, 19}, {3, 6, 25}, {4, 0, 26}, {4, 5, 31}, {5, 0, 32}, {5, 6, 38},
		{6, 0, 39}, {6, 5, 44},
	}
	for _, tc := range cases {
		if got := CoordsToIndex(tc.row, tc.col); got != tc.want {
			t.Errorf("CoordsToIndex(%d,%d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
		gr, gc := IndexToCoords(tc.want)
		if gr != tc.row || gc != tc.col {
			t.Errorf("IndexToCoords(%d) = (%d,%d), want (%d,%d)", tc.want, gr, gc, tc.row, tc.col)
		}
	}
}

func TestIndexToStringRoundTrip(t *testing.T) {
	for i := 0; i < NCells; i++ {
		s := IndexToString(i)
		got, ok := StringToIndex(s)
		if !ok || got != i {
			t.Errorf("round trip failed for index %d (%q): got %d, ok=%v", i, s, got, ok)
		}
	}
}

// TestTwoStepLines locks in the straight 2-step (mid, end) pairs confirmed
// against the reference action-index test vectors: "b4c3d4" -> (35,28,22)
// and "b7b6c6" -> (38,37,31) (the latter is two successive 1-range hops,
// used here only to confirm N1 adjacency along the same diagonal).
func TestTwoStepLines(t *testing.T) {
	b4, _ := StringToIndex("b4")
	c3, _ := StringToIndex("c3")
	d4, _ := StringToIndex("d4")
	if b4 != 35 || c3 != 28 || d4 != 22 {
		t.Fatalf("cell parse mismatch: b4=%d c3=%d d4=%d", b4, c3, d4)
	}

	found := false
	for _, nb := range N2(b4) {
		if nb.End == d4 {
			found = true
			if nb.Mid != c3 {
				t.Errorf("N2(b4) end=d4 has mid=%d, want c3=%d", nb.Mid, c3)
			}
		}
	}
	if !found {
		t.Fatalf("N2(b4) does not contain d4 as a 2-step destination")
	}

	b7, _ := StringToIndex("b7")
	b6, _ := StringToIndex("b6")
	c6, _ := StringToIndex("c6")
	if b7 != 38 || b6 != 37 || c6 != 31 {
		t.Fatalf("cell parse mismatch: b7=%d b6=%d c6=%d", b7, b6, c6)
	}
	if !contains(N1(b7), b6) {
		t.Errorf("N1(b7) does not contain b6")
	}
	if !contains(N1(b6), c6) {
		t.Errorf("N1(b6) does not contain c6")
	}

	a1, _ := StringToIndex("a1")
	b1, _ := StringToIndex("b1")
	if a1 != 39 || b1 != 32 {
		t.Fatalf("cell parse mismatch: a1=%d b1=%d", a1, b1)
	}
	if !contains(N1(a1), b1) {
		t.Errorf("N1(a1) does not contain b1")
	}

	c1, _ := StringToIndex("c1")
	if c1 != 26 {
		t.Fatalf("cell parse mismatch: c1=%d", c1)
	}
	if !contains(N1(b1), c1) {
		t.Errorf("N1(b1) does not contain c1")
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func TestEveryCellHasNeighbours(t *testing.T) {
	for i := 0; i < NCells; i++ {
		if len(N1(i)) == 0 {
			t.Errorf("cell %d has no 1-range neighbours", i)
		}
		for _, nb := range N2(i) {
			if !contains(N1(i), nb.Mid) {
				t.Errorf("cell %d: N2 entry mid=%d is not in N1(%d)", i, nb.Mid, i)
			}
		}
	}
}

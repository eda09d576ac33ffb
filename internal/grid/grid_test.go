package grid

import (
	"testing"

	"baccarat-lab/internal/domain"
)

func seq(letters string) []domain.Outcome {
	out := make([]domain.Outcome, 0, len(letters))
	for _, r := range letters {
		out = append(out, domain.Outcome(string(r)))
	}
	return out
}

func TestBeadPlate_FillsColumnMajor(t *testing.T) {
	layout := BeadPlate(seq("BPTBP"), 3, 4)

	// First column top-to-bottom: B, P, T. Second column: B, P.
	want := map[[2]int]domain.Outcome{
		{0, 0}: domain.OutcomeBanker,
		{1, 0}: domain.OutcomePlayer,
		{2, 0}: domain.OutcomeTie,
		{0, 1}: domain.OutcomeBanker,
		{1, 1}: domain.OutcomePlayer,
	}
	for pos, o := range want {
		if layout[pos[0]][pos[1]] != o {
			t.Errorf("cell (%d,%d) = %q, want %q", pos[0], pos[1], layout[pos[0]][pos[1]], o)
		}
	}
	if layout[2][1] != Empty {
		t.Errorf("cell (2,1) = %q, want empty", layout[2][1])
	}
}

func TestBeadPlate_KeepsMostRecentWindow(t *testing.T) {
	// Capacity 4; six outcomes: only the last four are shown.
	layout := BeadPlate(seq("BBBBPT"), 2, 2)

	got := []domain.Outcome{layout[0][0], layout[1][0], layout[0][1], layout[1][1]}
	want := seq("BBPT")
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("window cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBeadPlate_Dimensions(t *testing.T) {
	layout := BeadPlate(nil, 0, 0)
	if len(layout) != DefaultRows || len(layout[0]) != DefaultCols {
		t.Errorf("default layout %dx%d, want %dx%d",
			len(layout), len(layout[0]), DefaultRows, DefaultCols)
	}
}

func TestBigRoad_StreakColumns(t *testing.T) {
	// BBP: one Banker streak of two, then a Player column.
	layout := BigRoad(seq("BBP"), 6, 12)

	if layout[0][0] != domain.OutcomeBanker || layout[1][0] != domain.OutcomeBanker {
		t.Errorf("column 0 = %q,%q, want Banker streak", layout[0][0], layout[1][0])
	}
	if layout[0][1] != domain.OutcomePlayer {
		t.Errorf("cell (0,1) = %q, want Player", layout[0][1])
	}
	if layout[2][0] != Empty {
		t.Errorf("cell (2,0) = %q, want empty", layout[2][0])
	}
}

func TestBigRoad_TiesSkipped(t *testing.T) {
	a := BigRoad(seq("BTPTB"), 6, 12)
	b := BigRoad(seq("BPB"), 6, 12)

	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				t.Fatalf("tie-laden layout differs at (%d,%d): %q vs %q",
					r, c, a[r][c], b[r][c])
			}
		}
	}
}

func TestBigRoad_DragonTail(t *testing.T) {
	// Seven Bankers in a 3-row grid: three fill the column, the rest
	// bend right along the bottom row.
	layout := BigRoad(seq("BBBBBBB"), 3, 12)

	if layout[0][0] != domain.OutcomeBanker ||
		layout[1][0] != domain.OutcomeBanker ||
		layout[2][0] != domain.OutcomeBanker {
		t.Fatal("column 0 not fully filled")
	}
	for c := 1; c <= 4; c++ {
		if layout[2][c] != domain.OutcomeBanker {
			t.Errorf("tail cell (2,%d) = %q, want Banker", c, layout[2][c])
		}
		if layout[0][c] != Empty {
			t.Errorf("cell (0,%d) = %q, want empty", c, layout[0][c])
		}
	}
}

func TestBigRoad_WindowShift(t *testing.T) {
	// Alternating B/P makes one column per outcome; 20 outcomes in a
	// 4-column grid shows only the last 4 columns.
	layout := BigRoad(seq("BPBPBPBPBPBPBPBPBPBP"), 6, 4)

	for c := 0; c < 4; c++ {
		if layout[0][c] == Empty {
			t.Errorf("column %d empty after shift", c)
		}
	}
	// 20 alternating outcomes end on P; the visible window alternates
	// ending with Player in the rightmost column.
	if layout[0][3] != domain.OutcomePlayer {
		t.Errorf("rightmost column = %q, want Player", layout[0][3])
	}
}

package model

import "testing"

func TestCountComponentsEmptyGrid(t *testing.T) {
	g := mustGrid(t, 5, 5)
	if got := CountComponents(g); got != 0 {
		t.Errorf("CountComponents = %d on empty grid, want 0", got)
	}
}

func TestCountComponentsSingleCell(t *testing.T) {
	g := mustGrid(t, 5, 5)
	mustSet(t, g, [2]int{2, 2})
	if got := CountComponents(g); got != 1 {
		t.Errorf("CountComponents = %d, want 1", got)
	}
}

func TestCountComponentsAdjacentCellsMerge(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
		want  int
	}{
		{"horizontal neighbors", [][2]int{{2, 2}, {2, 3}}, 1},
		{"diagonal neighbors", [][2]int{{1, 1}, {2, 2}}, 1},
		{"separated cells", [][2]int{{0, 0}, {3, 3}}, 2},
		{"chain through diagonals", [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, 1},
		{"two pairs", [][2]int{{0, 0}, {0, 1}, {4, 4}, {4, 5}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, 7, 7)
			mustSet(t, g, tt.cells...)
			if got := CountComponents(g); got != tt.want {
				t.Errorf("CountComponents = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountComponentsConnectsAcrossEdges(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
		want  int
	}{
		{"opposite corners touch diagonally", [][2]int{{0, 0}, {5, 5}}, 1},
		{"left and right edge touch", [][2]int{{3, 0}, {3, 5}}, 1},
		{"top and bottom edge touch", [][2]int{{0, 3}, {5, 3}}, 1},
		{"edge cells offset by two rows stay apart", [][2]int{{1, 0}, {4, 5}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, 6, 6)
			mustSet(t, g, tt.cells...)
			if got := CountComponents(g); got != tt.want {
				t.Errorf("CountComponents = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountComponentsDefaultGrid(t *testing.T) {
	// The stock seed's five cells all touch through diagonals.
	if got := CountComponents(DefaultGrid()); got != 1 {
		t.Errorf("CountComponents = %d on default grid, want 1", got)
	}
}

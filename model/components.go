package model

import "github.com/lifegrid/go-life/unionfind"

/*
CountComponents returns the number of connected groups of alive cells, where
cells connect through any of their 8 toroidal neighbors.

Every cell gets one disjoint-set element at flattened index row*cols+col.
Each alive cell is unioned with each alive neighbor, then the result is the
number of distinct set roots among alive cells. Dead cells contribute nothing,
so an empty grid has zero components.
*/
func CountComponents(g *Grid) int {
	uf := unionfind.New(g.rows * g.cols)

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if !g.cells[row][col] {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr := (row + dr + g.rows) % g.rows
					nc := (col + dc + g.cols) % g.cols
					if g.cells[nr][nc] {
						uf.Union(row*g.cols+col, nr*g.cols+nc)
					}
				}
			}
		}
	}

	roots := make(map[int]struct{})
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col] {
				roots[uf.Find(row*g.cols+col)] = struct{}{}
			}
		}
	}
	return len(roots)
}

package model

import (
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lifegrid/go-life/rules"
)

// ErrOutOfRange signals a cell coordinate outside the grid's dimensions.
var ErrOutOfRange = errors.New("cell coordinate out of range")

// Grid represents the game board: a fixed-dimension toroidal field of cells.
// Dimensions never change after construction; each generation produces a new
// Grid rather than mutating the one being read.
type Grid struct {
	rows       int
	cols       int
	cells      [][]bool
	aliveCount int
}

// NewGrid creates an all-dead grid with the specified dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("[NewGrid] dimensions must be positive, got %dx%d", rows, cols)
	}
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

// DefaultGrid returns the stock 5x5 pattern with five alive cells. The
// pattern never reaches the grid edges and dies off after four generations.
func DefaultGrid() *Grid {
	g, _ := NewGrid(5, 5)
	for _, c := range [][2]int{{1, 1}, {1, 3}, {2, 2}, {3, 2}, {3, 3}} {
		g.cells[c[0]][c[1]] = true
	}
	g.aliveCount = 5
	return g
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// AliveCount returns the number of alive cells, maintained across mutations.
func (g *Grid) AliveCount() int {
	return g.aliveCount
}

// IsAnyAlive reports whether at least one cell is alive.
func (g *Grid) IsAnyAlive() bool {
	return g.aliveCount > 0
}

// inRange reports whether (row, col) addresses a cell of the grid.
func (g *Grid) inRange(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellState returns the state of the cell at (row, col): alive or dead.
func (g *Grid) CellState(row, col int) (bool, error) {
	if !g.inRange(row, col) {
		return false, errors.Wrapf(ErrOutOfRange, "[CellState] (%d,%d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Set sets the cell at (row, col) to alive (true) or dead (false).
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.inRange(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[Set] (%d,%d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	if g.cells[row][col] != alive {
		g.cells[row][col] = alive
		if alive {
			g.aliveCount++
		} else {
			g.aliveCount--
		}
	}
	return nil
}

// Toggle flips the state of the cell at (row, col).
func (g *Grid) Toggle(row, col int) error {
	if !g.inRange(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[Toggle] (%d,%d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.Set(row, col, !g.cells[row][col])
}

// AliveNeighbors counts the alive cells among the 8 toroidal neighbors of
// (row, col). Neighbor coordinates wrap modulo the grid extents, so a corner
// cell's neighborhood reaches the opposite edges and there is no out-of-bounds
// case. The count is always in 0..8.
func (g *Grid) AliveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue // Skip the cell itself
			}
			nr := (row + dr + g.rows) % g.rows
			nc := (col + dc + g.cols) % g.cols
			if g.cells[nr][nc] {
				count++
			}
		}
	}
	return count
}

// NextGeneration computes the next generation into a brand-new grid, reading
// only the receiver. Rows are sharded across CPUs; each worker writes a
// disjoint row range of the output, so the input snapshot stays untouched
// until the caller swaps grids wholesale.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.rows, g.cols)
	} else {
		next, _ = NewGrid(g.rows, g.cols)
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.rows)
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
		shardAlive    = make([]int, numWorkers)
	)

	for i := 0; i < numWorkers; i++ {
		i := i
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			alive := 0
			for row := startRow; row < endRow; row++ {
				for col := 0; col < g.cols; col++ {
					if rules.ApplyConwayRules(g.AliveNeighbors(row, col), g.cells[row][col]) {
						next.cells[row][col] = true
						alive++
					}
				}
			}
			shardAlive[i] = alive
			return nil
		})
	}

	// Workers never return errors; Wait only serves as the join point.
	_ = eg.Wait()

	next.aliveCount = 0
	for _, alive := range shardAlive {
		next.aliveCount += alive
	}
	return next
}

// NextGenerations applies the transition rule n times and returns the
// resulting grid. n == 0 returns the receiver unchanged. Intermediate grids
// are returned to the pool when one is supplied; the receiver never is, since
// the caller still holds it.
func (g *Grid) NextGenerations(n int, pool *GridPool) *Grid {
	cur := g
	for i := 0; i < n; i++ {
		next := cur.NextGeneration(pool)
		if cur != g {
			GridToPool(cur, pool)
		}
		cur = next
	}
	return cur
}

// Randomize fills the grid with alive cells at an independent per-cell
// probability given by density.
func (g *Grid) Randomize(density float64) {
	g.aliveCount = 0
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			alive := rand.Float64() < density
			g.cells[row][col] = alive
			if alive {
				g.aliveCount++
			}
		}
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.cells[row][col] = false
		}
	}
	g.aliveCount = 0
}

// Snapshot returns a deep copy of the grid for external readers.
func (g *Grid) Snapshot() *Grid {
	copied, _ := NewGrid(g.rows, g.cols)
	for row := 0; row < g.rows; row++ {
		copy(copied.cells[row], g.cells[row])
	}
	copied.aliveCount = g.aliveCount
	return copied
}

// Reset resizes and clears the grid, reusing row slices where dimensions
// already match. Only the pool calls this; grids handed out by constructors
// keep their dimensions for life.
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.aliveCount = 0

	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

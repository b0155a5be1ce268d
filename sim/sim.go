package sim

import (
	"time"

	"github.com/lifegrid/go-life/model"
)

// State is the driver's run state. There are exactly two: a stopped
// simulation accepts edits and manual stepping, a running one only ticks.
type State int

const (
	Stopped State = iota
	Running
)

// String returns the state name.
func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

const (
	// MinTickInterval and MaxTickInterval bound the configurable tick cadence.
	MinTickInterval = 60 * time.Millisecond
	MaxTickInterval = 600 * time.Millisecond

	// DefaultTickInterval is the cadence used until the caller adjusts it.
	DefaultTickInterval = 150 * time.Millisecond

	// randomizeDensity is the independent per-cell alive probability used by
	// Randomize.
	randomizeDensity = 0.30
)

// Simulation owns a grid and drives it through generations. All state lives
// on the struct and every transition goes through a method, so there is no
// free-floating "running" flag shared with timer callbacks. The Simulation is
// confined to a single goroutine; the external timer only delivers cadence by
// calling Tick.
type Simulation struct {
	grid         *model.Grid
	pool         *model.GridPool
	state        State
	generation   int
	tickInterval time.Duration
}

// New creates a stopped simulation at generation zero, owning the given grid.
func New(grid *model.Grid) *Simulation {
	return &Simulation{
		grid:         grid,
		pool:         model.NewGridPool(),
		state:        Stopped,
		tickInterval: DefaultTickInterval,
	}
}

// Start transitions the simulation to Running.
func (s *Simulation) Start() {
	s.state = Running
}

// Stop transitions the simulation to Stopped.
func (s *Simulation) Stop() {
	s.state = Stopped
}

// ToggleRun flips between Running and Stopped.
func (s *Simulation) ToggleRun() {
	if s.state == Running {
		s.state = Stopped
	} else {
		s.state = Running
	}
}

// Running reports whether the simulation is in the Running state.
func (s *Simulation) Running() bool {
	return s.state == Running
}

// advance replaces the held grid with the next generation and bumps the
// counter. The old grid goes back to the pool; queries hand out snapshots,
// so nothing outside the simulation aliases it.
func (s *Simulation) advance() {
	next := s.grid.NextGeneration(s.pool)
	model.GridToPool(s.grid, s.pool)
	s.grid = next
	s.generation++
}

// Tick advances one generation while Running. The external timer calls this
// once per interval; ticks delivered while Stopped are ignored.
func (s *Simulation) Tick() {
	if s.state == Running {
		s.advance()
	}
}

// Step advances one generation while Stopped and leaves the simulation
// Stopped. A step requested while Running is silently ignored.
func (s *Simulation) Step() {
	if s.state == Stopped {
		s.advance()
	}
}

// ToggleCell flips the cell at (row, col). Edits while Running are silently
// rejected. An out-of-range coordinate is the caller's error.
func (s *Simulation) ToggleCell(row, col int) error {
	if s.state == Running {
		return nil
	}
	return s.grid.Toggle(row, col)
}

// Clear stops the simulation, kills every cell, and resets the generation
// counter to zero.
func (s *Simulation) Clear() {
	s.state = Stopped
	s.grid.Clear()
	s.generation = 0
}

// Randomize stops the simulation, reseeds the grid with ~30% alive cells,
// and resets the generation counter to zero.
func (s *Simulation) Randomize() {
	s.state = Stopped
	s.grid.Randomize(randomizeDensity)
	s.generation = 0
}

// SetTickInterval sets the tick cadence, clamped to
// [MinTickInterval, MaxTickInterval].
func (s *Simulation) SetTickInterval(d time.Duration) {
	s.tickInterval = min(max(d, MinTickInterval), MaxTickInterval)
}

// SetTickIntervalMs sets the tick cadence from a millisecond count, with the
// same clamping as SetTickInterval.
func (s *Simulation) SetTickIntervalMs(ms int) {
	s.SetTickInterval(time.Duration(ms) * time.Millisecond)
}

// TickInterval returns the current tick cadence.
func (s *Simulation) TickInterval() time.Duration {
	return s.tickInterval
}

// Grid returns a snapshot of the current grid.
func (s *Simulation) Grid() *model.Grid {
	return s.grid.Snapshot()
}

// CellState returns the state of the cell at (row, col).
func (s *Simulation) CellState(row, col int) (bool, error) {
	return s.grid.CellState(row, col)
}

// AliveCount returns the number of alive cells in the current grid.
func (s *Simulation) AliveCount() int {
	return s.grid.AliveCount()
}

// IsAnyAlive reports whether any cell in the current grid is alive.
func (s *Simulation) IsAnyAlive() bool {
	return s.grid.IsAnyAlive()
}

// Generation returns the number of generations applied since the last reset.
func (s *Simulation) Generation() int {
	return s.generation
}

// CountComponents returns the number of connected alive-cell groups in the
// current grid, recomputed fresh on every call.
func (s *Simulation) CountComponents() int {
	return model.CountComponents(s.grid)
}

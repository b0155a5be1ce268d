package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/lifegrid/go-life/model"
	"github.com/lifegrid/go-life/sim"
	"github.com/lifegrid/go-life/utils"
)

// seedGrid builds the initial grid from the configuration: a seed file when
// one is given, otherwise a random board, otherwise the stock 5x5 pattern.
func seedGrid(config utils.Config) (*model.Grid, error) {
	if config.SeedFile != "" {
		f, err := os.Open(config.SeedFile)
		if err != nil {
			return nil, errors.Wrapf(err, "[seedGrid] failed to open seed file: %+v", config.SeedFile)
		}
		defer f.Close()
		return model.ReadGrid(f)
	}

	if config.RandomSeed {
		grid, err := model.NewGrid(config.Rows, config.Cols)
		if err != nil {
			return nil, err
		}
		grid.Randomize(config.RandomDensity)
		return grid, nil
	}

	return model.DefaultGrid(), nil
}

// initializeSimulation sets up the simulation from the configuration
func initializeSimulation(config utils.Config) (*sim.Simulation, error) {
	grid, err := seedGrid(config)
	if err != nil {
		return nil, err
	}

	simulation := sim.New(grid)
	simulation.SetTickIntervalMs(config.TickIntervalMs)
	return simulation, nil
}

// displaySimulationInfo shows the initial simulation information
func displaySimulationInfo(config utils.Config, simulation *sim.Simulation) {
	grid := simulation.Grid()
	fmt.Printf("Grid: %dx%d | Initial alive cells: %d | Tick: %v\n",
		grid.Rows(), grid.Cols(), simulation.AliveCount(), simulation.TickInterval())
	if config.MaxGenerations > 0 {
		fmt.Printf("Stopping after %d generations\n", config.MaxGenerations)
	}
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displaySimulationStatus shows the current simulation status
func displaySimulationStatus(simulation *sim.Simulation, config utils.Config, stats *utils.Stats) {
	grid := simulation.Grid()
	density := float64(simulation.AliveCount()) / float64(grid.Rows()*grid.Cols()) * 100

	componentInfo := ""
	if config.ShowComponents {
		componentInfo = fmt.Sprintf(" | Components: %d", simulation.CountComponents())
	}

	status := "Active"
	if !simulation.IsAnyAlive() {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Alive: %d | Density: %.1f%% | Status: %s%s\n",
		simulation.Generation(), simulation.AliveCount(), density, status, componentInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lifegrid/go-life/model"
	"github.com/lifegrid/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	simulation, err := initializeSimulation(config)
	if err != nil {
		fmt.Printf("Failed to initialize simulation: %v\n", err)
		os.Exit(1)
	}

	displaySimulationInfo(config, simulation)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	// The timer only delivers cadence; the simulation itself decides whether
	// a tick advances anything.
	simulation.Start()
	ticker := time.NewTicker(simulation.TickInterval())
	defer ticker.Stop()

	lastTick := time.Now()
	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				simulation.Generation(), time.Since(stats.StartTime).Seconds())
			return
		case <-ticker.C:
			simulation.Tick()

			stats.Update(simulation.Generation(), simulation.AliveCount(), time.Since(lastTick))
			lastTick = time.Now()

			renderer.Clear()
			displaySimulationStatus(simulation, config, stats)
			renderer.Display(simulation.Grid())

			if !simulation.IsAnyAlive() {
				simulation.Stop()
				fmt.Println("\nAll cells are dead - simulation complete")
				return
			}
			if config.MaxGenerations > 0 && simulation.Generation() >= config.MaxGenerations {
				simulation.Stop()
				fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
				return
			}
		}
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/tatianab/three-doors/internal/config"
	"github.com/tatianab/three-doors/internal/engine"
	"github.com/tatianab/three-doors/internal/loader"
	"github.com/tatianab/three-doors/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	world, err := loader.LoadWorldFiles(cfg.ItemsPath, cfg.RoomsPath)
	if err != nil {
		fmt.Printf("Error loading world: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.New(world.Rooms, world.Catalog, world.Start, cfg.MaxInventory)
	if err != nil {
		fmt.Printf("Error creating engine: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(eng); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

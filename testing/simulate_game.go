package main

import (
	"fmt"
	"log"

	"github.com/tatianab/three-doors/internal/config"
	"github.com/tatianab/three-doors/internal/engine"
	"github.com/tatianab/three-doors/internal/loader"
)

// A scripted playthrough of the embedded world, printing each command and
// the engine's narration. Useful for eyeballing the full command surface
// without the TUI.
var script = []string{
	"look",
	"go east",
	"take brass key",
	"look brass key",
	"take dog biscuit",
	"inventory",
	"go east",
	"choose 1",
	"choose 1",
	"go east",
	"go north",
	"choose 2",
	"choose 1",
	"go north",
	"go south",
	"choose 5",
	"choose 2",
	"choose 1",
	"inventory",
	"quit",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	world, err := loader.LoadWorldFiles(cfg.ItemsPath, cfg.RoomsPath)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	eng, err := engine.New(world.Rooms, world.Catalog, world.Start, cfg.MaxInventory)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	fmt.Println(eng.Intro())
	fmt.Println()

	for _, line := range script {
		fmt.Printf("> %s\n", line)
		output, quit := eng.ProcessTurn(line)
		if output != "" {
			fmt.Println(output)
		}
		fmt.Println()
		if quit {
			break
		}
	}
}

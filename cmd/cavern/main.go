// Command cavern generates a world from a seed and prints it as ASCII art
// together with its generation report and content hash.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cavern-realm/server/config"
	"cavern-realm/server/generation"
	"cavern-realm/server/models"
	"cavern-realm/server/persistence"
)

func main() {
	seed := flag.Int64("seed", 42, "world seed")
	configPath := flag.String("config", "", "path to a YAML config file (generation section is used)")
	savePath := flag.String("save", "", "write seed and spawn to this save file")
	loadPath := flag.String("load", "", "resume from this save file instead of -seed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	generator, err := generation.NewGenerator(cfg.Generation)
	if err != nil {
		log.Fatalf("Invalid generation parameters: %v", err)
	}

	world, avatar, err := resolve(generator, *seed, *loadPath)
	if err != nil {
		log.Fatalf("Failed to resume: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	render(out, world, avatar)
	fmt.Fprintln(out, world.Report())
	fmt.Fprintf(out, "hash=%s spawn=(%d,%d)\n", world.Hash(), avatar.X, avatar.Y)
	if err := out.Flush(); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if *savePath != "" {
		state := models.SaveState{Seed: world.Seed(), X: avatar.X, Y: avatar.Y}
		if err := persistence.WriteSaveFile(*savePath, state); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Saved seed %d at (%d,%d) to %s", state.Seed, state.X, state.Y, *savePath)
	}
}

// resolve picks the world and avatar position. A missing or malformed save
// file falls back to a fresh world for seed.
func resolve(generator *generation.Generator, seed int64, loadPath string) (*generation.World, generation.Position, error) {
	if loadPath != "" {
		state, err := persistence.ReadSaveFile(loadPath)
		switch {
		case err == nil:
			world := generator.Generate(state.Seed)
			pos := state.Position()
			if !world.CanOccupy(pos.X, pos.Y) {
				pos = world.DefaultSpawn()
			}
			return world, pos, nil
		case errors.Is(err, persistence.ErrNoSavedState):
			log.Printf("No usable save in %s (%v), generating seed %d", loadPath, err, seed)
		default:
			return nil, generation.Position{}, err
		}
	}
	world := generator.Generate(seed)
	return world, world.DefaultSpawn(), nil
}

// render prints the world with row 0 at the top.
func render(w io.Writer, world *generation.World, avatar generation.Position) {
	snapshot := world.Snapshot()
	for y, row := range snapshot.Rows() {
		line := []byte(row)
		if y == avatar.Y && avatar.X >= 0 && avatar.X < len(line) {
			line[avatar.X] = '@'
		}
		fmt.Fprintf(w, "%s\n", line)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"

	"github.com/eak1mov/go-stitch/geom"
	"github.com/eak1mov/go-stitch/internal"
	"github.com/eak1mov/go-stitch/stitch"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type stressCmd struct {
	width   int
	height  int
	steps   int
	maxSize int
	seed    uint64
	every   int
	verify  bool
}

func (c *stressCmd) Name() string     { return "stress" }
func (c *stressCmd) Synopsis() string { return "run random inserts and deletes with diagnostics" }
func (c *stressCmd) Usage() string {
	return "stitchutils stress [-w <width> -h <height> -n <steps> -max <size> -seed <seed> -every <n> -verify]\n"
}
func (c *stressCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "w", 64, "Plane width")
	f.IntVar(&c.height, "h", 64, "Plane height")
	f.IntVar(&c.steps, "n", 10000, "Number of random operations")
	f.IntVar(&c.maxSize, "max", 8, "Maximum rectangle side")
	f.Uint64Var(&c.seed, "seed", 1, "Random seed")
	f.IntVar(&c.every, "every", 1, "Run diagnostics every n mutations")
	f.BoolVar(&c.verify, "verify", false, "Compare space tiles with a row scan (slow)")
}

var errViolations = errors.New("diagnostics failed")

func (c *stressCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	bounds := geom.R(0, 0, c.width, c.height)
	if !bounds.Valid() || c.maxSize <= 0 || c.every <= 0 {
		log.Printf("invalid arguments")
		return subcommands.ExitUsageError
	}
	plane, err := stitch.New(bounds, stitch.WithLogger(slog.Default()))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	rng := rand.New(rand.NewPCG(c.seed, c.seed))
	bar := progressbar.New(c.steps)
	mutations := 0
	err = randomSteps(plane, rng, c.steps, c.maxSize, func(live []stitch.Tile, mutated bool) error {
		bar.Add(1)
		if !mutated {
			return nil
		}
		mutations++
		if mutations%c.every != 0 {
			return nil
		}
		if v := plane.CheckNeighbors() + plane.CheckTiles() + plane.CheckStrip(); v > 0 {
			return fmt.Errorf("%w after %d mutations: %d violations", errViolations, mutations, v)
		}
		if c.verify {
			solids := make([]geom.Rect, len(live))
			for i, tile := range live {
				solids[i] = tile.Rect()
			}
			if diff := cmp.Diff(internal.Strips(bounds, solids), spaceTiles(plane)); diff != "" {
				return fmt.Errorf("%w after %d mutations: space mismatch (-want+got):\n%v", errViolations, mutations, diff)
			}
		}
		return nil
	})
	bar.Finish()
	fmt.Println()

	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	log.Printf("%d mutations, %d tiles", mutations, plane.Len())
	if report(plane) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func spaceTiles(plane *stitch.Plane) []geom.Rect {
	var rects []geom.Rect
	for tile := range plane.Tiles() {
		if !tile.Solid() {
			rects = append(rects, tile.Rect())
		}
	}
	internal.SortRects(rects)
	return rects
}

// randomSteps drives a random insert/delete sequence on plane and calls
// step once per operation; mutated is false for inserts that conflicted.
func randomSteps(plane *stitch.Plane, rng *rand.Rand, steps, maxSize int, step func(live []stitch.Tile, mutated bool) error) error {
	var live []stitch.Tile
	for range steps {
		mutated := true
		if len(live) > 0 && rng.IntN(3) == 0 {
			k := rng.IntN(len(live))
			if err := plane.Delete(live[k]); err != nil {
				return err
			}
			live[k] = live[len(live)-1]
			live = live[:len(live)-1]
		} else {
			tile, err := plane.Insert(internal.RandomRect(rng, plane.Bounds(), maxSize))
			switch {
			case errors.Is(err, stitch.ErrConflict):
				mutated = false
			case err != nil:
				return err
			default:
				live = append(live, tile)
			}
		}
		if err := step(live, mutated); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/eak1mov/go-stitch/geom"
	"github.com/eak1mov/go-stitch/internal"
	"github.com/eak1mov/go-stitch/stitch"
	"github.com/google/subcommands"
)

type randomCmd struct {
	outputFormat string
	outputPath   string
	width        int
	height       int
	count        int
	maxSize      int
	seed         uint64
	disjoint     bool
	hilbert      bool
}

func (c *randomCmd) Name() string     { return "random" }
func (c *randomCmd) Synopsis() string { return "generate a random layout" }
func (c *randomCmd) Usage() string {
	return "stitchutils random -o <path> [-of <format> -w <width> -h <height> -n <count> -max <size> -seed <seed> -disjoint -hilbert]\n"
}
func (c *randomCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputPath, "o", "", "Output path")
	f.StringVar(&c.outputFormat, "of", "", "Output format (stch, sqlite)")
	f.IntVar(&c.width, "w", 1000, "Plane width")
	f.IntVar(&c.height, "h", 1000, "Plane height")
	f.IntVar(&c.count, "n", 10000, "Number of rectangles")
	f.IntVar(&c.maxSize, "max", 20, "Maximum rectangle side")
	f.Uint64Var(&c.seed, "seed", 1, "Random seed")
	f.BoolVar(&c.disjoint, "disjoint", false, "Keep only rectangles that do not overlap earlier ones")
	f.BoolVar(&c.hilbert, "hilbert", false, "Order rectangles along a Hilbert curve (stch only)")
}

func (c *randomCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	bounds := geom.R(0, 0, c.width, c.height)
	if !bounds.Valid() || c.maxSize <= 0 {
		log.Printf("invalid plane size %v or rectangle size %d", bounds.Size, c.maxSize)
		return subcommands.ExitUsageError
	}
	rects := internal.RandomRects(c.seed, c.count, bounds, c.maxSize)

	if c.disjoint {
		plane, err := stitch.New(bounds)
		if err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		kept := rects[:0]
		for _, r := range rects {
			_, err := plane.Insert(r)
			if errors.Is(err, stitch.ErrConflict) {
				continue
			}
			if err != nil {
				log.Println(err)
				return subcommands.ExitFailure
			}
			kept = append(kept, r)
		}
		rects = kept
	}

	writer, err := createLayout(c.outputFormat, c.outputPath, bounds, c.hilbert)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer writer.Close()

	for _, r := range rects {
		if err := writer.WriteRect(r); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	if err := writer.Finalize(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	log.Printf("wrote %d rectangles", len(rects))
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/eak1mov/go-stitch/geom"
	"github.com/eak1mov/go-stitch/stitch"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type replayCmd struct {
	inputFormat string
	inputPath   string
	list        bool
	selfCheck   bool
}

func (c *replayCmd) Name() string     { return "replay" }
func (c *replayCmd) Synopsis() string { return "insert a layout into an empty plane and check it" }
func (c *replayCmd) Usage() string {
	return "stitchutils replay -i <path> [-if <format> -list -selfcheck]\n"
}
func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (stch, sqlite)")
	f.BoolVar(&c.list, "list", false, "Print all tiles of the resulting plane")
	f.BoolVar(&c.selfCheck, "selfcheck", false, "Run diagnostics after every insert")
}

func (c *replayCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	reader, bounds, err := openLayout(c.inputFormat, c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer reader.Close()

	plane, err := stitch.New(bounds, stitch.WithLogger(slog.Default()), stitch.WithSelfCheck(c.selfCheck))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	inserted, conflicts := 0, 0
	bar := progressbar.NewOptions(-1, progressbar.OptionShowIts(), progressbar.OptionShowCount())
	err = reader.VisitRects(func(r geom.Rect) error {
		bar.Add(1)
		_, err := plane.Insert(r)
		if errors.Is(err, stitch.ErrConflict) {
			conflicts++
			return nil
		}
		if err != nil {
			return fmt.Errorf("insert %v: %w", r, err)
		}
		inserted++
		return nil
	})
	bar.Finish()
	fmt.Println()

	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if c.list {
		for tile := range plane.Tiles() {
			fmt.Println(tile)
		}
	}

	violations := report(plane)
	log.Printf("inserted %d, conflicts %d, tiles %d", inserted, conflicts, plane.Len())
	if violations > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// report runs all diagnostics on plane and logs their results.
func report(plane *stitch.Plane) int {
	neighbors := plane.CheckNeighbors()
	tiles := plane.CheckTiles()
	strip := plane.CheckStrip()
	log.Printf("violations: neighbors %d, tiles %d, strip %d", neighbors, tiles, strip)
	return neighbors + tiles + strip
}

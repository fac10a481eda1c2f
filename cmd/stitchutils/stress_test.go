package main

import (
	"math/rand/v2"
	"testing"

	"github.com/eak1mov/go-stitch/geom"
	"github.com/eak1mov/go-stitch/stitch"
	"github.com/stretchr/testify/require"
)

func TestRandomStepsCallsEveryStep(t *testing.T) {
	plane, err := stitch.New(geom.R(0, 0, 8, 8))
	require.NoError(t, err)

	const steps = 300
	calls, mutations, conflicts := 0, 0, 0
	err = randomSteps(plane, rand.New(rand.NewPCG(1, 1)), steps, 4, func(live []stitch.Tile, mutated bool) error {
		calls++
		if mutated {
			mutations++
		} else {
			conflicts++
		}
		for _, tile := range live {
			require.True(t, tile.Valid())
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, steps, calls)
	require.Equal(t, steps, mutations+conflicts)
	// a small crowded plane always has conflicting inserts
	require.Positive(t, conflicts)
	require.Zero(t, plane.CheckNeighbors()+plane.CheckTiles()+plane.CheckStrip())
}

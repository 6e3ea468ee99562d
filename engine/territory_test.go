package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/copperbelly/battlesnake/sdk"
)

func TestTerritoryCountsPartition(t *testing.T) {
	// Two single-segment snakes facing off across a 5x5 board: ownership is
	// symmetric and the middle column is contested.
	a := testSnake("a", sdk.Coord{X: 0, Y: 2})
	b := testSnake("b", sdk.Coord{X: 4, Y: 2})
	board := sdk.Board{Width: 5, Height: 5, Snakes: []sdk.Battlesnake{a, b}}

	owned, contested, total := territoryCounts(&board, []territorySource{
		{id: "a", head: a.Head},
		{id: "b", head: b.Head},
	})

	assert.Equal(t, owned["a"], owned["b"])
	assert.Equal(t, 5, contested, "the equidistant middle column is nobody's")
	assert.Equal(t, total, owned["a"]+owned["b"]+contested, "every free cell is owned or contested")
	assert.Equal(t, 25, total)
}

func TestTerritoryCountsPartitionWithBodies(t *testing.T) {
	a := testSnake("a", sdk.Coord{X: 1, Y: 1}, sdk.Coord{X: 1, Y: 0}, sdk.Coord{X: 0, Y: 0})
	b := testSnake("b", sdk.Coord{X: 9, Y: 9}, sdk.Coord{X: 9, Y: 10}, sdk.Coord{X: 10, Y: 10})
	board := sdk.Board{Width: 11, Height: 11, Snakes: []sdk.Battlesnake{a, b}}

	owned, contested, total := territoryCounts(&board, []territorySource{
		{id: "a", head: a.Head},
		{id: "b", head: b.Head},
	})

	freeCells := 0
	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.Height; y++ {
			if freeCell(&board, sdk.Coord{X: x, Y: y}) {
				freeCells++
			}
		}
	}
	assert.Equal(t, freeCells, total)
	assert.Equal(t, total, owned["a"]+owned["b"]+contested)
	assert.Greater(t, owned["a"], 0)
	assert.Greater(t, owned["b"], 0)
}

func TestTerritoryScoreHypotheticalHead(t *testing.T) {
	// Stepping toward the middle strictly grows our exclusive share.
	a := testSnake("a", sdk.Coord{X: 1, Y: 5}, sdk.Coord{X: 0, Y: 5})
	b := testSnake("b", sdk.Coord{X: 9, Y: 5}, sdk.Coord{X: 10, Y: 5})
	state := sdk.GameState{
		Board: sdk.Board{Width: 11, Height: 11, Snakes: []sdk.Battlesnake{a, b}},
		You:   a,
	}

	stay := territoryScore(&state, "a", a.Head)
	advance := territoryScore(&state, "a", sdk.Coord{X: 2, Y: 5})
	assert.Greater(t, advance, stay)
}

func TestTerritoryScoreAlone(t *testing.T) {
	a := testSnake("a", sdk.Coord{X: 5, Y: 5}, sdk.Coord{X: 5, Y: 4})
	state := testState(11, 11, a)
	score := territoryScore(&state, "a", a.Head)
	assert.InDelta(t, 100, score, 0.001, "alone on the board owns everything reachable")
}

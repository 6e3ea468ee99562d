package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperbelly/battlesnake/sdk"
)

func TestFloodFillScoreOpenBoard(t *testing.T) {
	board := sdk.Board{Width: 5, Height: 5}
	assert.Equal(t, 25, floodFillScore(sdk.Coord{X: 2, Y: 2}, &board))
}

func TestFloodFillScoreOccupiedStart(t *testing.T) {
	snake := testSnake("a", sdk.Coord{X: 2, Y: 2}, sdk.Coord{X: 2, Y: 3}, sdk.Coord{X: 2, Y: 4})
	board := sdk.Board{Width: 5, Height: 5, Snakes: []sdk.Battlesnake{snake}}
	assert.Equal(t, 0, floodFillScore(sdk.Coord{X: 2, Y: 3}, &board))
	assert.Equal(t, 0, floodFillScore(sdk.Coord{X: -1, Y: 0}, &board))
}

func TestFloodFillScoreBoundedByFreeCells(t *testing.T) {
	snake := testSnake("a", sdk.Coord{X: 2, Y: 0}, sdk.Coord{X: 2, Y: 1}, sdk.Coord{X: 2, Y: 2}, sdk.Coord{X: 2, Y: 3}, sdk.Coord{X: 2, Y: 4})
	board := sdk.Board{
		Width: 5, Height: 5,
		Snakes: []sdk.Battlesnake{snake},
		Food:   []sdk.Coord{{X: 2, Y: 0}}, // the wall snake grows, tail stays
	}
	freeCells := 0
	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.Height; y++ {
			if freeCell(&board, sdk.Coord{X: x, Y: y}) {
				freeCells++
			}
		}
	}
	score := floodFillScore(sdk.Coord{X: 0, Y: 0}, &board)
	assert.LessOrEqual(t, score, freeCells)
	assert.Equal(t, 10, score, "a full column wall splits the board in half")
}

func TestFindRegionAndExits(t *testing.T) {
	// A column wall with its head on food leaves a sealed left half whose
	// only exit is the wall's vacating tail.
	wall := testSnake("wall", sdk.Coord{X: 2, Y: 4}, sdk.Coord{X: 2, Y: 3}, sdk.Coord{X: 2, Y: 2}, sdk.Coord{X: 2, Y: 1}, sdk.Coord{X: 2, Y: 0})
	board := sdk.Board{Width: 5, Height: 5, Snakes: []sdk.Battlesnake{wall}}

	reg := findRegionAndExits(sdk.Coord{X: 0, Y: 0}, &board)
	assert.Equal(t, 10, reg.size())
	require.Len(t, reg.exits, 1)
	assert.Equal(t, sdk.Coord{X: 2, Y: 0}, reg.exits[0])
}

func TestFindRegionAndExitsNoExit(t *testing.T) {
	// Same wall, but the wall snake is growing: its tail stays, so the
	// region has no way to drain.
	wall := testSnake("wall", sdk.Coord{X: 2, Y: 4}, sdk.Coord{X: 2, Y: 3}, sdk.Coord{X: 2, Y: 2}, sdk.Coord{X: 2, Y: 1}, sdk.Coord{X: 2, Y: 0})
	board := sdk.Board{
		Width: 5, Height: 5,
		Snakes: []sdk.Battlesnake{wall},
		Food:   []sdk.Coord{{X: 2, Y: 4}},
	}

	reg := findRegionAndExits(sdk.Coord{X: 0, Y: 0}, &board)
	assert.Equal(t, 10, reg.size())
	assert.Empty(t, reg.exits)
}

func TestIsViableEscapeSpaceOpenBoard(t *testing.T) {
	board := sdk.Board{Width: 11, Height: 11}
	assert.True(t, isViableEscapeSpace(sdk.Coord{X: 5, Y: 5}, &board, 3))
}

func TestIsViableEscapeSpaceTooSmall(t *testing.T) {
	// Left half is 10 cells: fine for a short body, dead space for a long
	// one.
	wall := testSnake("wall", sdk.Coord{X: 2, Y: 4}, sdk.Coord{X: 2, Y: 3}, sdk.Coord{X: 2, Y: 2}, sdk.Coord{X: 2, Y: 1}, sdk.Coord{X: 2, Y: 0})
	board := sdk.Board{
		Width: 5, Height: 5,
		Snakes: []sdk.Battlesnake{wall},
		Food:   []sdk.Coord{{X: 2, Y: 4}},
	}
	assert.False(t, isViableEscapeSpace(sdk.Coord{X: 0, Y: 0}, &board, 8))
}

func TestIsViableEscapeSpaceNarrowCorridor(t *testing.T) {
	// A one-wide corridor along the bottom of an 11x2 strip: reachable, but
	// no room to turn around for a body nearly as long.
	board := sdk.Board{Width: 11, Height: 11}
	segments := []sdk.Coord{}
	for x := 0; x < 11; x++ {
		segments = append(segments, sdk.Coord{X: x, Y: 1})
	}
	wall := testSnake("wall", segments...)
	board.Snakes = []sdk.Battlesnake{wall}
	board.Food = []sdk.Coord{{X: 0, Y: 1}}

	assert.False(t, isViableEscapeSpace(sdk.Coord{X: 5, Y: 0}, &board, 8))
	assert.True(t, isViableEscapeSpace(sdk.Coord{X: 5, Y: 5}, &board, 8))
}

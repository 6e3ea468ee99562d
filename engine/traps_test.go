package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/copperbelly/battlesnake/sdk"
)

// corridorBoard builds a 7x7 board where (0,0)..(0,2) is a one-wide pocket
// sealed by a growing snake, reachable space 3 with a single drain.
func corridorBoard() sdk.Board {
	wall := testSnake("wall",
		sdk.Coord{X: 1, Y: 0}, sdk.Coord{X: 1, Y: 1}, sdk.Coord{X: 1, Y: 2}, sdk.Coord{X: 1, Y: 3}, sdk.Coord{X: 0, Y: 3},
	)
	return sdk.Board{
		Width: 7, Height: 7,
		Snakes: []sdk.Battlesnake{wall},
		Food:   []sdk.Coord{{X: 1, Y: 0}},
	}
}

func TestDetectChokeRiskCorridor(t *testing.T) {
	board := corridorBoard()
	reg := findRegionAndExits(sdk.Coord{X: 0, Y: 0}, &board)

	assert.Equal(t, 3, reg.size())
	assert.True(t, detectChokeRisk(reg, 5), "a pocket smaller than the body is risky")
	assert.True(t, detectChokeRisk(reg, 2), "a near-sealed pocket is risky even when the body fits")
}

func TestDetectChokeRiskOpen(t *testing.T) {
	board := sdk.Board{Width: 7, Height: 7}
	reg := findRegionAndExits(sdk.Coord{X: 3, Y: 3}, &board)
	assert.False(t, detectChokeRisk(reg, 5))
}

func TestDetectCorridorTrap(t *testing.T) {
	board := corridorBoard()
	assert.True(t, detectCorridorTrap(sdk.Coord{X: 0, Y: 0}, &board, 4))

	open := sdk.Board{Width: 7, Height: 7}
	assert.False(t, detectCorridorTrap(sdk.Coord{X: 3, Y: 3}, &open, 4))
}

func TestDetectPincerTrap(t *testing.T) {
	cfg := DefaultConfig()
	head := sdk.Coord{X: 5, Y: 5}

	converging := []sdk.Battlesnake{
		testSnake("a", sdk.Coord{X: 3, Y: 5}, sdk.Coord{X: 2, Y: 5}),
		testSnake("b", sdk.Coord{X: 7, Y: 5}, sdk.Coord{X: 8, Y: 5}),
	}
	assert.Greater(t, detectPincerTrap(head, converging, cfg), 0.0)

	sameSide := []sdk.Battlesnake{
		testSnake("a", sdk.Coord{X: 3, Y: 5}, sdk.Coord{X: 2, Y: 5}),
		testSnake("b", sdk.Coord{X: 4, Y: 5}, sdk.Coord{X: 3, Y: 5}),
	}
	assert.Equal(t, 0.0, detectPincerTrap(head, sameSide, cfg))

	farAway := []sdk.Battlesnake{
		testSnake("a", sdk.Coord{X: 0, Y: 0}, sdk.Coord{X: 0, Y: 1}),
		testSnake("b", sdk.Coord{X: 10, Y: 10}, sdk.Coord{X: 10, Y: 9}),
	}
	assert.Equal(t, 0.0, detectPincerTrap(head, farAway, cfg))
}

func TestDetectAdvancedTrapCriticalHealth(t *testing.T) {
	cfg := DefaultConfig()

	you := testSnake("me", sdk.Coord{X: 5, Y: 5}, sdk.Coord{X: 5, Y: 4}, sdk.Coord{X: 5, Y: 3})
	you.Health = 15
	longer := testSnake("opp",
		sdk.Coord{X: 5, Y: 7}, sdk.Coord{X: 6, Y: 7}, sdk.Coord{X: 7, Y: 7}, sdk.Coord{X: 8, Y: 7},
	)
	state := testState(11, 11, you, longer)

	// Adjacent equal-or-longer opponent still registers at low health.
	risk := detectAdvancedTrap(&state, &you, sdk.Coord{X: 5, Y: 6}, cfg)
	assert.Equal(t, cfg.TrapProximityRisk*cfg.TrapLongerOpponentFactor, risk)

	// Everything else is suppressed: starvation outweighs positional risk.
	risk = detectAdvancedTrap(&state, &you, sdk.Coord{X: 4, Y: 5}, cfg)
	assert.Equal(t, 0.0, risk)
}

func TestDetectAdvancedTrapHealthy(t *testing.T) {
	cfg := DefaultConfig()

	// Cornered with a longer opponent closing in: risk should register.
	you := testSnake("me", sdk.Coord{X: 1, Y: 0}, sdk.Coord{X: 2, Y: 0}, sdk.Coord{X: 3, Y: 0}, sdk.Coord{X: 4, Y: 0})
	opp := testSnake("opp",
		sdk.Coord{X: 1, Y: 2}, sdk.Coord{X: 2, Y: 2}, sdk.Coord{X: 3, Y: 2}, sdk.Coord{X: 4, Y: 2}, sdk.Coord{X: 5, Y: 2},
	)
	state := testState(11, 11, you, opp)

	risk := detectAdvancedTrap(&state, &you, sdk.Coord{X: 0, Y: 0}, cfg)
	assert.Greater(t, risk, 0.0)
}

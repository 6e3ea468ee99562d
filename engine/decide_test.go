package engine

import (
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"

	"github.com/copperbelly/battlesnake/sdk"
)

func TestDecideAvoidsNeck(t *testing.T) {
	you := testSnake("me", sdk.Coord{X: 5, Y: 5}, sdk.Coord{X: 4, Y: 5}, sdk.Coord{X: 3, Y: 5})
	state := testState(11, 11, you)

	move := testEngine().Decide(state)
	assert.NotEqual(t, sdk.BattlesnakeMove_Left, move)
}

func TestDecideStarvingMovesOntoFood(t *testing.T) {
	you := testSnake("me", sdk.Coord{X: 5, Y: 5}, sdk.Coord{X: 5, Y: 4}, sdk.Coord{X: 5, Y: 3})
	you.Health = 10
	state := testState(11, 11, you)
	state.Board.Food = []sdk.Coord{{X: 5, Y: 6}}

	e := testEngine()
	assert.Equal(t, sdk.BattlesnakeMove_Up, e.Decide(state))

	// The food-adjacent move scores strictly higher than the equally safe
	// alternatives.
	nop := log.NewNopLogger()
	up := e.scoreMove(&state, you, sdk.Direction_Up, nop)
	assert.Greater(t, up, e.scoreMove(&state, you, sdk.Direction_Left, nop))
	assert.Greater(t, up, e.scoreMove(&state, you, sdk.Direction_Right, nop))
}

func TestDecideNoSafeMoveFallsBack(t *testing.T) {
	// Cornered with both in-bounds neighbors occupied: Decide still returns a
	// move, taken from the flood-fill fallback.
	you := testSnake("me", sdk.Coord{X: 0, Y: 0}, sdk.Coord{X: 1, Y: 0}, sdk.Coord{X: 2, Y: 0})
	blocker := testSnake("other", sdk.Coord{X: 0, Y: 1}, sdk.Coord{X: 1, Y: 1}, sdk.Coord{X: 2, Y: 1})
	state := testState(11, 11, you, blocker)
	// blocker eats this turn, so none of its body vacates
	state.Board.Food = []sdk.Coord{{X: 0, Y: 1}}

	move := testEngine().Decide(state)
	assert.Equal(t, sdk.BattlesnakeMove_Up, move)
}

func TestDecideFiltersGuaranteedHeadToHeadLoss(t *testing.T) {
	// A longer opponent can reach both our up and left destinations this
	// turn; only right survives the head-to-head filter.
	you := testSnake("me", sdk.Coord{X: 5, Y: 5}, sdk.Coord{X: 5, Y: 4}, sdk.Coord{X: 5, Y: 3})
	opp := testSnake("opp",
		sdk.Coord{X: 4, Y: 6}, sdk.Coord{X: 3, Y: 6}, sdk.Coord{X: 2, Y: 6}, sdk.Coord{X: 1, Y: 6}, sdk.Coord{X: 0, Y: 6},
	)
	state := testState(11, 11, you, opp)

	move := testEngine().Decide(state)
	assert.Equal(t, sdk.BattlesnakeMove_Right, move)
}

func TestGuaranteedHeadToHeadLoss(t *testing.T) {
	you := testSnake("me", sdk.Coord{X: 5, Y: 5}, sdk.Coord{X: 5, Y: 4}, sdk.Coord{X: 5, Y: 3}, sdk.Coord{X: 5, Y: 2})

	t.Run("opponent head already on destination", func(t *testing.T) {
		opp := testSnake("opp", sdk.Coord{X: 5, Y: 6}, sdk.Coord{X: 5, Y: 7})
		state := testState(11, 11, you, opp)
		assert.True(t, guaranteedHeadToHeadLoss(sdk.Coord{X: 5, Y: 6}, you, &state.Board))
	})

	t.Run("equal length opponent adjacent to destination", func(t *testing.T) {
		opp := testSnake("opp",
			sdk.Coord{X: 4, Y: 6}, sdk.Coord{X: 3, Y: 6}, sdk.Coord{X: 2, Y: 6}, sdk.Coord{X: 1, Y: 6},
		)
		state := testState(11, 11, you, opp)
		assert.True(t, guaranteedHeadToHeadLoss(sdk.Coord{X: 5, Y: 6}, you, &state.Board))
	})

	t.Run("shorter opponent with open escape", func(t *testing.T) {
		opp := testSnake("opp", sdk.Coord{X: 4, Y: 6}, sdk.Coord{X: 3, Y: 6})
		state := testState(11, 11, you, opp)
		assert.False(t, guaranteedHeadToHeadLoss(sdk.Coord{X: 5, Y: 6}, you, &state.Board))
	})
}

package main

import (
	"sync"

	"github.com/go-kit/log/level"

	"github.com/copperbelly/battlesnake/engine"
	"github.com/copperbelly/battlesnake/logging"
	"github.com/copperbelly/battlesnake/sdk"
)

var (
	decider     *engine.Engine
	deciderInit sync.Once
)

func globalEngine() *engine.Engine {
	deciderInit.Do(func() {
		decider = engine.New(engine.DefaultConfig(), logging.GlobalLogger())
	})
	return decider
}

// info controls the snake's appearance and author metadata shown on
// play.battlesnake.com.
func info() sdk.BattlesnakeInfoResponse {
	_ = level.Debug(logging.GlobalLogger()).Log("msg", "INFO")
	return sdk.BattlesnakeInfoResponse{
		APIVersion: "1",
		Author:     "copperbelly",
		Color:      "#b3541e",
		Head:       "shades",
		Tail:       "coffee",
	}
}

// start is called when the snake is entered into a game. Informational only;
// the engine keeps no state between turns.
func start(state sdk.GameState) {
	_ = level.Debug(state.Logger(logging.GlobalLogger())).Log("msg", "START")
}

// end is called when a game the snake was in has ended.
func end(state sdk.GameState) {
	_ = level.Debug(state.Logger(logging.GlobalLogger())).Log("msg", "END")
}

// move hands the turn state to the decision engine. It always produces a
// structurally valid move.
func move(state sdk.GameState) sdk.BattlesnakeMoveResponse {
	return sdk.BattlesnakeMoveResponse{
		Move: globalEngine().Decide(state),
	}
}

// Command arena runs local self-play games between engine instances (and
// optionally one remote snake speaking the Battlesnake API), recording every
// frame to a SQLite archive for later replay.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/copperbelly/battlesnake/archive"
	"github.com/copperbelly/battlesnake/client"
	"github.com/copperbelly/battlesnake/engine"
	"github.com/copperbelly/battlesnake/logging"
	"github.com/copperbelly/battlesnake/sdk"
)

const foodSpawnChance = 0.15

type player interface {
	Move(state sdk.GameState) (sdk.BattlesnakeMoveResponse, error)
}

type localPlayer struct {
	eng *engine.Engine
}

func (p localPlayer) Move(state sdk.GameState) (sdk.BattlesnakeMoveResponse, error) {
	return sdk.BattlesnakeMoveResponse{Move: p.eng.Decide(state)}, nil
}

type remotePlayer struct {
	client client.BattlesnakeClient
}

func (p remotePlayer) Move(state sdk.GameState) (sdk.BattlesnakeMoveResponse, error) {
	return p.client.Move(state)
}

func newNonCollidingHead(width, height, padding int, snakes []sdk.Battlesnake) sdk.Coord {
	c := sdk.Coord{X: rand.Intn(width), Y: rand.Intn(height)}
	for _, snake := range snakes {
		if snake.Head.Manhattan(c) < padding {
			return newNonCollidingHead(width, height, padding, snakes)
		}
	}
	return c
}

func initSnakes(count, width, height int) []sdk.Battlesnake {
	padding := 5
	snakes := make([]sdk.Battlesnake, count)
	for i := 0; i < count; i++ {
		head := newNonCollidingHead(width, height, padding, snakes[:i])
		snakes[i] = sdk.Battlesnake{
			ID:     uuid.NewString(),
			Name:   fmt.Sprintf("copperbelly-%d", i),
			Health: 100,
			Body:   []sdk.Coord{head, head, head},
			Head:   head,
			Length: 3,
		}
	}
	return snakes
}

func spawnFood(board *sdk.Board) {
	if len(board.Food) > 0 && rand.Float64() > foodSpawnChance {
		return
	}
	for attempt := 0; attempt < 20; attempt++ {
		c := sdk.Coord{X: rand.Intn(board.Width), Y: rand.Intn(board.Height)}
		free := !board.FoodAt(c)
		for _, snake := range board.Snakes {
			if sdk.CoordSliceContains(c, snake.Body) {
				free = false
				break
			}
		}
		if free {
			board.Food = append(board.Food, c)
			return
		}
	}
}

func run(logger log.Logger) error {
	var (
		snakeCount = flag.Int("snakes", 4, "number of snakes in the game")
		width      = flag.Int("width", 11, "board width")
		height     = flag.Int("height", 11, "board height")
		maxTurns   = flag.Int("max-turns", 500, "stop the game after this many turns")
		dbPath     = flag.String("db", "arena.db", "path to the game archive")
		remote     = flag.String("remote", "", "base URL of a remote snake to take the last seat")
		seed       = flag.Int64("seed", 0, "rng seed (0 = random)")
	)
	flag.Parse()

	if *seed != 0 {
		rand.Seed(*seed)
	}

	db, err := archive.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	snakes := initSnakes(*snakeCount, *width, *height)
	players := map[string]player{}
	for i, snake := range snakes {
		if *remote != "" && i == len(snakes)-1 {
			players[snake.ID] = remotePlayer{client: client.New(*remote)}
			continue
		}
		players[snake.ID] = localPlayer{eng: engine.New(engine.DefaultConfig(), logger)}
	}

	gameID := uuid.NewString()
	state := sdk.GameState{
		Game: sdk.Game{ID: gameID, Ruleset: sdk.Ruleset{Name: "standard"}},
		Board: sdk.Board{
			Width:  *width,
			Height: *height,
			Snakes: snakes,
			Food:   []sdk.Coord{},
		},
	}
	spawnFood(&state.Board)

	_ = level.Info(logger).Log("msg", "arena game starting", "game_id", gameID, "snakes", len(snakes))

	for len(state.Board.Snakes) > 1 && state.Turn < *maxTurns {
		if err := db.RecordFrame(gameID, state.Turn, state); err != nil {
			return err
		}

		moves := map[string]sdk.Direction{}
		for _, snake := range state.Board.Snakes {
			turnState := state.Clone()
			turnState.You = snake
			resp, err := players[snake.ID].Move(turnState)
			if err != nil {
				_ = level.Warn(logger).Log("msg", "player move failed, keeping facing", "snake", snake.Name, "err", err)
				moves[snake.ID] = snake.Direction()
				continue
			}
			moves[snake.ID] = sdk.MoveToDirection[resp.Move]
		}

		removed := engine.Step(&state, moves)
		for _, id := range removed {
			_ = level.Info(logger).Log("msg", "snake eliminated", "snake_id", id, "turn", state.Turn)
		}
		spawnFood(&state.Board)
	}

	if err := db.RecordFrame(gameID, state.Turn, state); err != nil {
		return err
	}

	winner := ""
	if len(state.Board.Snakes) == 1 {
		winner = state.Board.Snakes[0].Name
	}
	if err := db.FinishGame(gameID, winner, state.Turn); err != nil {
		return err
	}
	_ = level.Info(logger).Log("msg", "arena game finished", "game_id", gameID, "winner", winner, "turns", state.Turn)
	return nil
}

func main() {
	logger := logging.GlobalLogger()
	if err := run(logger); err != nil {
		_ = level.Error(logger).Log("msg", "arena failed", "err", err)
		os.Exit(1)
	}
}

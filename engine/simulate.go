package engine

import "github.com/copperbelly/battlesnake/sdk"

// applyMove advances one snake inside a simulation snapshot. The new head is
// prepended; landing on food consumes it and keeps the tail, otherwise the
// tail is dropped and health ticks down, floored at 0. Health is deliberately
// not restored on growth here: that only happens on the top-level evaluation
// path (sdk.Battlesnake.Next). Never call this on the authoritative turn
// state.
func applyMove(state *sdk.GameState, snake *sdk.Battlesnake, dir sdk.Direction) (grew bool) {
	newHead := snake.Head.Add(sdk.Coord(dir))

	for i, food := range state.Board.Food {
		if food == newHead {
			state.Board.Food = append(state.Board.Food[:i], state.Board.Food[i+1:]...)
			grew = true
			break
		}
	}

	body := make([]sdk.Coord, 1, len(snake.Body)+1)
	body[0] = newHead
	body = append(body, snake.Body...)
	if !grew {
		body = body[:len(body)-1]
		snake.Health--
		if snake.Health < 0 {
			snake.Health = 0
		}
	}
	snake.Body = body
	snake.Head = newHead
	snake.Length = int32(len(body))
	return grew
}

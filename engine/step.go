package engine

import "github.com/copperbelly/battlesnake/sdk"

// Step advances an authoritative game by one simultaneous move per snake and
// returns the ids of the snakes that died. This is the top-level path:
// growth restores health to full (sdk.Battlesnake.Next), unlike the
// lookahead's internal simulation. Snakes without a supplied move keep their
// current facing. Eaten food is removed, starved snakes are dropped, and the
// collision resolver decides everything else.
func Step(state *sdk.GameState, moves map[string]sdk.Direction) []string {
	board := state.Board

	next := make([]sdk.Battlesnake, 0, len(board.Snakes))
	eaten := []sdk.Coord{}
	for _, snake := range board.Snakes {
		dir, ok := moves[snake.ID]
		if !ok {
			dir = snake.Direction()
		}
		moved := snake.Next(dir, board)
		if board.FoodAt(moved.Head) {
			eaten = append(eaten, moved.Head)
		}
		next = append(next, moved)
	}

	remaining := make([]sdk.Coord, 0, len(board.Food))
	for _, food := range board.Food {
		if !sdk.CoordSliceContains(food, eaten) {
			remaining = append(remaining, food)
		}
	}
	state.Board.Food = remaining

	removed := []string{}
	alive := make([]sdk.Battlesnake, 0, len(next))
	for _, snake := range next {
		if snake.Health <= 0 {
			removed = append(removed, snake.ID)
			continue
		}
		alive = append(alive, snake)
	}
	state.Board.Snakes = alive

	removed = append(removed, resolveCollisions(state)...)
	state.Turn++
	return removed
}

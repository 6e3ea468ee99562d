package engine

import "github.com/copperbelly/battlesnake/sdk"

// occupiedNext reports whether c will block movement on the coming step.
// Every body segment of every snake blocks, except each snake's own tail,
// which vacates this turn unless that snake's head is sitting on food (it
// grows and the tail stays put). Hazards always block.
func occupiedNext(board *sdk.Board, c sdk.Coord) bool {
	if sdk.CoordSliceContains(c, board.Hazards) {
		return true
	}
	for _, snake := range board.Snakes {
		body := snake.Body
		if len(body) > 0 && !board.FoodAt(snake.Head) {
			body = body[:len(body)-1]
		}
		if sdk.CoordSliceContains(c, body) {
			return true
		}
	}
	return false
}

// occupiedStrict treats every body segment as blocking, tails included.
func occupiedStrict(board *sdk.Board, c sdk.Coord) bool {
	if sdk.CoordSliceContains(c, board.Hazards) {
		return true
	}
	for _, snake := range board.Snakes {
		if sdk.CoordSliceContains(c, snake.Body) {
			return true
		}
	}
	return false
}

func freeCell(board *sdk.Board, c sdk.Coord) bool {
	return !board.OutOfBounds(c) && !occupiedNext(board, c)
}

func neighbors(c sdk.Coord) [4]sdk.Coord {
	return [4]sdk.Coord{
		{X: c.X, Y: c.Y + 1},
		{X: c.X, Y: c.Y - 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
	}
}

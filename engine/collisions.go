package engine

import "github.com/copperbelly/battlesnake/sdk"

// resolveCollisions removes snakes that died on the step just applied and
// returns the ids of the removed snakes. Removal order: out of bounds first,
// self-collision second, then head-to-head groups where only a strictly
// longest snake survives (a length tie kills everyone in the cell). Absence
// from Board.Snakes is death; snakes are never flagged in place.
func resolveCollisions(state *sdk.GameState) []string {
	removed := []string{}
	alive := make([]sdk.Battlesnake, 0, len(state.Board.Snakes))

	for _, snake := range state.Board.Snakes {
		if state.Board.OutOfBounds(snake.Head) {
			removed = append(removed, snake.ID)
			continue
		}
		if sdk.CoordSliceContains(snake.Head, snake.Body[1:]) {
			removed = append(removed, snake.ID)
			continue
		}
		alive = append(alive, snake)
	}

	byHead := map[sdk.Coord][]int{}
	for i, snake := range alive {
		byHead[snake.Head] = append(byHead[snake.Head], i)
	}

	survivors := make([]sdk.Battlesnake, 0, len(alive))
	for _, snake := range alive {
		group := byHead[snake.Head]
		if len(group) == 1 {
			survivors = append(survivors, snake)
			continue
		}
		longest := int32(0)
		longestCount := 0
		for _, idx := range group {
			switch {
			case alive[idx].Length > longest:
				longest = alive[idx].Length
				longestCount = 1
			case alive[idx].Length == longest:
				longestCount++
			}
		}
		if snake.Length == longest && longestCount == 1 {
			survivors = append(survivors, snake)
		} else {
			removed = append(removed, snake.ID)
		}
	}

	state.Board.Snakes = survivors
	return removed
}

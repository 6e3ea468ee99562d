package engine

import "github.com/copperbelly/battlesnake/sdk"

type territorySource struct {
	id   string
	head sdk.Coord
}

// territoryCounts runs a multi-source BFS seeded from every snake's head and
// partitions the free cells by who reaches them first. A cell reached by more
// than one snake at the same minimum distance is contested and owned by
// nobody. Returns unique ownership counts per snake id, the contested count,
// and the total number of free cells considered.
func territoryCounts(board *sdk.Board, sources []territorySource) (owned map[string]int, contested int, total int) {
	type entry struct {
		cell  sdk.Coord
		owner string
		dist  int
	}

	bestDist := map[sdk.Coord]int{}
	owners := map[sdk.Coord]map[string]bool{}
	queue := []entry{}
	for _, src := range sources {
		queue = append(queue, entry{cell: src.head, owner: src.id, dist: 0})
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if d, ok := bestDist[e.cell]; ok {
			if e.dist > d {
				continue
			}
			if owners[e.cell][e.owner] {
				continue
			}
		} else {
			bestDist[e.cell] = e.dist
			owners[e.cell] = map[string]bool{}
		}
		owners[e.cell][e.owner] = true
		for _, next := range neighbors(e.cell) {
			if !freeCell(board, next) {
				continue
			}
			if d, ok := bestDist[next]; ok && e.dist+1 > d {
				continue
			}
			queue = append(queue, entry{cell: next, owner: e.owner, dist: e.dist + 1})
		}
	}

	owned = map[string]int{}
	for cell, ids := range owners {
		if !freeCell(board, cell) {
			// Head cells seed the walk but aren't contestable ground.
			continue
		}
		total++
		if len(ids) == 1 {
			for id := range ids {
				owned[id]++
			}
		} else {
			contested++
		}
	}
	return owned, contested, total
}

// territoryScore is the share of free cells the snake reaches strictly first,
// scaled to 0-100. head stands in for the snake's real head so a hypothetical
// post-move position can be scored.
func territoryScore(state *sdk.GameState, id string, head sdk.Coord) float64 {
	sources := make([]territorySource, 0, len(state.Board.Snakes))
	for _, snake := range state.Board.Snakes {
		src := territorySource{id: snake.ID, head: snake.Head}
		if snake.ID == id {
			src.head = head
		}
		sources = append(sources, src)
	}
	owned, _, total := territoryCounts(&state.Board, sources)
	if total == 0 {
		return 0
	}
	return float64(owned[id]) / float64(total) * 100
}

package engine

import "github.com/copperbelly/battlesnake/sdk"

// floodFillScore counts the cells reachable from start through free cells,
// start included. An occupied or out-of-bounds start scores 0. The visit set
// bounds the walk by board area.
func floodFillScore(start sdk.Coord, board *sdk.Board) int {
	if !freeCell(board, start) {
		return 0
	}
	visited := map[sdk.Coord]bool{start: true}
	queue := []sdk.Coord{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, next := range neighbors(cell) {
			if visited[next] || !freeCell(board, next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return len(visited)
}

// region is a maximal set of mutually reachable cells plus its exits: cells
// bordering the region that are blocked right now but vacate on the coming
// step (trailing tail segments). An opponent parking its head on an exit is
// how a region gets sealed.
type region struct {
	cells map[sdk.Coord]bool
	exits []sdk.Coord
}

func (r region) size() int { return len(r.cells) }

// findRegionAndExits flood fills from start under strict occupancy (tails
// block), then marks bordering cells that are free under the tail-vacating
// rule as exits.
func findRegionAndExits(start sdk.Coord, board *sdk.Board) region {
	reg := region{cells: map[sdk.Coord]bool{}}
	if board.OutOfBounds(start) {
		return reg
	}
	// The start cell passes even when it holds the mover's own head.
	reg.cells[start] = true
	queue := []sdk.Coord{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, next := range neighbors(cell) {
			if reg.cells[next] || board.OutOfBounds(next) || occupiedStrict(board, next) {
				continue
			}
			reg.cells[next] = true
			queue = append(queue, next)
		}
	}

	seen := map[sdk.Coord]bool{}
	for cell := range reg.cells {
		for _, next := range neighbors(cell) {
			if reg.cells[next] || seen[next] {
				continue
			}
			seen[next] = true
			if freeCell(board, next) {
				reg.exits = append(reg.exits, next)
			}
		}
	}
	return reg
}

// isViableEscapeSpace rejects reachable space that is geometrically too
// cramped for a body of the given length: too small outright, a one-wide
// pocket, a long narrow corridor, or sparse dead space around obstacles.
func isViableEscapeSpace(start sdk.Coord, board *sdk.Board, bodyLength int) bool {
	reg := regionFromFree(start, board)
	area := len(reg)
	if area == 0 {
		return false
	}
	if area < bodyLength+3 {
		return false
	}

	minX, maxX := board.Width, -1
	minY, maxY := board.Height, -1
	for cell := range reg {
		if cell.X < minX {
			minX = cell.X
		}
		if cell.X > maxX {
			maxX = cell.X
		}
		if cell.Y < minY {
			minY = cell.Y
		}
		if cell.Y > maxY {
			maxY = cell.Y
		}
	}
	spanX := maxX - minX + 1
	spanY := maxY - minY + 1
	minSpan, maxSpan := spanX, spanY
	if minSpan > maxSpan {
		minSpan, maxSpan = maxSpan, minSpan
	}
	aspect := float64(maxSpan) / float64(minSpan)
	density := float64(area) / float64(spanX*spanY)
	length := float64(bodyLength)

	if minSpan == 1 && float64(area) < 0.8*length {
		return false
	}
	if aspect > 5 && minSpan <= 2 && float64(area) < 1.5*length {
		return false
	}
	if density < 0.6 && float64(area) < 2*length {
		return false
	}
	if float64(spanX*spanY)*density < 1.4*length {
		return false
	}
	return true
}

// regionFromFree is the plain reachable set under the tail-vacating rule,
// start included.
func regionFromFree(start sdk.Coord, board *sdk.Board) map[sdk.Coord]bool {
	if board.OutOfBounds(start) {
		return nil
	}
	reg := map[sdk.Coord]bool{start: true}
	queue := []sdk.Coord{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, next := range neighbors(cell) {
			if reg[next] || !freeCell(board, next) {
				continue
			}
			reg[next] = true
			queue = append(queue, next)
		}
	}
	return reg
}

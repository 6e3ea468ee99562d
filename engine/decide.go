package engine

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/copperbelly/battlesnake/sdk"
)

// Decide runs the full per-turn pipeline and always returns a structurally
// valid move: in-bounds filtering, immediate-collision filtering, the
// guaranteed head-to-head loss filter, then composite scoring of whatever
// remains. With no survivable option it degrades to the in-bounds move with
// the most immediate space, and failing even that, a fixed default.
func (e *Engine) Decide(state sdk.GameState) sdk.BattlesnakeMove {
	started := time.Now()
	logger := state.Logger(e.logger)
	board := &state.Board

	you := state.You
	if snake := state.Snake(you.ID); snake != nil {
		you = *snake
	}

	inBounds := []sdk.Direction{}
	for _, dir := range sdk.Directions {
		if !board.OutOfBounds(you.Head.Add(sdk.Coord(dir))) {
			inBounds = append(inBounds, dir)
		}
	}
	if len(inBounds) == 0 {
		_ = level.Warn(logger).Log("msg", "no in-bounds move, using default")
		return sdk.BattlesnakeMove_Right
	}

	safe := []sdk.Direction{}
	for _, dir := range inBounds {
		if !occupiedNext(board, you.Head.Add(sdk.Coord(dir))) {
			safe = append(safe, dir)
		}
	}
	if len(safe) == 0 {
		best := inBounds[0]
		bestFill := -1
		for _, dir := range inBounds {
			if fill := floodFillScore(you.Head.Add(sdk.Coord(dir)), board); fill > bestFill {
				best, bestFill = dir, fill
			}
		}
		_ = level.Info(logger).Log("msg", "no safe move, falling back to most open direction", "move", sdk.DirectionToMove[best], "fill", bestFill)
		return sdk.DirectionToMove[best]
	}

	candidates := e.filterHeadToHeadLosses(safe, you, board)

	bestDir := candidates[0]
	bestScore := 0.0
	for i, dir := range candidates {
		score := e.scoreMove(&state, you, dir, logger)
		if i == 0 || score > bestScore {
			bestDir, bestScore = dir, score
		}
	}

	_ = level.Info(logger).Log("msg", "making move", "move", sdk.DirectionToMove[bestDir], "score", bestScore, "candidates", len(candidates), "took_ms", time.Since(started).Milliseconds())
	return sdk.DirectionToMove[bestDir]
}

// filterHeadToHeadLosses drops moves that lose a head-to-head outright,
// unless that would leave nothing to pick from.
func (e *Engine) filterHeadToHeadLosses(dirs []sdk.Direction, you sdk.Battlesnake, board *sdk.Board) []sdk.Direction {
	kept := []sdk.Direction{}
	for _, dir := range dirs {
		if !guaranteedHeadToHeadLoss(you.Head.Add(sdk.Coord(dir)), you, board) {
			kept = append(kept, dir)
		}
	}
	if len(kept) == 0 {
		return dirs
	}
	return kept
}

// guaranteedHeadToHeadLoss is true when an opponent's head already sits on
// dest, when an equal-or-longer opponent can reach dest this turn, or when a
// shorter opponent can reach it and every cell we could continue to is
// itself a possible head-to-head with that opponent.
func guaranteedHeadToHeadLoss(dest sdk.Coord, you sdk.Battlesnake, board *sdk.Board) bool {
	for _, opp := range board.OtherSnakes(you.ID) {
		if opp.Head == dest {
			return true
		}
		if opp.Head.Manhattan(dest) != 1 {
			continue
		}
		if opp.Length >= you.Length {
			return true
		}
		escape := false
		for _, next := range neighbors(dest) {
			if !freeCell(board, next) {
				continue
			}
			if opp.Head.Manhattan(next) == 1 {
				continue
			}
			escape = true
			break
		}
		if !escape {
			return true
		}
	}
	return false
}

// scoreMove computes the composite score for one candidate move: the
// rule-governed space term, weighted territory, the adversarial lookahead,
// and the situational bonuses and penalties.
func (e *Engine) scoreMove(state *sdk.GameState, you sdk.Battlesnake, dir sdk.Direction, logger log.Logger) float64 {
	cfg := e.cfg
	board := &state.Board
	dest := you.Head.Add(sdk.Coord(dir))
	bodyLength := len(you.Body)
	others := board.OtherSnakes(you.ID)

	ctx := spaceContext{
		area:       len(regionFromFree(dest, board)),
		bodyLength: bodyLength,
		viable:     isViableEscapeSpace(dest, board, bodyLength),
		choked:     detectChokeRisk(findRegionAndExits(dest, board), bodyLength),
	}
	space, spaceRuleName := spaceScore(ctx, cfg)

	terrWeight := cfg.TerritoryWeight
	endgame := 0.0
	if len(others) == 1 {
		if you.Length > others[0].Length {
			d := dest.Manhattan(others[0].Head)
			endgame = cfg.EndgameAggressionWeight * (1 - float64(d)/float64(board.Width+board.Height))
		} else {
			// Shorter in a 1v1: territory matters twice as much.
			terrWeight *= 2
		}
	}
	territory := terrWeight * territoryScore(state, you.ID, dest)

	look := e.lookaheadScore(state, dir, cfg.LookaheadDepth)
	aggression := e.aggressionBonus(state, you, dest)
	food := e.foodScore(board, you, dest)
	wall := 0.0
	if dest.X == 0 || dest.X == board.Width-1 || dest.Y == 0 || dest.Y == board.Height-1 {
		wall = cfg.WallBonus
	}
	tailChase := e.tailChaseBonus(board, you, dest)
	trap := detectAdvancedTrap(state, &you, dest, cfg)

	score := space + territory + look + aggression + food + wall + tailChase - trap + endgame

	_ = level.Debug(logger).Log(
		"msg", "candidate scored",
		"dir", sdk.DirectionToMove[dir],
		"space", space,
		"space_rule", spaceRuleName,
		"territory", territory,
		"lookahead", look,
		"aggression", aggression,
		"food", food,
		"wall", wall,
		"tail_chase", tailChase,
		"trap", trap,
		"endgame", endgame,
		"score", score,
	)
	return score
}

// aggressionBonus rewards closing on opponents while we out-length the board
// average, and taking or blocking food an opponent is a single step from.
func (e *Engine) aggressionBonus(state *sdk.GameState, you sdk.Battlesnake, dest sdk.Coord) float64 {
	cfg := e.cfg
	board := &state.Board
	others := board.OtherSnakes(you.ID)
	if len(others) == 0 {
		return 0
	}

	score := 0.0
	total := 0
	for _, snake := range board.Snakes {
		total += int(snake.Length)
	}
	mean := float64(total) / float64(len(board.Snakes))
	if float64(you.Length) > mean {
		nearest := board.Width + board.Height
		for _, opp := range others {
			if d := dest.Manhattan(opp.Head); d < nearest {
				nearest = d
			}
		}
		score += cfg.AggressionWeight * (1 - float64(nearest)/float64(board.Width+board.Height))
	}

	for _, food := range board.Food {
		wanted := false
		for _, opp := range others {
			if opp.Head.Manhattan(food) == 1 {
				wanted = true
				break
			}
		}
		if !wanted {
			continue
		}
		if dest == food || dest.Manhattan(food) == 1 {
			score += cfg.FoodDenialBonus
			break
		}
	}
	return score
}

// foodScore combines the immediate-food bonus with graduated hunger: below
// LowHealth the pull toward the nearest food scales with how hungry we are,
// and below CriticalHealth it dominates everything else food-related.
func (e *Engine) foodScore(board *sdk.Board, you sdk.Battlesnake, dest sdk.Coord) float64 {
	cfg := e.cfg
	score := 0.0
	if board.FoodAt(dest) {
		score += cfg.FoodBonus
	}
	if you.Health > cfg.LowHealth || len(board.Food) == 0 {
		return score
	}
	nearest := board.Width + board.Height
	for _, food := range board.Food {
		if d := dest.Manhattan(food); d < nearest {
			nearest = d
		}
	}
	prox := 1 - float64(nearest)/float64(board.Width+board.Height)
	urgency := float64(cfg.LowHealth-you.Health) / float64(cfg.LowHealth)
	score += cfg.FoodUrgencyWeight * urgency * prox
	if you.Health <= cfg.CriticalHealth {
		score += cfg.StarvingFoodWeight * prox
	}
	return score
}

// tailChaseBonus rewards shadowing our own tail, but only while healthy, not
// about to grow, actually close to the tail, and with ample room left.
func (e *Engine) tailChaseBonus(board *sdk.Board, you sdk.Battlesnake, dest sdk.Coord) float64 {
	cfg := e.cfg
	if you.Health <= cfg.LowHealth || board.FoodAt(dest) {
		return 0
	}
	if dest.Manhattan(you.Tail()) > 2 {
		return 0
	}
	if len(regionFromFree(dest, board)) < 2*len(you.Body) {
		return 0
	}
	return cfg.TailChaseBonus
}

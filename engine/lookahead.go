package engine

import (
	"fmt"
	"math"

	"github.com/go-kit/log/level"

	"github.com/copperbelly/battlesnake/sdk"
)

// lookaheadScore evaluates one of our candidate moves against the most
// adversarial of the modeled opponent responses. Our move is applied to a
// snapshot, every opponent is restricted to its own top-K flood-fill-ranked
// safe moves, and the Cartesian product of those lists (capped by the
// combination budget) is played out; the worst resulting branch is the value
// of the move. Any fault inside a search branch is recovered and scored
// neutral so one bad branch never aborts the decision.
func (e *Engine) lookaheadScore(state *sdk.GameState, dir sdk.Direction, depth int) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
			_ = level.Warn(e.logger).Log("msg", "lookahead branch fault, scoring neutral", "panic", fmt.Sprint(r))
		}
	}()

	snap := state.Clone()
	you := snap.Snake(state.You.ID)
	if you == nil {
		return e.cfg.DeathScore
	}

	// Exits of the space we are moving into, before anyone moves. If an
	// opponent's head lands on one of these, it may have sealed us in.
	preRegion := findRegionAndExits(you.Head.Add(sdk.Coord(dir)), &snap.Board)
	grew := applyMove(&snap, you, dir)

	opponents := snap.Board.OtherSnakes(you.ID)
	candidates := make([][]sdk.Direction, len(opponents))
	for i, opp := range opponents {
		candidates[i] = e.policy.CandidateMoves(opp, &snap, e.cfg.OpponentTopK)
	}

	combos := enumerateCombos(candidates, e.cfg.ComboBudget)
	if len(combos) == 0 {
		branch := snap.Clone()
		removed := resolveCollisions(&branch)
		return e.scoreBranch(&branch, state.You.ID, depth, grew, removed, preRegion)
	}

	worst := math.Inf(1)
	for _, combo := range combos {
		branch := snap.Clone()
		for i, opp := range opponents {
			s := branch.Snake(opp.ID)
			if s == nil {
				continue
			}
			applyMove(&branch, s, combo[i])
		}
		removed := resolveCollisions(&branch)
		if s := e.scoreBranch(&branch, state.You.ID, depth, grew, removed, preRegion); s < worst {
			worst = s
		}
	}
	return worst
}

// scoreBranch values one simulated continuation. While depth remains we pick
// our own best follow-up among safe moves (nested best-of for the controlled
// snake only, never for opponents); at the frontier the branch is scored
// statically. Growth and kills earn their bonuses either way, and a sealed
// region overrides everything.
func (e *Engine) scoreBranch(branch *sdk.GameState, youID string, depth int, grew bool, removed []string, preRegion region) float64 {
	cfg := e.cfg
	you := branch.Snake(youID)
	if you == nil {
		return cfg.DeathScore
	}

	kills := 0
	for _, id := range removed {
		if id != youID {
			kills++
		}
	}

	score := math.Inf(-1)
	if depth > 1 {
		branchState := *branch
		branchState.You = *you
		for _, next := range you.Moves() {
			dest := you.Head.Add(sdk.Coord(next))
			if !freeCell(&branch.Board, dest) {
				continue
			}
			if s := e.lookaheadScore(&branchState, next, depth-1); s > score {
				score = s
			}
		}
	}
	if math.IsInf(score, -1) {
		score = e.positionScore(branch, you)
	}

	if grew {
		score += cfg.FoodGrowthBonus
	}
	score += cfg.KillBonus * float64(kills)

	for _, opp := range branch.Board.OtherSnakes(youID) {
		if !sdk.CoordSliceContains(opp.Head, preRegion.exits) {
			continue
		}
		reg := findRegionAndExits(you.Head, &branch.Board)
		if reg.size() < len(you.Body) {
			// The opponent sealed the exit: forced suffocation, nothing
			// else matters.
			return cfg.SuffocationPenalty
		}
		score -= cfg.SealChokePenalty
		break
	}
	return score
}

// positionScore is the static evaluation of a branch: the rule-governed
// space term plus weighted territory, from the controlled snake's current
// head.
func (e *Engine) positionScore(branch *sdk.GameState, you *sdk.Battlesnake) float64 {
	cfg := e.cfg
	board := &branch.Board
	bodyLength := len(you.Body)
	ctx := spaceContext{
		area:       len(regionFromFree(you.Head, board)),
		bodyLength: bodyLength,
		viable:     isViableEscapeSpace(you.Head, board, bodyLength),
		choked:     detectChokeRisk(findRegionAndExits(you.Head, board), bodyLength),
	}
	space, _ := spaceScore(ctx, cfg)
	return space + cfg.TerritoryWeight*territoryScore(branch, you.ID, you.Head)
}

// enumerateCombos builds the Cartesian product of every opponent's candidate
// list, in enumeration order, dropping anything past the budget.
func enumerateCombos(candidates [][]sdk.Direction, budget int) [][]sdk.Direction {
	if len(candidates) == 0 {
		return nil
	}
	combos := [][]sdk.Direction{{}}
	for _, dirs := range candidates {
		next := make([][]sdk.Direction, 0, len(combos)*len(dirs))
		for _, combo := range combos {
			for _, dir := range dirs {
				grown := make([]sdk.Direction, len(combo), len(combo)+1)
				copy(grown, combo)
				next = append(next, append(grown, dir))
				if len(next) >= budget {
					break
				}
			}
			if len(next) >= budget {
				break
			}
		}
		combos = next
	}
	if len(combos) > budget {
		combos = combos[:budget]
	}
	return combos
}

package engine

import "github.com/copperbelly/battlesnake/sdk"

// detectChokeRisk flags a region that can't hold the body, or a pocket that
// has at most one way to drain and not much room to spare. A wide-open
// region with nothing bordering it has no exits either, but there is
// nothing to seal.
func detectChokeRisk(reg region, bodyLength int) bool {
	if reg.size() < bodyLength {
		return true
	}
	return len(reg.exits) <= 1 && reg.size() < 2*bodyLength
}

// countEscapeRoutes counts the neighboring directions that stay in bounds,
// are unoccupied, and open into space the body could actually live in.
func countEscapeRoutes(pos sdk.Coord, board *sdk.Board, bodyLength int) int {
	routes := 0
	for _, next := range neighbors(pos) {
		if !freeCell(board, next) {
			continue
		}
		if isViableEscapeSpace(next, board, bodyLength) {
			routes++
		}
	}
	return routes
}

// detectCorridorTrap reports whether the space reachable from head is both
// tight relative to the body and nearly sealed.
func detectCorridorTrap(head sdk.Coord, board *sdk.Board, bodyLength int) bool {
	reg := findRegionAndExits(head, board)
	return float64(reg.size()) < 1.5*float64(bodyLength) && len(reg.exits) <= 2
}

// detectPincerTrap scores the risk of two opponents converging on head from
// different sides. A pair counts when both are close and at least as far from
// each other as from us; the nearer one drives the risk.
func detectPincerTrap(head sdk.Coord, opponents []sdk.Battlesnake, cfg Config) float64 {
	risk := 0.0
	for i := 0; i < len(opponents); i++ {
		for j := i + 1; j < len(opponents); j++ {
			a, b := opponents[i], opponents[j]
			da := a.Head.Manhattan(head)
			db := b.Head.Manhattan(head)
			if da > 4 || db > 4 {
				continue
			}
			mutual := a.Head.Manhattan(b.Head)
			furthest := da
			if db > furthest {
				furthest = db
			}
			if mutual < furthest {
				continue
			}
			nearest := da
			if db < nearest {
				nearest = db
			}
			if nearest < 1 {
				nearest = 1
			}
			risk += cfg.TrapPincerRisk / float64(nearest)
		}
	}
	return risk
}

// detectAdvancedTrap combines opponent proximity, corridor, and pincer risk
// into one penalty for a candidate head position. At critically low health
// starvation outweighs positional risk, so everything is suppressed except an
// adjacent opponent we can't win a head-to-head against.
func detectAdvancedTrap(state *sdk.GameState, you *sdk.Battlesnake, head sdk.Coord, cfg Config) float64 {
	board := &state.Board
	bodyLength := len(you.Body)
	opponents := board.OtherSnakes(you.ID)

	if you.Health <= cfg.CriticalHealth {
		for _, opp := range opponents {
			if opp.Head.Manhattan(head) == 1 && len(opp.Body) >= bodyLength {
				return cfg.TrapProximityRisk * cfg.TrapLongerOpponentFactor
			}
		}
		return 0
	}

	risk := 0.0
	routes := countEscapeRoutes(head, board, bodyLength)
	if routes <= 2 {
		for _, opp := range opponents {
			d := opp.Head.Manhattan(head)
			if d == 0 {
				d = 1
			}
			if d > 3 {
				continue
			}
			r := cfg.TrapProximityRisk / float64(d)
			if len(opp.Body) >= bodyLength {
				r *= cfg.TrapLongerOpponentFactor
			}
			risk += r
		}
	}

	if detectCorridorTrap(head, board, bodyLength) {
		risk += cfg.TrapCorridorWeight * cfg.TrapCorridorRisk
	}
	risk += cfg.TrapPincerWeight * detectPincerTrap(head, opponents, cfg)
	return risk
}

// Package engine decides, once per turn, which of the four cardinal moves to
// take. Each decision is a pure function of the supplied game state: the
// analysis engines (reachability, territory, traps) score the current
// position directly, while the simulator and collision resolver replay
// hypothetical futures inside the bounded adversarial lookahead. Nothing is
// cached across turns.
package engine

import (
	"sort"

	"github.com/go-kit/log"

	"github.com/copperbelly/battlesnake/sdk"
)

type Engine struct {
	cfg    Config
	logger log.Logger
	policy OpponentPolicy
}

func New(cfg Config, logger log.Logger) *Engine {
	return NewWithPolicy(cfg, logger, greedyFlood{})
}

// NewWithPolicy swaps the opponent model without touching the search
// skeleton.
func NewWithPolicy(cfg Config, logger log.Logger, policy OpponentPolicy) *Engine {
	return &Engine{cfg: cfg, logger: logger, policy: policy}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// OpponentPolicy picks the candidate moves an opponent is assumed to choose
// between during lookahead, best first, at most limit moves.
type OpponentPolicy interface {
	CandidateMoves(snake sdk.Battlesnake, state *sdk.GameState, limit int) []sdk.Direction
}

// greedyFlood models opponents as one-ply local greedy: each opponent prefers
// its own highest immediate flood-fill score. No recursion on opponents.
type greedyFlood struct{}

func (greedyFlood) CandidateMoves(snake sdk.Battlesnake, state *sdk.GameState, limit int) []sdk.Direction {
	type ranked struct {
		dir   sdk.Direction
		score int
	}
	list := []ranked{}
	for _, dir := range snake.Moves() {
		dest := snake.Head.Add(sdk.Coord(dir))
		if !freeCell(&state.Board, dest) {
			continue
		}
		list = append(list, ranked{dir: dir, score: floodFillScore(dest, &state.Board)})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].score > list[j].score })
	if len(list) > limit {
		list = list[:limit]
	}
	dirs := make([]sdk.Direction, len(list))
	for i, r := range list {
		dirs[i] = r.dir
	}
	if len(dirs) == 0 {
		// Boxed in: the opponent still has to move somewhere.
		dirs = []sdk.Direction{snake.Direction()}
	}
	return dirs
}

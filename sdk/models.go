package sdk

import (
	"math"

	"github.com/go-kit/log"
)

type GameState struct {
	Game  Game        `json:"game"`
	Turn  int         `json:"turn"`
	Board Board       `json:"board"`
	You   Battlesnake `json:"you"`
}

// Logger attaches the identifying game fields to a logger.
func (state GameState) Logger(logger log.Logger) log.Logger {
	return log.With(logger, "game_id", state.Game.ID, "snake_id", state.You.ID, "alive_snakes", len(state.Board.Snakes), "turn", state.Turn)
}

// Snake resolves an id into the authoritative entry in Board.Snakes.
// You is an identity, not a separate copy of truth.
func (state *GameState) Snake(id string) *Battlesnake {
	for i := range state.Board.Snakes {
		if state.Board.Snakes[i].ID == id {
			return &state.Board.Snakes[i]
		}
	}
	return nil
}

// Clone returns a fully independent deep copy. Simulated futures are played
// out on clones; the state supplied for the turn is never mutated.
func (state GameState) Clone() GameState {
	board := state.Board
	if len(state.Board.Food) > 0 {
		board.Food = make([]Coord, len(state.Board.Food))
		copy(board.Food, state.Board.Food)
	}
	if len(state.Board.Hazards) > 0 {
		board.Hazards = make([]Coord, len(state.Board.Hazards))
		copy(board.Hazards, state.Board.Hazards)
	}
	board.Snakes = make([]Battlesnake, len(state.Board.Snakes))
	for i, snake := range state.Board.Snakes {
		body := make([]Coord, len(snake.Body))
		copy(body, snake.Body)
		snake.Body = body
		board.Snakes[i] = snake
	}
	state.Board = board
	return state
}

type Game struct {
	ID      string  `json:"id"`
	Ruleset Ruleset `json:"ruleset"`
	Timeout int32   `json:"timeout"`
}

type Ruleset struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Board struct {
	Height int           `json:"height"`
	Width  int           `json:"width"`
	Food   []Coord       `json:"food"`
	Snakes []Battlesnake `json:"snakes"`

	// Used in non-standard game modes
	Hazards []Coord `json:"hazards"`
}

func (b Board) OutOfBounds(c Coord) bool {
	return c.X >= b.Width ||
		c.X < 0 ||
		c.Y >= b.Height ||
		c.Y < 0
}

func (b Board) FoodAt(c Coord) bool {
	return CoordSliceContains(c, b.Food)
}

func (b Board) OtherSnakes(myID string) []Battlesnake {
	others := make([]Battlesnake, 0, len(b.Snakes))
	for _, snake := range b.Snakes {
		if snake.ID == myID {
			continue
		}
		others = append(others, snake)
	}
	return others
}

type Battlesnake struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int32   `json:"health"`
	Body    []Coord `json:"body"`
	Head    Coord   `json:"head"`
	Length  int32   `json:"length"`
	Latency string  `json:"latency"`

	// Used in non-standard game modes
	Shout string `json:"shout"`
	Squad string `json:"squad"`
}

func (snake Battlesnake) Tail() Coord {
	return snake.Body[len(snake.Body)-1]
}

// Next returns a copy of the snake advanced one step in dir. Eating food keeps
// the tail segment and restores health to full; otherwise the tail vacates and
// health ticks down.
func (snake Battlesnake) Next(dir Direction, board Board) Battlesnake {
	nextBody := make([]Coord, 1, len(snake.Body)+1)
	nextBody[0] = Coord(dir).Add(snake.Body[0])
	nextBody = append(nextBody, snake.Body...)
	if board.FoodAt(nextBody[0]) {
		snake.Health = 100
	} else {
		snake.Health--
		if snake.Health < 0 {
			snake.Health = 0
		}
		nextBody = nextBody[:len(nextBody)-1]
	}
	snake.Body = nextBody
	snake.Head = nextBody[0]
	snake.Length = int32(len(nextBody))
	return snake
}

// Moves returns the directions that don't reverse onto the snake's own neck,
// in stable enumeration order.
func (snake Battlesnake) Moves() []Direction {
	moves := []Direction{}
	snakeDirection := snake.Direction()
	for _, dir := range Directions {
		if Coord(dir) != Coord(snakeDirection).Reverse() {
			moves = append(moves, dir)
		}
	}
	return moves
}

func (snake Battlesnake) Direction() Direction {
	if len(snake.Body) < 2 {
		return Direction_Right
	}
	head, neck := snake.Body[0], snake.Body[1]
	return Direction(head.Add(neck.Reverse()))
}

type Direction Coord

var (
	Direction_Up    = Direction{0, 1}
	Direction_Down  = Direction{0, -1}
	Direction_Left  = Direction{-1, 0}
	Direction_Right = Direction{1, 0}
)

// Directions is the fixed enumeration order used everywhere a tie is broken
// by order of enumeration.
var Directions = []Direction{Direction_Up, Direction_Down, Direction_Left, Direction_Right}

var MoveToDirection = map[BattlesnakeMove]Direction{
	BattlesnakeMove_Down:  Direction_Down,
	BattlesnakeMove_Up:    Direction_Up,
	BattlesnakeMove_Left:  Direction_Left,
	BattlesnakeMove_Right: Direction_Right,
}

var DirectionToMove = map[Direction]BattlesnakeMove{
	Direction_Down:  BattlesnakeMove_Down,
	Direction_Up:    BattlesnakeMove_Up,
	Direction_Left:  BattlesnakeMove_Left,
	Direction_Right: BattlesnakeMove_Right,
}

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) InDirectionOf(source Coord, dir Direction) bool {
	return inDirectionOf[dir](source, c)
}

// Add gets the sum of the individual axis of this coordinate and another: {x1 + x2, y1 + y2}
func (c Coord) Add(other Coord) Coord {
	return Coord{c.X + other.X, c.Y + other.Y}
}

// Reverse reverses the coordinate: {-1 * x, -1 * y}
func (c Coord) Reverse() Coord {
	return Coord{-c.X, -c.Y}
}

// Euclidean calculates the euclidean (actual) distance: ((x2 - x1)^2) + (y2 - y1)^2)^0.5
func (c Coord) Euclidean(other Coord) float64 {
	diff := c.Add(other.Reverse())
	return math.Sqrt(math.Pow(float64(diff.X), 2) + math.Pow(float64(diff.Y), 2))
}

// Manhattan calculates the manhattan distance: |x2 - x1| + |y2 - y1|
func (c Coord) Manhattan(other Coord) int {
	diff := c.Add(other.Reverse())
	return int(math.Abs(float64(diff.X)) + math.Abs(float64(diff.Y)))
}

// CoordSliceContains returns back whether elem is contained in slice
func CoordSliceContains(elem Coord, slice []Coord) bool {
	for _, coord := range slice {
		if elem == coord {
			return true
		}
	}
	return false
}

type CoordComparator func(Coord, Coord) bool

var inDirectionOf = map[Direction]CoordComparator{
	Direction_Down: func(source, target Coord) bool {
		return target.Y < source.Y
	},
	Direction_Up: func(source, target Coord) bool {
		return target.Y > source.Y
	},
	Direction_Left: func(source, target Coord) bool {
		return target.X < source.X
	},
	Direction_Right: func(source, target Coord) bool {
		return target.X > source.X
	},
}

// Response Structs

type BattlesnakeInfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
}

type BattlesnakeMove string

const (
	BattlesnakeMove_Up    BattlesnakeMove = "up"
	BattlesnakeMove_Down  BattlesnakeMove = "down"
	BattlesnakeMove_Left  BattlesnakeMove = "left"
	BattlesnakeMove_Right BattlesnakeMove = "right"
)

type BattlesnakeMoveResponse struct {
	Move  BattlesnakeMove `json:"move"`
	Shout string          `json:"shout,omitempty"`
}

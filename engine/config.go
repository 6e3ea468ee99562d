package engine

// Config holds every tunable weight and bound used by the scorer and the
// lookahead. It is an immutable value threaded through the engine so tests
// can vary individual weights without touching package state.
type Config struct {
	// Space / reachability
	SpaceWeight        float64
	SuffocationPenalty float64
	DeadSpacePenalty   float64
	ChokePenalty       float64

	// Territory
	TerritoryWeight float64

	// Lookahead bounds
	LookaheadDepth int
	OpponentTopK   int
	ComboBudget    int

	// Lookahead terminal bonuses
	FoodGrowthBonus  float64
	KillBonus        float64
	DeathScore       float64
	SealChokePenalty float64

	// Food seeking
	FoodBonus          float64
	LowHealth          int32
	CriticalHealth     int32
	FoodUrgencyWeight  float64
	StarvingFoodWeight float64

	// Aggression
	AggressionWeight        float64
	FoodDenialBonus         float64
	EndgameAggressionWeight float64

	// Positional
	WallBonus      float64
	TailChaseBonus float64

	// Traps
	TrapProximityRisk        float64
	TrapLongerOpponentFactor float64
	TrapCorridorWeight       float64
	TrapCorridorRisk         float64
	TrapPincerWeight         float64
	TrapPincerRisk           float64
}

func DefaultConfig() Config {
	return Config{
		SpaceWeight:        3.0,
		SuffocationPenalty: -1000,
		DeadSpacePenalty:   -500,
		ChokePenalty:       -150,

		TerritoryWeight: 0.5,

		LookaheadDepth: 2,
		OpponentTopK:   4,
		ComboBudget:    64,

		FoodGrowthBonus:  25,
		KillBonus:        100,
		DeathScore:       -2000,
		SealChokePenalty: 75,

		FoodBonus:          25,
		LowHealth:          50,
		CriticalHealth:     20,
		FoodUrgencyWeight:  60,
		StarvingFoodWeight: 120,

		AggressionWeight:        20,
		FoodDenialBonus:         15,
		EndgameAggressionWeight: 30,

		WallBonus:      -10,
		TailChaseBonus: 20,

		TrapProximityRisk:        40,
		TrapLongerOpponentFactor: 1.5,
		TrapCorridorWeight:       1.0,
		TrapCorridorRisk:         60,
		TrapPincerWeight:         1.0,
		TrapPincerRisk:           30,
	}
}

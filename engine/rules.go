package engine

type spaceContext struct {
	area       int
	bodyLength int
	viable     bool
	choked     bool
}

type spaceRule struct {
	name    string
	applies func(spaceContext) bool
	score   func(spaceContext, Config) float64
}

// spaceRules is evaluated top to bottom and the first rule that applies
// decides the whole space term. The order is the override precedence:
// suffocation beats non-viable geometry beats choke risk beats the plain
// weighted area.
var spaceRules = []spaceRule{
	{
		name:    "suffocation",
		applies: func(ctx spaceContext) bool { return ctx.area < ctx.bodyLength },
		score:   func(_ spaceContext, cfg Config) float64 { return cfg.SuffocationPenalty },
	},
	{
		name:    "dead-space",
		applies: func(ctx spaceContext) bool { return !ctx.viable },
		score:   func(_ spaceContext, cfg Config) float64 { return cfg.DeadSpacePenalty },
	},
	{
		name:    "choke",
		applies: func(ctx spaceContext) bool { return ctx.choked },
		score: func(ctx spaceContext, cfg Config) float64 {
			return cfg.SpaceWeight*float64(ctx.area) + cfg.ChokePenalty
		},
	},
	{
		name:    "open",
		applies: func(spaceContext) bool { return true },
		score: func(ctx spaceContext, cfg Config) float64 {
			return cfg.SpaceWeight * float64(ctx.area)
		},
	},
}

// spaceScore returns the space term and the name of the rule that produced
// it.
func spaceScore(ctx spaceContext, cfg Config) (float64, string) {
	for _, rule := range spaceRules {
		if rule.applies(ctx) {
			return rule.score(ctx, cfg), rule.name
		}
	}
	return 0, "none"
}

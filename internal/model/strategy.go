package model

// Strategy names a payoff prioritization policy.
// Keep these values stable; they appear in API responses and CSV output.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche"
	StrategySnowball  Strategy = "snowball"
)

// Strategies lists the supported policies.
var Strategies = []Strategy{StrategyAvalanche, StrategySnowball}

func ParseStrategy(s string) (Strategy, bool) {
	for _, k := range Strategies {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

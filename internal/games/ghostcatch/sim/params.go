package sim

// MaxLive is the default cap on simultaneously live entities.
const MaxLive = 25

// KindProfile holds the fixed per-kind spawn properties.
type KindProfile struct {
	Size      float64
	BaseSpeed float64
}

// Params configures an Engine for its whole lifetime.
type Params struct {
	Ghost       KindProfile
	Bomb        KindProfile
	Net         KindProfile
	SpeedJitter float64 // uniform [0, SpeedJitter) added to base speed
	Lanes       int     // vertical lanes the viewport width is split into
	MaxLive     int
	Difficulty  Difficulty // starting difficulty, restored by Reset
	Ramp        RampRules
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		Ghost:       KindProfile{Size: 40, BaseSpeed: 3},
		Bomb:        KindProfile{Size: 35, BaseSpeed: 2.5},
		Net:         KindProfile{Size: 35, BaseSpeed: 2.5},
		SpeedJitter: 1.5,
		Lanes:       5,
		MaxLive:     MaxLive,
		Difficulty:  DefaultDifficulty(),
		Ramp:        DefaultRampRules(),
	}
}

// Profile returns the spawn properties for a kind.
func (p Params) Profile(k Kind) KindProfile {
	switch k {
	case KindBomb:
		return p.Bomb
	case KindNet:
		return p.Net
	default:
		return p.Ghost
	}
}

package engine

// HouseRules toggles the optional special rules. All default on; the
// core shape/strength legality of plays is never optional.
type HouseRules struct {
	EnableRevolution        bool
	EnableEightCut          bool
	EnableSuitLock          bool
	EnableSpadeThreeCounter bool
	EnableFoulFinish        bool
}

// DefaultHouseRules returns the standard configuration with every
// special rule enabled.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		EnableRevolution:        true,
		EnableEightCut:          true,
		EnableSuitLock:          true,
		EnableSpadeThreeCounter: true,
		EnableFoulFinish:        true,
	}
}

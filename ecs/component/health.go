package component

// Health tracks hit points. Destroyed is set exactly once, by the system that
// brings Current to zero; later damage is ignored.
type Health struct {
	Current   int
	Max       int
	Destroyed bool
}

// Ratio returns Current/Max clamped to [0,1].
func (h Health) Ratio() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return float64(h.Current) / float64(h.Max)
}

var HealthComponent = NewComponent[Health]()

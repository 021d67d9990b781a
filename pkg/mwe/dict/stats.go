package dict

// Statistics aggregates counts over a dictionary for diagnostics.
type Statistics struct {
	TotalExpressions   int            `json:"total_expressions"`
	LengthDistribution map[int]int    `json:"length_distribution"`
	POSDistribution    map[string]int `json:"pos_distribution"`
	TypeDistribution   map[string]int `json:"type_distribution"`
}

// Stats computes the length, POS and type distributions in a single pass.
func (d Dictionary) Stats() Statistics {
	s := Statistics{
		TotalExpressions:   len(d),
		LengthDistribution: make(map[int]int),
		POSDistribution:    make(map[string]int),
		TypeDistribution:   make(map[string]int),
	}

	for surface, e := range d {
		s.LengthDistribution[TokenLength(surface)]++
		s.POSDistribution[e.POS]++
		s.TypeDistribution[e.Type]++
	}

	return s
}

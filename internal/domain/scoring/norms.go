package scoring

// AgeNorm holds the reference values used to scale a child's raw metrics
// into age-relative sub-scores.
type AgeNorm struct {
	AccuracyRef  float64 // expected accuracy for the band
	LatencyRefMS float64 // expected mean response latency
	HesitationRef float64 // tolerated hesitation count
}

// AgeBand is a coarse age-year range keying the norm table.
type AgeBand string

// Age bands covered by the norm table.
const (
	Band3to4   AgeBand = "3-4"
	Band5to6   AgeBand = "5-6"
	Band7to8   AgeBand = "7-8"
	Band9to10  AgeBand = "9-10"
	Band11to12 AgeBand = "11-12"
)

// AgeNorms maps age bands to reference values. Built once at startup and
// treated as read-only for the process lifetime.
type AgeNorms map[AgeBand]AgeNorm

// DefaultAgeNorms returns the calibrated reference table.
func DefaultAgeNorms() AgeNorms {
	return AgeNorms{
		Band3to4:   {AccuracyRef: 0.60, LatencyRefMS: 2000, HesitationRef: 5},
		Band5to6:   {AccuracyRef: 0.70, LatencyRefMS: 1500, HesitationRef: 4},
		Band7to8:   {AccuracyRef: 0.80, LatencyRefMS: 1200, HesitationRef: 3},
		Band9to10:  {AccuracyRef: 0.85, LatencyRefMS: 1000, HesitationRef: 2},
		Band11to12: {AccuracyRef: 0.90, LatencyRefMS: 900, HesitationRef: 1},
	}
}

// BandFor maps an age in years to its reference band. Ages above the table
// fall into the oldest band. Negative ages are a caller precondition
// violation and are not defended against.
func BandFor(age int) AgeBand {
	switch {
	case age <= 4:
		return Band3to4
	case age <= 6:
		return Band5to6
	case age <= 8:
		return Band7to8
	case age <= 10:
		return Band9to10
	default:
		return Band11to12
	}
}

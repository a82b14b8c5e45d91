package datexpr

// Granularity is the most specific field supplied by an expression.
type Granularity int

// Granularities, ordered from the least to the most specific.
const (
	Year Granularity = iota
	Month
	Day
	Hour
	Minute
	Second
)

const fieldCount = int(Second) + 1

var granularityNames = [fieldCount]string{"year", "month", "day", "hour", "minute", "second"}

func (g Granularity) String() string {
	if g < Year || g > Second {
		return "unknown"
	}
	return granularityNames[g]
}

// Direction selects how the unspecified fields of an expression are filled.
type Direction int

const (
	// Down fills the missing fields with their minimum values, yielding
	// the earliest instant of the period.
	Down Direction = iota
	// Up fills the missing fields with their maximum values, yielding
	// the latest instant of the period.
	Up
)

// DirectionOf returns Up if completeUp is set and Down otherwise.
func DirectionOf(completeUp bool) Direction {
	if completeUp {
		return Up
	}
	return Down
}

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

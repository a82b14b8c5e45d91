package datexpr

import (
	"fmt"
	"time"
)

// Expression holds the fields explicitly supplied by a parsed expression.
// Fields beyond its granularity are unset until Complete is called.
type Expression struct {
	fields      [fieldCount]int
	granularity Granularity
}

// Parse tokenizes and validates the expression without completing it.
func Parse(expression string) (*Expression, error) {
	return defaultParser.Parse(expression)
}

func parse(expression string) (*Expression, error) {
	e, err := scan(expression)
	if err != nil {
		return nil, err
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Granularity returns the most specific field supplied by the expression.
func (e *Expression) Granularity() Granularity {
	return e.granularity
}

// Year returns the year of the expression, which is always supplied.
func (e *Expression) Year() int {
	return e.fields[Year]
}

// Field returns the value of the field g and whether the expression
// supplied it.
func (e *Expression) Field(g Granularity) (int, bool) {
	if g < Year || g > e.granularity {
		return 0, false
	}
	return e.fields[g], true
}

// validate checks every supplied field against its range.
func (e *Expression) validate() error {
	for g := Year; g <= e.granularity; g++ {
		min, max := fieldBounds(&e.fields, g)
		if value := e.fields[g]; !inScope(value, min, max) {
			return rejectedError(fmt.Sprintf("%s %d out of range [%d, %d]", g, value, min, max))
		}
	}
	return nil
}

// Complete fills every field more specific than the granularity of the
// expression and returns the resulting timestamp. Supplied fields are
// kept as they are.
func (e *Expression) Complete(direction Direction) Timestamp {
	fields := e.fields
	for g := e.granularity + 1; g <= Second; g++ {
		min, max := fieldBounds(&fields, g)
		if direction == Up {
			fields[g] = max
		} else {
			fields[g] = min
		}
	}
	millisecond := 0
	if direction == Up {
		millisecond = 999
	}
	return Timestamp{
		year:        fields[Year],
		month:       fields[Month],
		day:         fields[Day],
		hour:        fields[Hour],
		minute:      fields[Minute],
		second:      fields[Second],
		millisecond: millisecond,
	}
}

func (e *Expression) String() string {
	s := fmt.Sprintf("%04d", e.fields[Year])
	for g := Month; g <= e.granularity; g++ {
		s += fmt.Sprintf("%c%02d", separators[g], e.fields[g])
	}
	return s
}

// fieldBounds returns the valid range of the field g. The day range
// depends on the year and month already present in fields.
func fieldBounds(fields *[fieldCount]int, g Granularity) (int, int) {
	switch g {
	case Year:
		return MinYear, MaxYear
	case Month:
		return 1, 12
	case Day:
		return 1, LastDayOfMonth(fields[Year], time.Month(fields[Month]))
	case Hour:
		return 0, 23
	default:
		return 0, 59
	}
}

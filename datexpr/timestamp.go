package datexpr

import (
	"fmt"
	"time"
)

// Timestamp is a fully specified wall-clock instant with millisecond
// precision. The zero value is not a valid timestamp.
type Timestamp struct {
	year        int
	month       int
	day         int
	hour        int
	minute      int
	second      int
	millisecond int
}

func (t Timestamp) Year() int         { return t.year }
func (t Timestamp) Month() time.Month { return time.Month(t.month) }
func (t Timestamp) Day() int          { return t.day }
func (t Timestamp) Hour() int         { return t.hour }
func (t Timestamp) Minute() int       { return t.minute }
func (t Timestamp) Second() int       { return t.second }
func (t Timestamp) Millisecond() int  { return t.millisecond }

// IsZero reports whether t is the zero value.
func (t Timestamp) IsZero() bool {
	return t == Timestamp{}
}

// Time returns the timestamp as a time.Time in the given location.
// A nil location means UTC.
func (t Timestamp) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(t.year, time.Month(t.month), t.day, t.hour, t.minute, t.second,
		t.millisecond*int(time.Millisecond), loc)
}

// Compare returns -1 if t is before u, +1 if t is after u and 0 if they
// are equal.
func (t Timestamp) Compare(u Timestamp) int {
	a, b := t.values(), u.values()
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Before reports whether t is before u.
func (t Timestamp) Before(u Timestamp) bool {
	return t.Compare(u) < 0
}

func (t Timestamp) values() [7]int {
	return [7]int{t.year, t.month, t.day, t.hour, t.minute, t.second, t.millisecond}
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%03d",
		t.year, t.month, t.day, t.hour, t.minute, t.second, t.millisecond)
}

// Range is the closed interval of instants denoted by an expression.
type Range struct {
	Floor   Timestamp
	Ceiling Timestamp
}

// Contains reports whether t lies within the range, bounds included.
func (r Range) Contains(t Timestamp) bool {
	return !t.Before(r.Floor) && !r.Ceiling.Before(t)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.Floor, r.Ceiling)
}

package datexpr_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/reugn/go-datexpr/datexpr"
	"github.com/reugn/go-datexpr/internal/assert"
)

func date(year int, month time.Month, day, hour, minute, second, ms int) time.Time {
	return time.Date(year, month, day, hour, minute, second, ms*int(time.Millisecond), time.UTC)
}

func TestParseAndComplete(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expression string
		down       time.Time
		up         time.Time
	}{
		{"2013", date(2013, 1, 1, 0, 0, 0, 0), date(2013, 12, 31, 23, 59, 59, 999)},
		{"2013-", date(2013, 1, 1, 0, 0, 0, 0), date(2013, 12, 31, 23, 59, 59, 999)},
		{"2013-05", date(2013, 5, 1, 0, 0, 0, 0), date(2013, 5, 31, 23, 59, 59, 999)},
		{"2013-05-", date(2013, 5, 1, 0, 0, 0, 0), date(2013, 5, 31, 23, 59, 59, 999)},
		{"2013-5", date(2013, 5, 1, 0, 0, 0, 0), date(2013, 5, 31, 23, 59, 59, 999)},
		{"2013-5-", date(2013, 5, 1, 0, 0, 0, 0), date(2013, 5, 31, 23, 59, 59, 999)},
		{"2013-05-20", date(2013, 5, 20, 0, 0, 0, 0), date(2013, 5, 20, 23, 59, 59, 999)},
		{"2013-05-20 ", date(2013, 5, 20, 0, 0, 0, 0), date(2013, 5, 20, 23, 59, 59, 999)},
		{"2013-05-2", date(2013, 5, 2, 0, 0, 0, 0), date(2013, 5, 2, 23, 59, 59, 999)},
		{"2013-05-2 ", date(2013, 5, 2, 0, 0, 0, 0), date(2013, 5, 2, 23, 59, 59, 999)},
		{"2013-05-20 15", date(2013, 5, 20, 15, 0, 0, 0), date(2013, 5, 20, 15, 59, 59, 999)},
		{"2013-05-20 15:", date(2013, 5, 20, 15, 0, 0, 0), date(2013, 5, 20, 15, 59, 59, 999)},
		{"2013-05-20 9", date(2013, 5, 20, 9, 0, 0, 0), date(2013, 5, 20, 9, 59, 59, 999)},
		{"2013-05-20 9:", date(2013, 5, 20, 9, 0, 0, 0), date(2013, 5, 20, 9, 59, 59, 999)},
		{"2013-05-20 15:30", date(2013, 5, 20, 15, 30, 0, 0), date(2013, 5, 20, 15, 30, 59, 999)},
		{"2013-05-20 15:30:", date(2013, 5, 20, 15, 30, 0, 0), date(2013, 5, 20, 15, 30, 59, 999)},
		{"2013-05-20 15:3", date(2013, 5, 20, 15, 3, 0, 0), date(2013, 5, 20, 15, 3, 59, 999)},
		{"2013-05-20 15:3:", date(2013, 5, 20, 15, 3, 0, 0), date(2013, 5, 20, 15, 3, 59, 999)},
		{"2013-05-20 15:30:20", date(2013, 5, 20, 15, 30, 20, 0), date(2013, 5, 20, 15, 30, 20, 999)},
		{"2013-05-20 15:30:2", date(2013, 5, 20, 15, 30, 2, 0), date(2013, 5, 20, 15, 30, 2, 999)},
		{"2013-5-2 9:3:2", date(2013, 5, 2, 9, 3, 2, 0), date(2013, 5, 2, 9, 3, 2, 999)},
		{"2013-05-02 09:03:02", date(2013, 5, 2, 9, 3, 2, 0), date(2013, 5, 2, 9, 3, 2, 999)},
		{"2012-02", date(2012, 2, 1, 0, 0, 0, 0), date(2012, 2, 29, 23, 59, 59, 999)},
		{"2013-02", date(2013, 2, 1, 0, 0, 0, 0), date(2013, 2, 28, 23, 59, 59, 999)},
		{"2000-2-29", date(2000, 2, 29, 0, 0, 0, 0), date(2000, 2, 29, 23, 59, 59, 999)},
		{"1500-01-01 00:00:00", date(1500, 1, 1, 0, 0, 0, 0), date(1500, 1, 1, 0, 0, 0, 999)},
		{"2500-12-31 23:59:59", date(2500, 12, 31, 23, 59, 59, 0), date(2500, 12, 31, 23, 59, 59, 999)},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.expression, func(t *testing.T) {
			t.Parallel()
			down, err := datexpr.ParseAndComplete(test.expression, false)
			assert.IsNil(t, err)
			assert.Equal(t, down.Time(time.UTC), test.down)

			up, err := datexpr.ParseAndComplete(test.expression, true)
			assert.IsNil(t, err)
			assert.Equal(t, up.Time(time.UTC), test.up)
		})
	}
}

func TestParseAndCompleteRejected(t *testing.T) {
	t.Parallel()
	expressions := []string{
		"",
		"1499",
		"2501",
		"wut?!",
		"200",
		"20133",
		"2000:3",
		"2003-02-31",
		"2013-02-29",
		"1900-02-29",
		"2000-01-01 12:62",
		"2000-01-01 24",
		"2000-01-01 12:30:60",
		"2013-13",
		"2013-0",
		"2013-00-10",
		"2013-01-00",
		"2013-001",
		"2013-01-250",
		"2013-01-25#11:37",
		"2013-01-25T11:37",
		"2012-01-20 11-23-59",
		"2012-01-20  11:23:59",
		"2012-01-20 11:23: 59",
		"2012-01-20  11:23: 59",
		"2012-  01 -20  11:23 :59",
		"2012-01-20 11:23 :59",
		"2012-01-20 11:23:59:",
		"2012-01-20 11:23:59.000",
		"2013--",
		"2013-05--",
		"2013-05-20  ",
		" 2013",
		"2013 ",
		"-2013",
		"2013-05-20 15:30:20 ",
		"２０１３",
	}

	for _, expr := range expressions {
		expression := expr
		t.Run(fmt.Sprintf("%q", expression), func(t *testing.T) {
			t.Parallel()
			for _, up := range []bool{false, true} {
				ts, err := datexpr.ParseAndComplete(expression, up)
				assert.ErrorIs(t, err, datexpr.ErrExpressionRejected)
				assert.IsTrue(t, ts.IsZero(), "rejected expression must not yield a timestamp")
			}
		})
	}
}

func TestYearBoundaries(t *testing.T) {
	t.Parallel()
	for year := datexpr.MinYear; year <= datexpr.MaxYear; year++ {
		expression := fmt.Sprintf("%d", year)

		down, err := datexpr.ParseAndComplete(expression, false)
		assert.IsNil(t, err)
		assert.Equal(t, down.Time(nil), date(year, 1, 1, 0, 0, 0, 0))

		up, err := datexpr.ParseAndComplete(expression, true)
		assert.IsNil(t, err)
		assert.Equal(t, up.Time(nil), date(year, 12, 31, 23, 59, 59, 999))
	}
}

func TestYearMonthBoundaries(t *testing.T) {
	t.Parallel()
	for year := datexpr.MinYear; year <= datexpr.MaxYear; year++ {
		for month := time.January; month <= time.December; month++ {
			lastDay := datexpr.LastDayOfMonth(year, month)
			for _, expression := range []string{
				fmt.Sprintf("%d-%d", year, int(month)),
				fmt.Sprintf("%d-%02d", year, int(month)),
			} {
				down, err := datexpr.ParseAndComplete(expression, false)
				assert.IsNil(t, err)
				assert.Equal(t, down.Time(nil), date(year, month, 1, 0, 0, 0, 0))

				up, err := datexpr.ParseAndComplete(expression, true)
				assert.IsNil(t, err)
				assert.Equal(t, up.Time(nil), date(year, month, lastDay, 23, 59, 59, 999))
			}
		}
	}
}

func TestLeapDay(t *testing.T) {
	t.Parallel()
	for year := datexpr.MinYear; year <= datexpr.MaxYear; year++ {
		leap := year%4 == 0 && (year%100 != 0 || year%400 == 0)
		_, err := datexpr.Parse(fmt.Sprintf("%d-02-29", year))
		if leap {
			assert.IsNil(t, err)
		} else {
			assert.ErrorIs(t, err, datexpr.ErrExpressionRejected)
		}
	}
}

func TestTrailingSeparator(t *testing.T) {
	t.Parallel()
	pairs := [][2]string{
		{"2013-", "2013"},
		{"2013-05-", "2013-05"},
		{"2013-05-20 ", "2013-05-20"},
		{"2013-05-20 15:", "2013-05-20 15"},
		{"2013-05-20 15:30:", "2013-05-20 15:30"},
	}
	for _, pair := range pairs {
		for _, up := range []bool{false, true} {
			withSeparator, err := datexpr.ParseAndComplete(pair[0], up)
			assert.IsNil(t, err)
			without, err := datexpr.ParseAndComplete(pair[1], up)
			assert.IsNil(t, err)
			assert.Equal(t, withSeparator, without)
		}
	}
}

func TestExpressionFields(t *testing.T) {
	t.Parallel()
	e, err := datexpr.Parse("2013-5-20 9:")
	assert.IsNil(t, err)
	assert.Equal(t, e.Granularity(), datexpr.Hour)
	assert.Equal(t, e.Year(), 2013)
	assert.Equal(t, e.String(), "2013-05-20 09")

	tests := []struct {
		g     datexpr.Granularity
		value int
		ok    bool
	}{
		{datexpr.Year, 2013, true},
		{datexpr.Month, 5, true},
		{datexpr.Day, 20, true},
		{datexpr.Hour, 9, true},
		{datexpr.Minute, 0, false},
		{datexpr.Second, 0, false},
		{datexpr.Granularity(-1), 0, false},
	}
	for _, tt := range tests {
		value, ok := e.Field(tt.g)
		assert.Equal(t, value, tt.value)
		assert.Equal(t, ok, tt.ok)
	}
}

func TestExpressionComplete(t *testing.T) {
	t.Parallel()
	e, err := datexpr.Parse("2016-2")
	assert.IsNil(t, err)
	assert.Equal(t, e.Granularity(), datexpr.Month)

	down := e.Complete(datexpr.Down)
	assert.Equal(t, down.String(), "2016-02-01 00:00:00.000")

	up := e.Complete(datexpr.Up)
	assert.Equal(t, up.String(), "2016-02-29 23:59:59.999")
	assert.Equal(t, up.Year(), 2016)
	assert.Equal(t, up.Month(), time.February)
	assert.Equal(t, up.Day(), 29)
	assert.Equal(t, up.Hour(), 23)
	assert.Equal(t, up.Minute(), 59)
	assert.Equal(t, up.Second(), 59)
	assert.Equal(t, up.Millisecond(), 999)

	// completion leaves the expression untouched
	assert.Equal(t, e.Complete(datexpr.Down), down)
	assert.Equal(t, e.String(), "2016-02")
}

func TestGranularityString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, datexpr.Year.String(), "year")
	assert.Equal(t, datexpr.Second.String(), "second")
	assert.Equal(t, datexpr.Granularity(6).String(), "unknown")
}

func TestDirectionOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, datexpr.DirectionOf(true), datexpr.Up)
	assert.Equal(t, datexpr.DirectionOf(false), datexpr.Down)
	assert.Equal(t, datexpr.Up.String(), "up")
	assert.Equal(t, datexpr.Down.String(), "down")
}

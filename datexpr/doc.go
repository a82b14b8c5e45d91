// Package datexpr parses partially specified date/time expressions and
// completes them to the first or the last instant of the period they denote.
//
// An expression supplies a prefix of the fields
//
//	YYYY[-M[-D[ h[:m[:s]]]]]
//
// where the year has exactly four digits and every other field one or two.
// A single trailing separator is ignored, so "2013-05-" is the same as
// "2013-05". Fields are separated by exactly one '-', ' ' or ':' as shown;
// any other character or spacing rejects the expression.
//
// Completion fills the fields that were not supplied. Completing down
// yields the floor of the period:
//
//	datexpr.ParseAndComplete("2013-05", false) // 2013-05-01 00:00:00.000
//
// and completing up yields its ceiling, taking month lengths and leap years
// into account:
//
//	datexpr.ParseAndComplete("2012-02", true) // 2012-02-29 23:59:59.999
//
// Every failure, syntactic or semantic, unwraps to ErrExpressionRejected.
// Years are limited to [MinYear, MaxYear] and the calendar is the proleptic
// Gregorian one; timestamps carry no time zone until converted with
// Timestamp.Time.
package datexpr

package datexpr

import "fmt"

// separators holds the literal preceding each field after the year.
var separators = [fieldCount]byte{
	Month:  '-',
	Day:    '-',
	Hour:   ' ',
	Minute: ':',
	Second: ':',
}

// scanner walks an expression left to right, one field at a time.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) done() bool {
	return s.pos == len(s.input)
}

// expect consumes the separator c.
func (s *scanner) expect(c byte) error {
	if s.input[s.pos] != c {
		return rejectedAtError(fmt.Sprintf("expected %q, found %q", c, s.input[s.pos]), s.pos)
	}
	s.pos++
	return nil
}

// number consumes a run of ASCII digits and returns its value. The run
// length must be within [min, max].
func (s *scanner) number(g Granularity, min, max int) (int, error) {
	start := s.pos
	value := 0
	for !s.done() && isDigit(s.input[s.pos]) {
		value = value*10 + int(s.input[s.pos]-'0')
		s.pos++
		if s.pos-start > max {
			return 0, rejectedAtError(fmt.Sprintf("too many digits in %s", g), start)
		}
	}
	if n := s.pos - start; n < min {
		if min == max {
			return 0, rejectedAtError(fmt.Sprintf("%s must have %d digits", g, min), start)
		}
		return 0, rejectedAtError(fmt.Sprintf("missing %s", g), start)
	}
	return value, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scan tokenizes the expression into its explicitly supplied fields.
// Values are not range checked.
func scan(input string) (*Expression, error) {
	if input == "" {
		return nil, rejectedError("empty expression")
	}
	s := &scanner{input: input}
	e := &Expression{granularity: Year}

	year, err := s.number(Year, 4, 4)
	if err != nil {
		return nil, err
	}
	e.fields[Year] = year

	for g := Month; g <= Second && !s.done(); g++ {
		if err := s.expect(separators[g]); err != nil {
			return nil, err
		}
		// a dangling separator ends the expression
		if s.done() {
			break
		}
		value, err := s.number(g, 1, 2)
		if err != nil {
			return nil, err
		}
		e.fields[g] = value
		e.granularity = g
	}

	if !s.done() {
		return nil, rejectedAtError("unexpected trailing input", s.pos)
	}
	return e, nil
}

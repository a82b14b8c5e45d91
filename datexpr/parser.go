package datexpr

import "github.com/reugn/go-datexpr/logger"

// ParserOptions represents configuration options for a Parser.
type ParserOptions struct {
	// Logger receives a debug record for every rejected expression.
	// If nil, records are discarded.
	Logger logger.Logger
}

// Parser parses and completes date expressions. It is immutable after
// construction and safe for concurrent use.
type Parser struct {
	logger logger.Logger
}

var defaultParser = NewParser()

// NewParser returns a new Parser that discards its log records.
func NewParser() *Parser {
	return NewParserWithOptions(ParserOptions{})
}

// NewParserWithOptions returns a new Parser configured as specified.
func NewParserWithOptions(opts ParserOptions) *Parser {
	l := opts.Logger
	if l == nil {
		l = logger.NoOpLogger{}
	}
	return &Parser{logger: l}
}

// Parse tokenizes and validates the expression without completing it.
func (p *Parser) Parse(expression string) (*Expression, error) {
	e, err := parse(expression)
	if err != nil {
		p.logger.Debug("Expression rejected", "expression", expression, "reason", err)
		return nil, err
	}
	p.logger.Trace("Expression parsed", "expression", expression,
		"granularity", e.granularity)
	return e, nil
}

// ParseAndComplete parses the expression and completes it upwards if
// completeUp is set, or downwards otherwise.
func (p *Parser) ParseAndComplete(expression string, completeUp bool) (Timestamp, error) {
	e, err := p.Parse(expression)
	if err != nil {
		return Timestamp{}, err
	}
	return e.Complete(DirectionOf(completeUp)), nil
}

// ParseRange parses the expression and returns both of its completions.
func (p *Parser) ParseRange(expression string) (Range, error) {
	e, err := p.Parse(expression)
	if err != nil {
		return Range{}, err
	}
	return Range{Floor: e.Complete(Down), Ceiling: e.Complete(Up)}, nil
}

// ParseAndComplete parses the expression and completes it upwards if
// completeUp is set, or downwards otherwise. Any failure unwraps to
// ErrExpressionRejected.
func ParseAndComplete(expression string, completeUp bool) (Timestamp, error) {
	return defaultParser.ParseAndComplete(expression, completeUp)
}

// ParseRange parses the expression and returns the first and the last
// instant of the period it denotes.
func ParseRange(expression string) (Range, error) {
	return defaultParser.ParseRange(expression)
}

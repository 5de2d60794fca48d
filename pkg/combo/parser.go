package combo

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser represents a combo part number parser
type Parser struct {
	parser *participle.Parser[Name]
}

// NewParser creates a new combo name parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Name](
		participle.Lexer(ComboLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// ParseString parses a combo part number
func (p *Parser) ParseString(input string) (*Name, error) {
	if strings.TrimSpace(input) == "" {
		return &Name{}, nil
	}
	name, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("combo %q: parse error: %w", input, err)
	}
	return name, nil
}

var defaultParser *Parser

func init() {
	var err error
	if defaultParser, err = NewParser(); err != nil {
		panic(err)
	}
}

// Parse parses input with a shared parser.
func Parse(input string) (*Name, error) {
	return defaultParser.ParseString(input)
}

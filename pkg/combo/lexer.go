package combo

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ComboLexer tokenizes vendor combo part numbers such as "STM32F407V(E-G)Tx".
// Text runs stop at brackets, dashes and whitespace so that a size group can
// be recognized wherever it appears in the name.
var ComboLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Text", Pattern: `[^()\-\s]+`},
})

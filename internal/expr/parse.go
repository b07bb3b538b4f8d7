package expr

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// Assignment is a name=value pair.
//
type Assignment struct {
	Name  string
	Value *big.Int
	Pos   int
}

// Parse parses a comma separated list of assignments. Values are unsigned
// integers written as Go integer literals: decimal, or binary, octal or
// hexadecimal with a 0b, 0o (or plain 0) or 0x prefix. Underscores may
// separate digits. Names must be unique.
//
func Parse(input string) ([]Assignment, error) {
	var out []Assignment
	seen := make(map[string]bool)
	l := NewLexer(input)

	i := l.Lex()
	if i.Type == EOF {
		return nil, nil
	}
	for {
		if i.Type != Ident {
			return nil, parseError(input, i, "expected name")
		}
		name := i
		if i = l.Lex(); i.Type != Equal {
			return nil, parseError(input, i, "expected '=' after "+strconv.Quote(name.Value))
		}
		if i = l.Lex(); i.Type != Int {
			return nil, parseError(input, i, "expected integer value")
		}
		v, ok := new(big.Int).SetString(i.Value, 0)
		if !ok {
			return nil, parseError(input, i, "malformed integer "+strconv.Quote(i.Value))
		}
		if seen[name.Value] {
			return nil, parseError(input, name, "duplicate assignment to "+strconv.Quote(name.Value))
		}
		seen[name.Value] = true
		out = append(out, Assignment{Name: name.Value, Value: v, Pos: name.Pos})

		switch i = l.Lex(); i.Type {
		case EOF:
			return out, nil
		case Comma:
			i = l.Lex()
		default:
			return nil, parseError(input, i, "expected comma or end of input")
		}
	}
}

func parseError(in string, i Item, msg string) error {
	return errors.Errorf("in %q at pos %d: %s, got %s", in, i.Pos+1, msg, i)
}

// Package expr implements the lexer and parser for operand assignment lists
// like "a=0b1001, b=7, cin=1".
//
package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	Int
	Equal
	Comma
)

var typeNames = [...]string{
	EOF:   "end of input",
	Raw:   "character",
	Ident: "identifier",
	Int:   "integer",
	Equal: "'='",
	Comma: "','",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Item is a lexed token. Pos is the byte offset of the token in the input.
//
type Item struct {
	Type  Type
	Pos   int
	Value string
}

func (i Item) String() string {
	switch i.Type {
	case EOF, Equal, Comma:
		return i.Type.String()
	}
	return i.Type.String() + " " + strconv.Quote(i.Value)
}

type stateFn func(l *Lexer) stateFn

// Lexer tokenizes an input string.
//
type Lexer struct {
	input string
	start int // start of the current token
	pos   int // read position
	items []Item
	state stateFn
}

// NewLexer returns a new lexer for the given input.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, state: lexInit}
}

// Lex returns the next token. Once EOF or Raw has been returned, Lex returns
// EOF forever.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

const eof = -1

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, sz := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += sz
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) emit(t Type) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: l.input[l.start:l.pos]})
	l.start = l.pos
}

func (l *Lexer) acceptWhile(f func(rune) bool) {
	for r := l.peek(); r != eof && f(r); r = l.peek() {
		l.next()
	}
}

func lexInit(l *Lexer) stateFn {
	r := l.next()
	switch {
	case r == eof:
		return lexEOF
	case unicode.IsSpace(r):
		l.acceptWhile(unicode.IsSpace)
		l.start = l.pos
	case unicode.IsLetter(r) || r == '_':
		l.acceptWhile(isIdent)
		l.emit(Ident)
	case '0' <= r && r <= '9':
		// base prefixes and digits of any base, validated by the parser.
		l.acceptWhile(isIdent)
		l.emit(Int)
	case r == '=':
		l.emit(Equal)
	case r == ',':
		l.emit(Comma)
	default:
		l.emit(Raw)
		return lexEOF
	}
	return lexInit
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) stateFn {
	l.start = l.pos
	l.items = append(l.items, Item{Type: EOF, Pos: l.pos})
	return lexEOF
}

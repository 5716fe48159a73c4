// Package reader turns program text into the Pair-tree syntax the
// evaluator's Eval consumes (§6 of the expanded specification). It is a
// purely textual front end: it never imports internal/evaluator, the
// same way the teacher's internal/lexer and internal/parser feed
// pkg/ast without depending on internal/interp. Grounded on
// original_source/parser.h's Tokenizor/ASTGenerator split — a token
// scanner plus a tree builder, kept here as the Reader's scanning helpers
// (peek/advance/skipAtmosphere) and Reader.readForm rather than two
// separate types, since neither stage needs to be
// reused independently.
package reader

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/cwbudde/go-syasi/internal/runtime"
)

// Reader converts source text into values, one top-level form per Read
// call, reusing one token scanner across calls the way a REPL needs to
// (each Read stops exactly at the end of one form, leaving the rest of
// the source for the next call).
type Reader struct {
	st     *runtime.Store
	src    []rune
	pos    int
	quote  *runtime.Symbol
	qquote *runtime.Symbol
	unq    *runtime.Symbol
	unqspl *runtime.Symbol
}

// New creates a Reader over src, interning the four read-macro symbols
// against st up front.
func New(st *runtime.Store, src string) *Reader {
	return &Reader{
		st:     st,
		src:    []rune(src),
		quote:  st.Intern("quote"),
		qquote: st.Intern("quasiquote"),
		unq:    st.Intern("unquote"),
		unqspl: st.Intern("unquote-splicing"),
	}
}

// Read parses the next form, or returns (nil, nil) at end of input.
func (r *Reader) Read() (runtime.Value, error) {
	r.skipAtmosphere()
	if r.atEOF() {
		return nil, nil
	}
	return r.readForm()
}

// Read parses exactly one top-level form from src.
func Read(st *runtime.Store, src string) (runtime.Value, error) {
	return New(st, src).Read()
}

// ReadAll parses every top-level form in src, in order.
func ReadAll(st *runtime.Store, src string) ([]runtime.Value, error) {
	rd := New(st, src)
	var forms []runtime.Value
	for {
		v, err := rd.Read()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return forms, nil
		}
		forms = append(forms, v)
	}
}

func (r *Reader) atEOF() bool { return r.pos >= len(r.src) }

func (r *Reader) peek() rune {
	if r.atEOF() {
		return 0
	}
	return r.src[r.pos]
}

func (r *Reader) advance() rune {
	c := r.src[r.pos]
	r.pos++
	return c
}

// skipAtmosphere consumes whitespace and ;-to-end-of-line comments,
// which carry no meaning of their own between two forms.
func (r *Reader) skipAtmosphere() {
	for !r.atEOF() {
		c := r.peek()
		switch {
		case unicode.IsSpace(c):
			r.pos++
		case c == ';':
			for !r.atEOF() && r.peek() != '\n' {
				r.pos++
			}
		default:
			return
		}
	}
}

func isDelimiter(c rune) bool {
	return unicode.IsSpace(c) || c == '(' || c == ')' || c == '"' || c == ';' || c == 0
}

// readForm dispatches on the current character to read exactly one
// datum: a list, a read-macro abbreviation, a string, a character, a
// vector, or an atom (symbol, number, or boolean).
func (r *Reader) readForm() (runtime.Value, error) {
	r.skipAtmosphere()
	if r.atEOF() {
		return nil, fmt.Errorf("reader: unexpected end of input")
	}
	switch c := r.peek(); {
	case c == '(':
		r.advance()
		return r.readList(')')
	case c == ')':
		return nil, fmt.Errorf("reader: unexpected )")
	case c == '\'':
		r.advance()
		return r.readAbbrev(r.quote)
	case c == '`':
		r.advance()
		return r.readAbbrev(r.qquote)
	case c == ',':
		r.advance()
		if r.peek() == '@' {
			r.advance()
			return r.readAbbrev(r.unqspl)
		}
		return r.readAbbrev(r.unq)
	case c == '"':
		return r.readString()
	case c == '#':
		return r.readHash()
	default:
		return r.readAtom()
	}
}

func (r *Reader) readAbbrev(tag *runtime.Symbol) (runtime.Value, error) {
	inner, err := r.readForm()
	if err != nil {
		return nil, err
	}
	return runtime.NewPair(r.st, tag, runtime.NewPair(r.st, inner, runtime.EmptyList)), nil
}

// readList reads elements up to close, handling the dotted-pair tail
// syntax "(a b . c)" (§4.7).
func (r *Reader) readList(close rune) (runtime.Value, error) {
	var items []runtime.Value
	tail := runtime.EmptyList
	for {
		r.skipAtmosphere()
		if r.atEOF() {
			return nil, fmt.Errorf("reader: unterminated list")
		}
		if r.peek() == close {
			r.advance()
			break
		}
		if r.peek() == '.' && r.isDotTail() {
			r.advance()
			v, err := r.readForm()
			if err != nil {
				return nil, err
			}
			tail = v
			r.skipAtmosphere()
			if r.atEOF() || r.peek() != close {
				return nil, fmt.Errorf("reader: malformed dotted list")
			}
			r.advance()
			break
		}
		v, err := r.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = runtime.NewPair(r.st, items[i], result)
	}
	return result, nil
}

// isDotTail reports whether the '.' at the current position introduces
// a dotted tail rather than beginning a symbol like "...".
func (r *Reader) isDotTail() bool {
	next := r.pos + 1
	return next >= len(r.src) || isDelimiter(r.src[next])
}

func (r *Reader) readString() (runtime.Value, error) {
	r.advance() // opening quote
	var b strings.Builder
	for {
		if r.atEOF() {
			return nil, fmt.Errorf("reader: unterminated string")
		}
		c := r.advance()
		if c == '"' {
			break
		}
		if c == '\\' {
			if r.atEOF() {
				return nil, fmt.Errorf("reader: unterminated string escape")
			}
			switch esc := r.advance(); esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"', '\\':
				b.WriteRune(esc)
			default:
				b.WriteRune(esc)
			}
			continue
		}
		b.WriteRune(c)
	}
	return runtime.NewString(r.st, b.String()), nil
}

// readHash handles every #-prefixed syntax: booleans, characters, and
// vector literals (§4.7).
func (r *Reader) readHash() (runtime.Value, error) {
	r.advance() // '#'
	if r.atEOF() {
		return nil, fmt.Errorf("reader: unexpected end of input after #")
	}
	switch c := r.peek(); {
	case c == 't':
		r.advance()
		return runtime.NewBoolean(r.st, true), nil
	case c == 'f':
		r.advance()
		return runtime.NewBoolean(r.st, false), nil
	case c == '\\':
		r.advance()
		return r.readCharacter()
	case c == '(':
		r.advance()
		list, err := r.readList(')')
		if err != nil {
			return nil, err
		}
		items, ok := runtime.ListToSlice(list)
		if !ok {
			return nil, fmt.Errorf("reader: vector literal must be a proper list")
		}
		return runtime.NewVector(r.st, items), nil
	default:
		return nil, fmt.Errorf("reader: unsupported # syntax: #%c", c)
	}
}

var namedChars = map[string]rune{
	"space":   ' ',
	"newline": '\n',
	"tab":     '\t',
	"nul":     0,
	"null":    0,
}

func (r *Reader) readCharacter() (runtime.Value, error) {
	start := r.pos
	if r.atEOF() {
		return nil, fmt.Errorf("reader: unterminated character literal")
	}
	// Always take at least one rune, then extend while the run looks
	// like a named character (letters only).
	r.advance()
	for !r.atEOF() && unicode.IsLetter(r.peek()) {
		r.advance()
	}
	text := string(r.src[start:r.pos])
	if len([]rune(text)) == 1 {
		return runtime.NewCharacter(r.st, []rune(text)[0]), nil
	}
	if ch, ok := namedChars[strings.ToLower(text)]; ok {
		return runtime.NewCharacter(r.st, ch), nil
	}
	// Not a recognized named character: back off to just the first rune
	// and rewind the rest for re-tokenization (e.g. #\a-symbol is not
	// real Scheme syntax, but be forgiving of a single-letter char
	// immediately followed by a delimiter-less run by treating only the
	// first rune as the character).
	first := []rune(text)[0]
	r.pos = start + 1
	return runtime.NewCharacter(r.st, first), nil
}

// readAtom reads a run of non-delimiter characters and classifies it as
// a number (trying, in order, integer, rational, real, complex — the
// most specific numeric level that parses, per §4.7) or else a symbol.
func (r *Reader) readAtom() (runtime.Value, error) {
	start := r.pos
	for !r.atEOF() && !isDelimiter(r.peek()) {
		r.pos++
	}
	text := string(r.src[start:r.pos])
	if text == "" {
		return nil, fmt.Errorf("reader: empty atom")
	}
	if text == "." {
		return nil, fmt.Errorf("reader: unexpected .")
	}
	if n, ok := parseNumber(r.st, text); ok {
		return n, nil
	}
	return r.st.Intern(text), nil
}

// parseNumber tries each numeric tower level from most to least
// specific, matching the original source's from_string chain: an exact
// integer, an exact rational "n/d", an inexact real, then a complex
// "a+bi"/"a-bi".
func parseNumber(st *runtime.Store, text string) (runtime.Value, bool) {
	if text == "+" || text == "-" || text == "..." {
		return nil, false
	}
	if n, ok := runtime.ParseInteger(st, text); ok {
		return n, true
	}
	if idx := strings.IndexByte(text, '/'); idx > 0 {
		num, numOK := runtime.ParseInteger(st, text[:idx])
		den, denOK := runtime.ParseInteger(st, text[idx+1:])
		if numOK && denOK && !den.IsZero() {
			return runtime.NormalizeRational(st, runtime.NewRational(st, num.Int(), den.Int())), true
		}
		return nil, false
	}
	if strings.HasSuffix(text, "i") && len(text) > 1 {
		if c, ok := parseComplex(st, text); ok {
			return c, true
		}
	}
	if n, ok := runtime.ParseReal(st, text); ok {
		return n, true
	}
	return nil, false
}

// parseComplex parses the "a+bi" / "a-bi" rectangular literal form.
// The split point is the last '+' or '-' that is not the leading sign
// and not part of an exponent ("1e-10i" stays one token).
func parseComplex(st *runtime.Store, text string) (runtime.Value, bool) {
	body := text[:len(text)-1] // strip trailing 'i'
	splitAt := -1
	for i := len(body) - 1; i > 0; i-- {
		c := body[i]
		if c != '+' && c != '-' {
			continue
		}
		prev := body[i-1]
		if prev == 'e' || prev == 'E' {
			continue
		}
		splitAt = i
		break
	}
	var reText, imText string
	if splitAt < 0 {
		reText, imText = "0", body
	} else {
		reText, imText = body[:splitAt], body[splitAt:]
	}
	if imText == "+" {
		imText = "1"
	} else if imText == "-" {
		imText = "-1"
	}
	reVal, ok := realFromText(st, reText)
	if !ok {
		return nil, false
	}
	imVal, ok := realFromText(st, imText)
	if !ok {
		return nil, false
	}
	return runtime.MakeRectangular(st, reVal, imVal), true
}

func realFromText(st *runtime.Store, text string) (float64, bool) {
	if n, ok := runtime.ParseInteger(st, text); ok {
		f, _ := new(big.Float).SetInt(n.Int()).Float64()
		return f, true
	}
	if r, ok := runtime.ParseReal(st, text); ok {
		return r.Float64(), true
	}
	return 0, false
}

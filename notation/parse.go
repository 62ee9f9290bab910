package notation

import (
	"fmt"
	"strconv"
)

// ParseError represents a parsing error with location.
type ParseError struct {
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Parse parses links notation text into its top-level values, in order.
// Empty or whitespace-only input yields an empty sequence. A bare
// reference at top level yields a one-element sequence. Malformed
// input (unbalanced parentheses, unterminated quote) returns a
// *ParseError and no partial result.
func Parse(input string) ([]*Value, error) {
	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}

	p := &parser{stream: NewTokenStream(tokens)}

	var values []*Value
	for !p.stream.AtEnd() {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseNumbers parses, then keeps only the elements whose text was a
// base-10 integer, in original order. Non-numeric elements are
// silently dropped; this is how numeric IDs are extracted from mixed
// content.
func ParseNumbers(input string) ([]int64, error) {
	values, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return Numbers(values), nil
}

// ParseStrings parses, then keeps only the string elements, in
// original order.
func ParseStrings(input string) ([]string, error) {
	values, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return Strings(values), nil
}

// Numbers projects the integer elements of a parsed sequence.
func Numbers(values []*Value) []int64 {
	items := flatItems(values)
	nums := make([]int64, 0, len(items))
	for _, v := range items {
		if v.kind == KindInt {
			nums = append(nums, v.intVal)
		}
	}
	return nums
}

// Strings projects the string elements of a parsed sequence.
func Strings(values []*Value) []string {
	items := flatItems(values)
	strs := make([]string, 0, len(items))
	for _, v := range items {
		if v.kind == KindString {
			strs = append(strs, v.strVal)
		}
	}
	return strs
}

// flatItems returns the elements subject to projection: the children
// of a lone top-level link (the flat-list file form), otherwise the
// top-level values themselves.
func flatItems(values []*Value) []*Value {
	if len(values) == 1 && values[0].kind == KindLink {
		return values[0].items
	}
	return values
}

// parser parses a token stream into Values.
type parser struct {
	stream *TokenStream
}

// parseValue parses any value.
func (p *parser) parseValue() (*Value, error) {
	tok := p.stream.Advance()

	switch tok.Type {
	case TokenBare:
		v := classifyBare(tok.Value)
		v.pos = tok.Pos
		return v, nil

	case TokenQuoted:
		v := Str(tok.Value)
		v.pos = tok.Pos
		return v, nil

	case TokenLParen:
		return p.parseLink(tok.Pos)

	case TokenRParen:
		return nil, &ParseError{Message: "unexpected )", Pos: tok.Pos}

	default:
		return nil, &ParseError{Message: fmt.Sprintf("unexpected token %s", tok.Type), Pos: tok.Pos}
	}
}

// parseLink parses a link after its opening parenthesis.
func (p *parser) parseLink(open Position) (*Value, error) {
	link := Link()
	link.pos = open

	for {
		tok := p.stream.Peek()

		if tok.Type == TokenRParen {
			p.stream.Advance()
			return link, nil
		}

		if tok.Type == TokenEOF {
			return nil, &ParseError{Message: "unterminated link", Pos: open}
		}

		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		link.Append(elem)
	}
}

// classifyBare classifies a bare token by the shape of its text.
func classifyBare(text string) *Value {
	switch text {
	case "null":
		return Null()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	if isIntegerText(text) {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(n)
		}
		// Out of int64 range, keep the numeric reading
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(f)
		}
	}

	if isNumberText(text) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(f)
		}
	}

	return Str(text)
}

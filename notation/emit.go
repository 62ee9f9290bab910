package notation

import (
	"strconv"
	"strings"
)

// Emit renders a flat value list as a multi-line link, the on-disk
// form of flat datasets: () for an empty list, otherwise one
// two-space-indented value per line with the parentheses on their own
// lines. Nested links, should any appear, are rendered compact.
func Emit(values []*Value) string {
	if len(values) == 0 {
		return "()"
	}

	var sb strings.Builder
	sb.WriteString("(\n")
	for _, v := range values {
		sb.WriteString("  ")
		sb.WriteString(EmitCompact(v))
		sb.WriteByte('\n')
	}
	sb.WriteString(")")
	return sb.String()
}

// EmitCompact renders a value tree on a single line, elements
// space-separated. This is the on-disk form of JSON datasets.
func EmitCompact(v *Value) string {
	e := &emitter{}
	e.emit(v)
	return e.sb.String()
}

type emitter struct {
	sb strings.Builder
}

func (e *emitter) emit(v *Value) {
	if v == nil || v.IsNull() {
		e.sb.WriteString("null")
		return
	}

	switch v.kind {
	case KindBool:
		if v.boolVal {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}

	case KindInt:
		e.sb.WriteString(strconv.FormatInt(v.intVal, 10))

	case KindFloat:
		e.emitFloat(v.floatVal)

	case KindString:
		e.sb.WriteString(EscapeString(v.strVal))

	case KindLink:
		e.sb.WriteString("(")
		for i, elem := range v.items {
			if i > 0 {
				e.sb.WriteString(" ")
			}
			e.emit(elem)
		}
		e.sb.WriteString(")")
	}
}

func (e *emitter) emitFloat(f float64) {
	// Shortest representation that round-trips
	s := strconv.FormatFloat(f, 'f', -1, 64)
	// Ensure it has a decimal point so it reads back as float
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	e.sb.WriteString(s)
}

// EscapeString returns the canonical reference text for a string. The
// string renders bare unless it is empty, contains whitespace, quotes,
// or parentheses, or would read back as a number, boolean, or null.
// Quoting uses whichever quote character occurs less often inside the
// string (ties go to the single quote), doubling that character
// wherever it appears literally.
func EscapeString(s string) string {
	if !needsQuoting(s) {
		return s
	}

	quote := byte('\'')
	if strings.Count(s, "'") > strings.Count(s, `"`) {
		quote = '"'
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		if s[i] == quote {
			sb.WriteByte(quote)
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte(quote)
	return sb.String()
}

// needsQuoting reports whether a string cannot be a bare reference.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		if isDelimiter(s[i]) {
			return true
		}
	}
	// Bare text that would reclassify on parse must be quoted to stay
	// a string
	switch s {
	case "null", "true", "false":
		return true
	}
	return isIntegerText(s) || isNumberText(s)
}

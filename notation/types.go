package notation

import "fmt"

// Kind represents notation value kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindLink
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Value represents a notation value: a scalar reference or a link.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	// Link elements
	items []*Value

	// Source location for error reporting
	pos Position
}

// Position represents a source location.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null reference.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean reference.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer reference.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Float creates a float reference.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Str creates a string reference.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Link creates a link from the given elements.
func Link(items ...*Value) *Value {
	return &Value{kind: KindLink, items: items}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null reference.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("notation: nil value")
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("notation: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("notation: nil value")
	}
	if v.kind != KindInt {
		return 0, fmt.Errorf("notation: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("notation: nil value")
	}
	if v.kind != KindFloat {
		return 0, fmt.Errorf("notation: expected float, got %s", v.kind)
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("notation: nil value")
	}
	if v.kind != KindString {
		return "", fmt.Errorf("notation: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// Items returns the elements of a link.
func (v *Value) Items() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("notation: nil value")
	}
	if v.kind != KindLink {
		return nil, fmt.Errorf("notation: expected link, got %s", v.kind)
	}
	return v.items, nil
}

// Len returns the number of elements of a link, or 0 for references.
func (v *Value) Len() int {
	if v == nil || v.kind != KindLink {
		return 0
	}
	return len(v.items)
}

// Index returns the i-th element of a link.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindLink {
		return nil, fmt.Errorf("notation: not a link")
	}
	if i < 0 || i >= len(v.items) {
		return nil, fmt.Errorf("notation: index %d out of bounds (len=%d)", i, len(v.items))
	}
	return v.items[i], nil
}

// Append adds an element to a link.
func (v *Value) Append(item *Value) {
	if v.kind != KindLink {
		panic("notation: cannot append to non-link")
	}
	v.items = append(v.items, item)
}

// Pos returns the source position of this value.
func (v *Value) Pos() Position {
	if v == nil {
		return Position{}
	}
	return v.pos
}

// SetPos sets the source position.
func (v *Value) SetPos(pos Position) {
	v.pos = pos
}

// ============================================================
// Numeric Coercion Helpers
// ============================================================

// Number returns a numeric value as float64 if int or float.
func (v *Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.intVal), true
	case KindFloat:
		return v.floatVal, true
	default:
		return 0, false
	}
}

// IsNumeric returns true if int or float.
func (v *Value) IsNumeric() bool {
	return v != nil && (v.kind == KindInt || v.kind == KindFloat)
}

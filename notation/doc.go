// Package notation implements the links notation, a small parenthesized
// text format for flat value lists and JSON-like trees.
//
// # Data Model
//
// A notation value is either a reference (an atomic token carrying a
// null, boolean, number, or string) or a link (an ordered, parenthesized
// sequence of values). There is no dedicated map form: JSON objects are
// represented as links of two-element (key value) links.
//
// # Syntax
//
//	Link:       (v1 v2 v3)
//	Null:       null
//	Bool:       true / false
//	Number:     123, -4, 2.5
//	String:     bare_token, 'quoted string', "it's quoted"
//
// Values are separated by whitespace. A string is quoted when it
// contains whitespace, quotes, or parentheses, or when it would
// otherwise read back as a number, boolean, or null. The quote
// character is escaped by doubling it; the other quote character may
// appear literally.
//
// # Forms
//
// Two serialized forms are produced:
//
//   - Emit renders a flat list of scalars as a multi-line link with
//     one two-space-indented value per line. This is the on-disk form
//     of flat datasets.
//   - EmitCompact renders an arbitrary value tree on a single line,
//     elements space-separated. This is the on-disk form of JSON
//     datasets, via the bridge in json_bridge.go.
//
// # JSON Decode Heuristic
//
// The format is untagged, so decoding a link back to JSON uses a
// structural rule: a link is an object only if it is non-empty and
// every element is a two-element link whose first element is a string
// reference. Everything else is an array. In particular the empty
// link () always decodes to [], even when it was produced from {}.
package notation

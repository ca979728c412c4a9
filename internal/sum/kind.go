// Package sum parses command-line operands and combines them.
package sum

import (
	"fmt"
	"strings"
)

// Kind identifies how an operand is parsed and how two operands are combined.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindJSON
)

var kindNames = map[Kind]string{
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindString: "string",
	KindJSON:   "json",
}

// String returns the name accepted by ParseKind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// noun is the word used in parse diagnostics.
func (k Kind) noun() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	case KindJSON:
		return "JSON number or array of numbers"
	default:
		return k.String()
	}
}

// Kinds returns every supported kind name in declaration order.
func Kinds() []string {
	return []string{"int", "float", "bool", "string", "json"}
}

// ParseKind resolves a kind name, ignoring case and surrounding space.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int", "integer":
		return KindInt, nil
	case "float", "number":
		return KindFloat, nil
	case "bool", "boolean":
		return KindBool, nil
	case "string", "str":
		return KindString, nil
	case "json":
		return KindJSON, nil
	}
	return 0, fmt.Errorf("unknown type %q (must be one of %s)", name, strings.Join(Kinds(), ", "))
}

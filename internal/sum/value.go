package sum

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a parsed operand, or the result of adding two operands.
type Value struct {
	Kind Kind

	i int64
	f float64
	b bool
	s string

	// json operands keep every number they contain; array records
	// whether the source was an array rather than a bare number.
	nums  []json.Number
	array bool
}

// Int wraps i as an int value.
func Int(i int64) Value { return Value{Kind: KindInt, i: i} }

// Float wraps f as a float value.
func Float(f float64) Value { return Value{Kind: KindFloat, f: f} }

// Bool wraps b as a bool value.
func Bool(b bool) Value { return Value{Kind: KindBool, b: b} }

// String wraps s as a string value.
func String(s string) Value { return Value{Kind: KindString, s: s} }

// String renders the value the way it is printed on stdout.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindJSON:
		if !v.array && len(v.nums) == 1 {
			return v.nums[0].String()
		}
		parts := make([]string, len(v.nums))
		for i, n := range v.nums {
			parts[i] = n.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return ""
}

// Interface returns the value as a JSON-encodable Go value.
func (v Value) Interface() any {
	switch v.Kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindJSON:
		if !v.array && len(v.nums) == 1 {
			return v.nums[0]
		}
		return v.nums
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

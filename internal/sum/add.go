package sum

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Add combines two values of the same kind: integers and floats are added,
// booleans are AND-ed, strings are concatenated and JSON operands yield the
// total of every number they contain.
func Add(a, b Value) (Value, error) {
	if a.Kind != b.Kind {
		return Value{}, fmt.Errorf("%w: %s and %s", ErrKindMismatch, a.Kind, b.Kind)
	}

	switch a.Kind {
	case KindInt:
		i, ok := addInt64(a.i, b.i)
		if !ok {
			return Value{}, &OverflowError{Kind: KindInt, A: a.String(), B: b.String()}
		}
		return Int(i), nil
	case KindFloat:
		f := a.f + b.f
		if math.IsInf(f, 0) {
			return Value{}, &OverflowError{Kind: KindFloat, A: a.String(), B: b.String()}
		}
		return Float(f), nil
	case KindBool:
		return Bool(a.b && b.b), nil
	case KindString:
		return String(a.s + b.s), nil
	case KindJSON:
		return addJSON(a, b)
	}
	return Value{}, fmt.Errorf("unsupported type %d", int(a.Kind))
}

// Sum parses both tokens as kind and adds them. The first operand is parsed
// first, so when both are invalid the first one is reported.
func Sum(kind Kind, a, b string) (Value, error) {
	x, err := Parse(kind, a)
	if err != nil {
		return Value{}, err
	}
	y, err := Parse(kind, b)
	if err != nil {
		return Value{}, err
	}
	return Add(x, y)
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func addJSON(a, b Value) (Value, error) {
	nums := make([]json.Number, 0, len(a.nums)+len(b.nums))
	nums = append(nums, a.nums...)
	nums = append(nums, b.nums...)

	if total, ok := sumIntegers(nums); ok {
		return Value{Kind: KindJSON, nums: []json.Number{json.Number(strconv.FormatInt(total, 10))}}, nil
	}

	var total float64
	for _, n := range nums {
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return Value{}, &OverflowError{Kind: KindFloat, A: a.String(), B: b.String()}
		}
		total += f
	}
	if math.IsInf(total, 0) {
		return Value{}, &OverflowError{Kind: KindFloat, A: a.String(), B: b.String()}
	}
	return Value{Kind: KindJSON, nums: []json.Number{json.Number(formatFloat(total))}}, nil
}

// sumIntegers adds nums as int64 and reports false as soon as one of them is
// not an integer literal or the running total overflows.
func sumIntegers(nums []json.Number) (int64, bool) {
	var total int64
	var ok bool
	for _, n := range nums {
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		if total, ok = addInt64(total, i); !ok {
			return 0, false
		}
	}
	return total, true
}

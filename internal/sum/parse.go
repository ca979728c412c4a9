package sum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Parse converts a single command-line token into a value of the given kind.
func Parse(kind Kind, token string) (Value, error) {
	switch kind {
	case KindInt:
		i, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Token: token, Kind: kind, Err: err}
		}
		return Int(i), nil
	case KindFloat:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Value{}, &ParseError{Token: token, Kind: kind, Err: err}
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, &ParseError{Token: token, Kind: kind, Err: errors.New("not a finite number")}
		}
		return Float(f), nil
	case KindBool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return Value{}, &ParseError{Token: token, Kind: kind, Err: err}
		}
		return Bool(b), nil
	case KindString:
		return String(token), nil
	case KindJSON:
		return parseJSON(token)
	}
	return Value{}, fmt.Errorf("unsupported type %d", int(kind))
}

func parseJSON(token string) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(token)))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Value{}, &ParseError{Token: token, Kind: KindJSON, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, &ParseError{Token: token, Kind: KindJSON, Err: errors.New("trailing data after JSON value")}
	}

	v := Value{Kind: KindJSON}
	switch doc.(type) {
	case json.Number:
	case []any:
		v.array = true
	default:
		return Value{}, &ParseError{Token: token, Kind: KindJSON, Err: fmt.Errorf("unexpected JSON %T", doc)}
	}

	nums, err := collectNumbers(doc, nil)
	if err != nil {
		return Value{}, &ParseError{Token: token, Kind: KindJSON, Err: err}
	}
	v.nums = nums
	return v, nil
}

// collectNumbers flattens nested arrays of numbers in document order.
func collectNumbers(doc any, out []json.Number) ([]json.Number, error) {
	switch t := doc.(type) {
	case json.Number:
		return append(out, t), nil
	case []any:
		for _, elem := range t {
			var err error
			out, err = collectNumbers(elem, out)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unexpected JSON %T in array", doc)
}

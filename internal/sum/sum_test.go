package sum

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum_Integers(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"2", "3", "5"},
		{"0", "0", "0"},
		{"-2", "3", "1"},
		{"-7", "-8", "-15"},
		{"+4", "1", "5"},
		{"9223372036854775806", "1", "9223372036854775807"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"+"+tt.b, func(t *testing.T) {
			got, err := Sum(KindInt, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSum_InvalidInteger(t *testing.T) {
	t.Run("first operand", func(t *testing.T) {
		_, err := Sum(KindInt, "x", "3")
		require.Error(t, err)
		assert.Equal(t, "'x' is not a valid integer", err.Error())
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "x", pe.Token)
		assert.Equal(t, KindInt, pe.Kind)
	})

	t.Run("second operand", func(t *testing.T) {
		_, err := Sum(KindInt, "2", "y")
		require.Error(t, err)
		assert.Equal(t, "'y' is not a valid integer", err.Error())
	})

	t.Run("both invalid reports first", func(t *testing.T) {
		_, err := Sum(KindInt, "x", "y")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'x'")
	})

	t.Run("float token", func(t *testing.T) {
		_, err := Sum(KindInt, "1.5", "2")
		require.Error(t, err)
		assert.Equal(t, "'1.5' is not a valid integer", err.Error())
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := Sum(KindInt, "", "2")
		require.Error(t, err)
		assert.Equal(t, "'' is not a valid integer", err.Error())
	})

	t.Run("surrounding space", func(t *testing.T) {
		_, err := Sum(KindInt, " 1", "2")
		var pe *ParseError
		assert.ErrorAs(t, err, &pe)
	})
}

func TestSum_IntegerOverflow(t *testing.T) {
	maxInt := strconv.FormatInt(math.MaxInt64, 10)
	minInt := strconv.FormatInt(math.MinInt64, 10)

	_, err := Sum(KindInt, maxInt, "1")
	var oe *OverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, KindInt, oe.Kind)
	var pe *ParseError
	assert.False(t, errors.As(err, &pe))

	_, err = Sum(KindInt, minInt, "-1")
	require.ErrorAs(t, err, &oe)

	got, err := Sum(KindInt, maxInt, minInt)
	require.NoError(t, err)
	assert.Equal(t, "-1", got.String())
}

func TestSum_Floats(t *testing.T) {
	got, err := Sum(KindFloat, "1.5", "2.25")
	require.NoError(t, err)
	assert.Equal(t, "3.75", got.String())

	got, err = Sum(KindFloat, "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "5", got.String())

	got, err = Sum(KindFloat, "-1e3", "1")
	require.NoError(t, err)
	assert.Equal(t, "-999", got.String())
}

func TestSum_InvalidFloat(t *testing.T) {
	for _, token := range []string{"abc", "NaN", "inf", "-Inf", "1,5"} {
		t.Run(token, func(t *testing.T) {
			_, err := Sum(KindFloat, token, "1")
			require.Error(t, err)
			assert.Equal(t, "'"+token+"' is not a valid number", err.Error())
		})
	}
}

func TestSum_FloatOverflow(t *testing.T) {
	_, err := Sum(KindFloat, "1.7e308", "1.7e308")
	var oe *OverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, KindFloat, oe.Kind)
}

func TestSum_Bools(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"true", "true", "true"},
		{"true", "false", "false"},
		{"false", "true", "false"},
		{"false", "false", "false"},
		{"1", "T", "true"},
		{"1", "0", "false"},
		{"F", "FALSE", "false"},
	}
	for _, tt := range tests {
		got, err := Sum(KindBool, tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "%s + %s", tt.a, tt.b)
	}

	_, err := Sum(KindBool, "yes", "true")
	require.Error(t, err)
	assert.Equal(t, "'yes' is not a valid boolean", err.Error())
}

func TestSum_Strings(t *testing.T) {
	got, err := Sum(KindString, "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, "foobar", got.String())

	got, err = Sum(KindString, "", "")
	require.NoError(t, err)
	assert.Equal(t, "", got.String())
}

func TestSum_JSON(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"numbers", "2", "3", "5"},
		{"arrays", "[1,2]", "[3]", "6"},
		{"nested", "[[1],[2,[3]]]", "4", "10"},
		{"empty arrays", "[]", "[]", "0"},
		{"fractions", "[0.5, 1]", "1.25", "2.75"},
		{"exponent", "1e2", "1", "101"},
		{"whitespace", " [ 1 , 2 ] ", "0", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(KindJSON, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSum_InvalidJSON(t *testing.T) {
	for _, token := range []string{`"3"`, `[1,"2"]`, `{"a":1}`, `true`, `[1,2`, `1 2`, `null`, ``} {
		t.Run(token, func(t *testing.T) {
			_, err := Sum(KindJSON, token, "1")
			require.Error(t, err)
			assert.Equal(t, "'"+token+"' is not a valid JSON number or array of numbers", err.Error())
		})
	}
}

func TestParse_JSONKeepsShape(t *testing.T) {
	v, err := Parse(KindJSON, "[1, [2.5]]")
	require.NoError(t, err)
	assert.Equal(t, "[1,2.5]", v.String())

	v, err = Parse(KindJSON, "7")
	require.NoError(t, err)
	assert.Equal(t, "7", v.String())
}

func TestAdd_KindMismatch(t *testing.T) {
	_, err := Add(Int(1), Float(2))
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestValue_Interface(t *testing.T) {
	assert.Equal(t, int64(5), Int(5).Interface())
	assert.Equal(t, 1.5, Float(1.5).Interface())
	assert.Equal(t, true, Bool(true).Interface())
	assert.Equal(t, "ab", String("ab").Interface())
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"int":     KindInt,
		"INT":     KindInt,
		"integer": KindInt,
		"float":   KindFloat,
		" bool ":  KindBool,
		"string":  KindString,
		"json":    KindJSON,
	}
	for name, want := range tests {
		got, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKind("complex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "int, float, bool, string, json")
}

func TestKind_String(t *testing.T) {
	for _, name := range Kinds() {
		k, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}
	assert.Equal(t, "unknown", Kind(99).String())
}

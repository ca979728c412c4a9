package cmd

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// separateOperands lets negative numbers be passed as operands. pflag reads
// "-2" as a shorthand flag, so when such a token is present the flags are
// moved in front of a "--" terminator and every operand follows it, keeping
// the operands in their original order. Argument lists without negative
// numbers are returned unchanged.
func separateOperands(root *cobra.Command, args []string) []string {
	var flags, operands []string
	negative := false

loop:
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			operands = append(operands, args[i+1:]...)
			break loop
		case isNegativeNumber(arg):
			negative = true
			operands = append(operands, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			if flagTakesValue(root, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			operands = append(operands, arg)
		}
	}

	if !negative {
		return args
	}

	out := make([]string, 0, len(flags)+1+len(operands))
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, operands...)
}

// isNegativeNumber reports whether arg is a numeric literal starting with '-'.
func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	if c := arg[1]; (c < '0' || c > '9') && c != '.' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// flagTakesValue reports whether arg is a flag whose value is the next
// argument, e.g. "--type float" or "-t float".
func flagTakesValue(root *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		name := arg[2:]
		if flag = root.Flags().Lookup(name); flag == nil {
			flag = root.PersistentFlags().Lookup(name)
		}
	case len(arg) == 2:
		short := arg[1:]
		if flag = root.Flags().ShorthandLookup(short); flag == nil {
			flag = root.PersistentFlags().ShorthandLookup(short)
		}
	}

	return flag != nil && flag.NoOptDefVal == ""
}

package septex

import (
	"fmt"
	"math/big"
	"strings"
)

// VSpace returns a vertical space command of the given length.
func VSpace(length string) string {
	return fmt.Sprintf(`\vspace*{%s}`, length)
}

// Parentheses wraps text in auto-sized parentheses.
func Parentheses(text string) string {
	return fmt.Sprintf(`\left( %s \right)`, text)
}

// Brackets wraps text in auto-sized square brackets.
func Brackets(text string) string {
	return fmt.Sprintf(`\left[ %s \right]`, text)
}

// Braces wraps text in auto-sized curly braces.
func Braces(text string) string {
	return fmt.Sprintf(`\left\{ %s \right\}`, text)
}

// MathString formats v for use inside a math-mode environment.  Rationals
// become \frac commands, slices become bracketed element lists with string
// elements set in \text, and everything else uses its default formatting.
func MathString(v any) string {
	switch x := v.(type) {
	case *big.Rat:
		sign := ""
		if x.Sign() < 0 {
			sign = "-"
		}
		num := new(big.Int).Abs(x.Num())
		return fmt.Sprintf(`%s\frac{%s}{%s}`, sign, num, x.Denom())
	case []any:
		parts := make([]string, len(x))
		for i, el := range x {
			if s, ok := el.(string); ok {
				parts[i] = fmt.Sprintf(`\text{%s}`, s)
			} else {
				parts[i] = MathString(el)
			}
		}
		return Brackets(strings.Join(parts, ", "))
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

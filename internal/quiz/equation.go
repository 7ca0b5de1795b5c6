// Package quiz implements the math quiz: equation generation, answer
// validation against a finger count, scoring and feedback.
package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects which flavor of equation a session plays.
type Kind string

const (
	// KindComparison generates two operands; the answer names their order.
	KindComparison Kind = "comparison"
	// KindArithmetic generates two operands and a visible result; the
	// answer names the operator that produced it.
	KindArithmetic Kind = "arithmetic"
)

// ParseKind converts a config or CLI string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindComparison:
		return KindComparison, nil
	case KindArithmetic:
		return KindArithmetic, nil
	}
	return "", fmt.Errorf("unknown quiz kind %q", s)
}

// Operator is an arithmetic operator.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// numOperators is the number of operators Generate can draw from.
const numOperators = 4

// String returns the ASCII operator symbol.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}

// Apply returns the result of a op b. Division returns the true quotient as
// a float; a zero divisor yields 0.
func (op Operator) Apply(a, b int) float64 {
	switch op {
	case OpAdd:
		return float64(a + b)
	case OpSubtract:
		return float64(a - b)
	case OpMultiply:
		return float64(a * b)
	case OpDivide:
		if b == 0 {
			return 0
		}
		return float64(a) / float64(b)
	}
	return 0
}

// Equation is one generated quiz question. Its values are fixed at
// generation time; display text is derived from them on demand.
type Equation struct {
	Kind   Kind
	A, B   int
	Op     Operator // arithmetic only
	Result float64  // arithmetic only, precomputed from Op
}

// Text renders the player-facing equation. The relation or operator is the
// player's secret to guess, so it always renders as "?": comparison
// equations read "3 ? 7", arithmetic ones "4 ? 2 = 8".
func (e *Equation) Text() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindComparison:
		return fmt.Sprintf("%d ? %d", e.A, e.B)
	case KindArithmetic:
		return fmt.Sprintf("%d ? %d = %s", e.A, e.B, FormatResult(e.Result))
	}
	return ""
}

// FormatResult renders a result in its shortest exact decimal form: "8" for
// whole numbers, "3.5" for fractional quotients.
func FormatResult(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// TextParts holds the values recovered from an equation's display text.
type TextParts struct {
	A, B       int
	Result     float64
	Arithmetic bool
}

// ParseText recovers the operands, and for arithmetic equations the result,
// from text produced by Text. The hidden operator is not recoverable.
func ParseText(s string) (TextParts, error) {
	fields := strings.Fields(s)

	switch len(fields) {
	case 3:
		if fields[1] != "?" {
			return TextParts{}, fmt.Errorf("malformed equation text %q", s)
		}
		a, err := strconv.Atoi(fields[0])
		if err != nil {
			return TextParts{}, fmt.Errorf("malformed equation text %q: %w", s, err)
		}
		b, err := strconv.Atoi(fields[2])
		if err != nil {
			return TextParts{}, fmt.Errorf("malformed equation text %q: %w", s, err)
		}
		return TextParts{A: a, B: b}, nil

	case 5:
		if fields[1] != "?" || fields[3] != "=" {
			return TextParts{}, fmt.Errorf("malformed equation text %q", s)
		}
		a, err := strconv.Atoi(fields[0])
		if err != nil {
			return TextParts{}, fmt.Errorf("malformed equation text %q: %w", s, err)
		}
		b, err := strconv.Atoi(fields[2])
		if err != nil {
			return TextParts{}, fmt.Errorf("malformed equation text %q: %w", s, err)
		}
		result, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return TextParts{}, fmt.Errorf("malformed equation text %q: %w", s, err)
		}
		return TextParts{A: a, B: b, Result: result, Arithmetic: true}, nil
	}

	return TextParts{}, fmt.Errorf("malformed equation text %q", s)
}

package quiz

import (
	"math/rand"
	"time"
)

// Operand bounds. Every equation draws both operands uniformly from this
// range, so operands are always single-digit and positive.
const (
	OperandMin = 1
	OperandMax = 9
)

// Rand is the source of randomness for equation generation. *rand.Rand
// satisfies it; tests pass a fixed-seed source for reproducible questions.
type Rand interface {
	Intn(n int) int
}

// Generator produces random equations.
type Generator struct {
	rnd Rand
}

// NewGenerator creates a Generator. A nil rnd falls back to a source seeded
// from the current time.
func NewGenerator(rnd Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// Generate returns a fresh equation of the given kind.
func (g *Generator) Generate(kind Kind) *Equation {
	if kind == KindArithmetic {
		return g.Arithmetic()
	}
	return g.Comparison()
}

// Comparison returns an equation holding two uniform operands. Equal
// operands are as legitimate as any other draw; the player answers "equal".
func (g *Generator) Comparison() *Equation {
	return &Equation{
		Kind: KindComparison,
		A:    g.operand(),
		B:    g.operand(),
	}
}

// Arithmetic returns an equation holding two uniform operands, a uniformly
// drawn operator and its precomputed result.
func (g *Generator) Arithmetic() *Equation {
	a, b := g.operand(), g.operand()
	op := Operator(g.rnd.Intn(numOperators))
	return &Equation{
		Kind:   KindArithmetic,
		A:      a,
		B:      b,
		Op:     op,
		Result: op.Apply(a, b),
	}
}

func (g *Generator) operand() int {
	return OperandMin + g.rnd.Intn(OperandMax-OperandMin+1)
}

package quiz

// State identifies where the engine is in its generate-and-answer cycle.
type State string

const (
	// StateAwaitingGeneration means the next equation is scheduled but not
	// yet visible; the generation delay runs on the engine clock.
	StateAwaitingGeneration State = "awaiting_generation"
	// StateActive means an equation is on screen accepting answers.
	StateActive State = "active"
)

// GenerationDelay is how long the engine waits, in seconds of engine time,
// before a scheduled equation becomes visible.
const GenerationDelay = 0.25

// Feedback strings shown to the player. Feedback is sticky: it keeps its
// last value until the next evaluated answer.
const (
	FeedbackCorrect   = "Correct!"
	FeedbackIncorrect = "Incorrect!"
)

// Outcome classifies what a submitted finger count did to the engine.
type Outcome int

const (
	// OutcomeIgnored means the count maps to no claim; nothing changed.
	OutcomeIgnored Outcome = iota
	// OutcomeCorrect means the claim was true: the score went up and the
	// next equation was scheduled.
	OutcomeCorrect
	// OutcomeIncorrect means the claim was false: the equation stays up.
	OutcomeIncorrect
)

// Engine runs the quiz state machine for one session. It is driven by two
// inputs: elapsed time through Advance and finger counts through Submit.
// There is no terminal state; the engine cycles between waiting and active
// for as long as it is driven.
//
// Engine is not safe for concurrent use. The game loop owns it and mutates
// it from a single goroutine; everyone else reads through that loop's
// accessors.
type Engine struct {
	kind     Kind
	gen      *Generator
	state    State
	equation *Equation
	score    int
	feedback string
	waited   float64
}

// NewEngine creates an engine that plays equations of the given kind. The
// first equation appears once GenerationDelay of engine time has elapsed.
func NewEngine(kind Kind, gen *Generator) *Engine {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Engine{
		kind:  kind,
		gen:   gen,
		state: StateAwaitingGeneration,
	}
}

// Advance moves the engine clock forward by dt seconds. While an equation
// is pending, time accumulates until GenerationDelay is reached, then the
// equation becomes visible. Re-entering the pending state restarts the
// accumulator, so only the most recent schedule is ever honored and at most
// one equation can appear per cycle. Returns the equation made visible by
// this call, or nil.
func (e *Engine) Advance(dt float64) *Equation {
	if e.state != StateAwaitingGeneration {
		return nil
	}

	if dt > 0 {
		e.waited += dt
	}
	if e.waited < GenerationDelay {
		return nil
	}

	e.equation = e.gen.Generate(e.kind)
	e.state = StateActive
	e.waited = 0
	return e.equation
}

// Submit evaluates a finger count against the active equation.
//
// Comparison: 1 claims a < b, 2 claims a > b, 3 claims a = b.
// Arithmetic: 1 through 4 claim that a+b, a-b, a*b or a/b equals the shown
// result, compared as float64 values. A count whose claim happens to be
// true scores even when it names a different operator than the one drawn.
//
// Any other count, or a submit while no equation is active, is ignored:
// score, feedback and equation are all untouched. A correct claim bumps the
// score, clears the equation and schedules the next one. An incorrect claim
// updates feedback and leaves the same equation up for another try.
//
// Evaluation is level-triggered: the engine keeps no memory of previous
// submissions, so a held pose is re-evaluated on every call.
func (e *Engine) Submit(fingers int) Outcome {
	if e.state != StateActive || e.equation == nil {
		return OutcomeIgnored
	}

	holds, ok := e.claimHolds(fingers)
	if !ok {
		return OutcomeIgnored
	}

	if holds {
		e.score++
		e.feedback = FeedbackCorrect
		e.equation = nil
		e.state = StateAwaitingGeneration
		e.waited = 0
		return OutcomeCorrect
	}

	e.feedback = FeedbackIncorrect
	return OutcomeIncorrect
}

// claimHolds maps a finger count to a claim about the active equation and
// evaluates it. ok is false when the count maps to no claim.
func (e *Engine) claimHolds(fingers int) (holds, ok bool) {
	eq := e.equation

	switch eq.Kind {
	case KindComparison:
		switch fingers {
		case 1:
			return eq.A < eq.B, true
		case 2:
			return eq.A > eq.B, true
		case 3:
			return eq.A == eq.B, true
		}
	case KindArithmetic:
		if fingers >= 1 && fingers <= numOperators {
			return Operator(fingers - 1).Apply(eq.A, eq.B) == eq.Result, true
		}
	}

	return false, false
}

// Reset returns the engine to its initial state: score zero, no equation,
// empty feedback, the first equation rescheduled behind the delay.
func (e *Engine) Reset() {
	e.state = StateAwaitingGeneration
	e.equation = nil
	e.score = 0
	e.feedback = ""
	e.waited = 0
}

// State returns the current engine state.
func (e *Engine) State() State { return e.state }

// Kind returns the equation kind this engine plays.
func (e *Engine) Kind() Kind { return e.kind }

// Equation returns the active equation, or nil while one is pending.
func (e *Engine) Equation() *Equation { return e.equation }

// EquationText returns the active equation's display text, or "" while one
// is pending.
func (e *Engine) EquationText() string { return e.equation.Text() }

// Score returns the number of correct answers since the last reset.
func (e *Engine) Score() int { return e.score }

// Feedback returns the feedback from the most recent evaluated answer, or
// "" before the first one.
func (e *Engine) Feedback() string { return e.feedback }

// Package anim maps the companion's mood signals onto a closed set of
// body animation states and synthesizes poses for them over time.
package anim

import "fmt"

// State is the discrete body-motion mode. The set is closed; the
// companion behavior system never constructs states directly, it hands
// over mood keys and StateForMood classifies them.
type State int

const (
	Idle State = iota
	Walking
	Sitting
	TailWag
	HeadTilt

	stateCount
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Sitting:
		return "sitting"
	case TailWag:
		return "tailWag"
	case HeadTilt:
		return "headTilt"
	default:
		return "unknown"
	}
}

// States enumerates every animation state.
func States() []State {
	all := make([]State, 0, stateCount)
	for s := State(0); s < stateCount; s++ {
		all = append(all, s)
	}
	return all
}

// StateForMood classifies an external mood key. Pure and total: every
// string resolves to a state, unrecognized keys fall through to Idle so
// a stale or misspelled mood can never stall the avatar.
func StateForMood(mood string) State {
	switch mood {
	case "tail_wag":
		return TailWag
	case "head_tilt":
		return HeadTilt
	case "yawn":
		// Sleepy behavior is a resting variant, not its own state.
		return Idle
	case "zoomies":
		// Excited locomotion reuses Walking; speed scaling does the rest.
		return Walking
	default:
		return Idle
	}
}

// Expression is the facial overlay, orthogonal to State: any expression
// combines with any state and any breed.
type Expression int

const (
	ExprNeutral Expression = iota
	ExprHappy
	ExprSleepy
	ExprExcited

	expressionCount
)

func (e Expression) String() string {
	switch e {
	case ExprNeutral:
		return "neutral"
	case ExprHappy:
		return "happy"
	case ExprSleepy:
		return "sleepy"
	case ExprExcited:
		return "excited"
	default:
		return "unknown"
	}
}

// Expressions enumerates every expression.
func Expressions() []Expression {
	all := make([]Expression, 0, expressionCount)
	for e := Expression(0); e < expressionCount; e++ {
		all = append(all, e)
	}
	return all
}

// ParseExpression resolves an expression key from a profile or flag.
func ParseExpression(key string) (Expression, error) {
	for _, e := range Expressions() {
		if e.String() == key {
			return e, nil
		}
	}
	return 0, fmt.Errorf("anim: unknown expression %q", key)
}

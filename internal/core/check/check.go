package check

// Reached returns true if score >= target.
// A game ends on the first turn that brings its score to the target.
func Reached(score, target int) bool {
	return score >= target
}

// Overshoot returns how far score went past target.
// Negative values mean the target has not been reached.
func Overshoot(score, target int) int {
	return score - target
}

// Result represents a game score measured against its target.
type Result struct {
	Reached   bool
	Overshoot int
}

// Check measures score against target.
func Check(score, target int) Result {
	return Result{
		Reached:   Reached(score, target),
		Overshoot: Overshoot(score, target),
	}
}

// Package wizard implements the multi-step document builder session: the
// form data store, step navigation, completion scoring and autosave
// tracking that drive the CV and cover-letter builders.
package wizard

import "fmt"

// InvalidStepError reports a jump outside the step range.
type InvalidStepError struct {
	Index int
	Count int
}

func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("wizard: step %d out of range [0, %d]", e.Index, e.Count-1)
}

// Navigator is a linear state machine over the shape's ordered steps.
// The current step is an index in [0, N-1]; the last step is the preview.
type Navigator struct {
	steps   []string
	current int
}

// NewNavigator starts at step 0.
func NewNavigator(steps []string) *Navigator {
	return &Navigator{steps: steps}
}

// Current returns the active step index.
func (n *Navigator) Current() int { return n.current }

// CurrentName returns the active step's label.
func (n *Navigator) CurrentName() string { return n.steps[n.current] }

// Count returns the number of steps.
func (n *Navigator) Count() int { return len(n.steps) }

// AtFirst reports whether the active step is the first.
func (n *Navigator) AtFirst() bool { return n.current == 0 }

// AtLast reports whether the active step is the terminal preview step.
func (n *Navigator) AtLast() bool { return n.current == len(n.steps)-1 }

// Next advances one step and returns the new index. At the last step it is
// a no-op.
func (n *Navigator) Next() int {
	if n.current < len(n.steps)-1 {
		n.current++
	}
	return n.current
}

// Back moves one step back and returns the new index. At step 0 it is a
// no-op.
func (n *Navigator) Back() int {
	if n.current > 0 {
		n.current--
	}
	return n.current
}

// JumpTo moves directly to any valid index, including steps whose forms
// are still incomplete; users may want to preview early. Invalid indices
// fail with an InvalidStepError.
func (n *Navigator) JumpTo(i int) (int, error) {
	if i < 0 || i >= len(n.steps) {
		return n.current, &InvalidStepError{Index: i, Count: len(n.steps)}
	}
	n.current = i
	return n.current, nil
}

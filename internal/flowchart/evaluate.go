package flowchart

import "debt-planner/internal/model"

// Evaluation is the user's position in the flowchart.
type Evaluation struct {
	CurrentStepID    string
	CompletedStepIDs []string
	NextActions      []string
	Steps            []Step
}

// Evaluate walks the steps in order. The first incomplete step is current,
// except that problem debt takes over whenever the plan relies on credit for
// essentials or runs a deficit.
func Evaluate(p *model.FinancialPlan) Evaluation {
	ev := Evaluation{CompletedStepIDs: []string{}, Steps: Steps}

	current := -1
	for i, s := range Steps {
		if s.IsComplete(p) {
			ev.CompletedStepIDs = append(ev.CompletedStepIDs, s.ID)
		} else if current < 0 {
			current = i
		}
	}
	if current < 0 {
		current = 0
	}
	if inCrisis(p) {
		current = StepIndex(StepProblemDebt)
	}

	step := Steps[current]
	ev.CurrentStepID = step.ID
	ev.NextActions = step.NextActions(p)
	return ev
}

// StepIndex returns the position of id in Steps, or -1.
func StepIndex(id string) int {
	for i, s := range Steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}

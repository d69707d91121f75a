package finance

import "fintrack/internal/models"

// GoalProgress is the derived view of one savings goal.
type GoalProgress struct {
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
	Completed bool    `json:"completed"`
}

// Progress derives completion state from target and current amounts. Percent
// is capped at 100 for display; Remaining never goes negative even when the
// goal is overshot. A zero target yields 0 percent.
func Progress(target, current float64) GoalProgress {
	percent := 0.0
	if target > 0 {
		percent = current / target * 100
		if percent > 100 {
			percent = 100
		}
	}
	remaining := target - current
	if remaining < 0 {
		remaining = 0
	}
	return GoalProgress{
		Percent:   percent,
		Remaining: remaining,
		Completed: current >= target,
	}
}

// ApplyProgress adds delta to the goal's current amount and runs the status
// machine: active or paused flips to completed once current reaches target.
// The transition fires at most once and never reverts; reducing the amount
// later leaves a completed goal completed. Returns true when this call caused
// the transition.
func ApplyProgress(g *models.Goal, delta float64) bool {
	g.CurrentAmount += delta
	if g.CurrentAmount >= g.TargetAmount && g.Status != models.GoalCompleted {
		g.Status = models.GoalCompleted
		return true
	}
	return false
}

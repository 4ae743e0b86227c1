package services

import "math"

// Progress statuses.
const (
	StatusCompleted  = "Completed"
	StatusInProgress = "In Progress"
)

// Progress is goal completion for one metric on one day.
type Progress struct {
	Total      int     `json:"total"`
	Goal       int     `json:"goal"`
	Percentage float64 `json:"percentage"`
	Remaining  int     `json:"remaining"`
	Status     string  `json:"status"`
}

// GoalProgress computes completion against a daily goal. Percentage is
// capped at 100 and rounded to 1 decimal; Remaining never goes negative.
func GoalProgress(total, goal int) Progress {
	pct := 0.0
	if goal > 0 {
		pct = float64(total) / float64(goal) * 100
		if pct > 100 {
			pct = 100
		}
	}

	remaining := goal - total
	if remaining < 0 {
		remaining = 0
	}

	status := StatusInProgress
	if total >= goal {
		status = StatusCompleted
	}

	return Progress{
		Total:      total,
		Goal:       goal,
		Percentage: math.Round(pct*10) / 10,
		Remaining:  remaining,
		Status:     status,
	}
}

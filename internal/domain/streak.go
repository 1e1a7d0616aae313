package domain

// StreakResult is the outcome of a streak computation over a submission
// window. Days holds the distinct submission dates in the window, ascending.
type StreakResult struct {
	Streak int      `json:"streak"`
	Days   []string `json:"days"`
}

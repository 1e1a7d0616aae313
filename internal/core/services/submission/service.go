package submission

import (
	"context"

	"gitlab.com/codecommunity-2025.net/internal/domain"
)

// SubmitResult is what a user sees right after submitting: the day that was
// recorded and the streak including it.
type SubmitResult struct {
	Date   string
	Streak int
}

// ISubmissionService records daily-challenge completions and answers streak
// queries.
type ISubmissionService interface {
	// Submit appends a submission record for today and returns the streak
	// including it. The record is written before the streak window is
	// re-queried, so the caller always sees today counted.
	Submit(ctx context.Context, username, language, challengeID string) (*SubmitResult, error)

	// Streak computes the current streak for (username, language) from the
	// trailing submission window.
	Streak(ctx context.Context, username, language string) (*domain.StreakResult, error)
}

package submission

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/codecommunity-2025.net/internal/config"
	"gitlab.com/codecommunity-2025.net/internal/core/ports/primary"
	"gitlab.com/codecommunity-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecommunity-2025.net/internal/core/services/streak"
	"gitlab.com/codecommunity-2025.net/internal/domain"
	"gitlab.com/codecommunity-2025.net/internal/static/errs"
)

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements the ISubmissionService interface
type SubmissionService struct {
	store  secondary.DocumentStore
	cfg    *config.StreakSvcCfg
	logger primary.Logger
	now    func() time.Time
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(store secondary.DocumentStore, cfg *config.StreakSvcCfg, logger primary.Logger) *SubmissionService {
	return &SubmissionService{
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock overrides the time source, used by tests to pin "today".
func (s *SubmissionService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Submit appends a record for today, then re-queries the window and computes
// the streak. Concurrent same-day submits may append duplicates; the engine
// collapses them at read time.
func (s *SubmissionService) Submit(ctx context.Context, username, language, challengeID string) (*SubmitResult, error) {
	if !domain.IsSupportedLanguage(language) {
		return nil, fmt.Errorf("%w: %s", errs.UnsupportedLanguage, language)
	}

	date := s.now().Format(domain.DateLayout)
	record := domain.NewSubmissionRecord(username, language, date, challengeID)

	doc := secondary.Document{
		"username": record.Username,
		"language": record.Language,
		"date":     record.Date,
	}
	if record.ChallengeID != "" {
		doc["challenge_id"] = record.ChallengeID
	}

	if _, err := s.store.CreateDocument(ctx, domain.CollectionSubmissions, doc); err != nil {
		s.logger.Error("Failed to record submission", "username", username, "language", language, "error", err)
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	records, err := s.window(ctx, username, language)
	if err != nil {
		return nil, err
	}

	result := streak.Current(date, records)
	s.logger.Info("Submission recorded", "username", username, "language", language, "date", date, "streak", result.Streak)

	return &SubmitResult{Date: date, Streak: result.Streak}, nil
}

// Streak computes the current streak from the trailing window snapshot.
func (s *SubmissionService) Streak(ctx context.Context, username, language string) (*domain.StreakResult, error) {
	if !domain.IsSupportedLanguage(language) {
		return nil, fmt.Errorf("%w: %s", errs.UnsupportedLanguage, language)
	}

	records, err := s.window(ctx, username, language)
	if err != nil {
		return nil, err
	}

	result := streak.Current(s.now().Format(domain.DateLayout), records)
	return &result, nil
}

// window fetches the trailing WindowDays of submissions for (username,
// language), capped at QueryLimit records.
func (s *SubmissionService) window(ctx context.Context, username, language string) ([]domain.SubmissionRecord, error) {
	start := s.now().AddDate(0, 0, -s.cfg.WindowDays).Format(domain.DateLayout)
	filter := secondary.Filter{
		Equals: map[string]string{
			"username": username,
			"language": language,
		},
		DateGTE: start,
	}

	docs, err := s.store.GetDocuments(ctx, domain.CollectionSubmissions, filter, s.cfg.QueryLimit)
	if err != nil {
		s.logger.Error("Failed to query submission window", "username", username, "language", language, "error", err)
		return nil, fmt.Errorf("failed to query submission window: %w", err)
	}

	records := make([]domain.SubmissionRecord, 0, len(docs))
	for _, doc := range docs {
		date, ok := doc["date"].(string)
		if !ok {
			continue
		}
		records = append(records, domain.SubmissionRecord{
			Username: username,
			Language: language,
			Date:     date,
		})
	}
	return records, nil
}

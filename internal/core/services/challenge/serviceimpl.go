package challenge

import (
	"fmt"
	"strings"

	"gitlab.com/codecommunity-2025.net/internal/domain"
	"gitlab.com/codecommunity-2025.net/internal/static/errs"
)

// Fixed tables, part of the external contract: the index derived from the
// seed must keep selecting the same entry across releases. Order matters.
var titles = []string{
	"Two Sum Variant",
	"String Compression",
	"Balanced Brackets",
	"LRU Cache Mini",
	"Matrix Spiral",
	"Binary Tree Paths",
	"Anagram Groups",
	"Word Ladder Mini",
}

var descriptions = []string{
	"Solve the task and share your approach.",
	"Write clean, idiomatic code and discuss trade-offs.",
	"Consider time/space complexity and edge cases.",
}

var _ IChallengeService = (*ChallengeService)(nil)

// ChallengeService implements the IChallengeService interface
type ChallengeService struct{}

// NewChallengeService creates a new challenge service
func NewChallengeService() *ChallengeService {
	return &ChallengeService{}
}

// Generate returns the deterministic challenge for (language, date).
func (s *ChallengeService) Generate(language, date string) (*domain.ChallengeDescriptor, error) {
	if !domain.IsSupportedLanguage(language) {
		return nil, fmt.Errorf("%w: %s", errs.UnsupportedLanguage, language)
	}

	// Seed is the byte-code sum over language + "YYYY-MM-DD".
	seed := 0
	for _, c := range []byte(language + date) {
		seed += int(c)
	}

	title := titles[seed%len(titles)]
	description := descriptions[seed%len(descriptions)]

	return &domain.ChallengeDescriptor{
		Date:        date,
		Language:    language,
		Title:       fmt.Sprintf("%s Daily: %s", capitalize(language), title),
		Description: description,
		ID:          fmt.Sprintf("%s-%s", language, date),
	}, nil
}

// Languages returns the supported-language set in its fixed order.
func (s *ChallengeService) Languages() []string {
	return domain.SupportedLanguages
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

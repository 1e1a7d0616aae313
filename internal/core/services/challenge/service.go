package challenge

import "gitlab.com/codecommunity-2025.net/internal/domain"

// IChallengeService generates the daily challenge for a language.
type IChallengeService interface {
	// Generate returns the deterministic challenge for (language, date).
	// Same inputs always yield the same descriptor; nothing is persisted.
	Generate(language, date string) (*domain.ChallengeDescriptor, error)

	// Languages returns the supported-language set in its fixed order.
	Languages() []string
}

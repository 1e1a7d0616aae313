package domain

// ChallengeDescriptor is the daily challenge for one (language, date) pair.
// It is derived on every request and never persisted; ID is the composite
// "<language>-<date>".
type ChallengeDescriptor struct {
	Date        string `json:"date"`
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ID          string `json:"id"`
}

package domain

// SubmissionRecord represents one recorded daily-challenge completion.
// Records are append-only: they are never updated or deleted, and several
// records may exist for the same (username, language, date) triple.
type SubmissionRecord struct {
	Username    string `json:"username"`
	Language    string `json:"language"`
	Date        string `json:"date"`
	ChallengeID string `json:"challenge_id,omitempty"`
}

// NewSubmissionRecord creates a submission record for the given calendar day
func NewSubmissionRecord(username, language, date, challengeID string) *SubmissionRecord {
	return &SubmissionRecord{
		Username:    username,
		Language:    language,
		Date:        date,
		ChallengeID: challengeID,
	}
}

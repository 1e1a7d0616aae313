package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gitlab.com/codecommunity-2025.net/internal/domain"
)

func records(dates ...string) []domain.SubmissionRecord {
	out := make([]domain.SubmissionRecord, 0, len(dates))
	for _, d := range dates {
		out = append(out, domain.SubmissionRecord{Username: "ada", Language: "go", Date: d})
	}
	return out
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name       string
		reference  string
		dates      []string
		wantStreak int
		wantDays   []string
	}{
		{
			name:       "empty window",
			reference:  "2024-03-10",
			dates:      nil,
			wantStreak: 0,
			wantDays:   []string{},
		},
		{
			name:       "three consecutive days",
			reference:  "2024-03-10",
			dates:      []string{"2024-03-08", "2024-03-09", "2024-03-10"},
			wantStreak: 3,
			wantDays:   []string{"2024-03-08", "2024-03-09", "2024-03-10"},
		},
		{
			name:       "reference day missing breaks immediately",
			reference:  "2024-03-10",
			dates:      []string{"2024-03-07", "2024-03-09"},
			wantStreak: 0,
			wantDays:   []string{"2024-03-07", "2024-03-09"},
		},
		{
			name:       "gap behind reference day",
			reference:  "2024-03-09",
			dates:      []string{"2024-03-07", "2024-03-09"},
			wantStreak: 1,
			wantDays:   []string{"2024-03-07", "2024-03-09"},
		},
		{
			name:       "duplicates collapse to one day",
			reference:  "2024-03-10",
			dates:      []string{"2024-03-10", "2024-03-10", "2024-03-09"},
			wantStreak: 2,
			wantDays:   []string{"2024-03-09", "2024-03-10"},
		},
		{
			name:       "walks across month boundary",
			reference:  "2024-03-01",
			dates:      []string{"2024-02-29", "2024-03-01"},
			wantStreak: 2,
			wantDays:   []string{"2024-02-29", "2024-03-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Current(tt.reference, records(tt.dates...))
			assert.Equal(t, tt.wantStreak, result.Streak)
			assert.Equal(t, tt.wantDays, result.Days)
		})
	}
}

func TestCurrentConsecutiveRunProperty(t *testing.T) {
	// Exactly the run [R-k+1 .. R] and nothing else yields streak k.
	reference := "2024-06-30"
	for k := 1; k <= 10; k++ {
		dates := make([]string, 0, k)
		for i := 0; i < k; i++ {
			dates = append(dates, addDays(t, reference, -i))
		}
		result := Current(reference, records(dates...))
		assert.Equal(t, k, result.Streak, "run length %d", k)
	}
}

func TestCurrentUnparsableReference(t *testing.T) {
	result := Current("not-a-date", records("2024-03-10"))
	assert.Equal(t, 0, result.Streak)
	assert.Equal(t, []string{"2024-03-10"}, result.Days)
}

func addDays(t *testing.T, date string, n int) string {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	return parsed.AddDate(0, 0, n).Format(domain.DateLayout)
}

// package streak computes consecutive-day completion streaks. The engine is a
// pure function over the submission window handed to it; it performs no I/O
// and holds no state.
package streak

import (
	"sort"
	"time"

	"gitlab.com/codecommunity-2025.net/internal/domain"
)

// Current walks backward from referenceDate one day at a time, counting while
// a submission exists for the day, and stops at the first gap. Duplicate
// records on one date collapse to a single day, so repeated submissions never
// inflate the count. If referenceDate itself has no submission the streak
// is 0.
//
// Known limitation: records are bounded by the caller's lookback window, so a
// true streak longer than the window is reported as the window length.
func Current(referenceDate string, records []domain.SubmissionRecord) domain.StreakResult {
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		seen[record.Date] = struct{}{}
	}

	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	// ISO dates sort chronologically as strings.
	sort.Strings(days)

	result := domain.StreakResult{Days: days}

	current, err := time.Parse(domain.DateLayout, referenceDate)
	if err != nil {
		return result
	}

	for {
		if _, ok := seen[current.Format(domain.DateLayout)]; !ok {
			break
		}
		result.Streak++
		current = current.AddDate(0, 0, -1)
	}

	return result
}

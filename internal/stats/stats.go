// internal/stats/stats.go
//
// User profile and cumulative statistics.
// Defines:
//   - Stats: the persisted counters (wins, streaks, times, stars, dailies).
//   - UserProfile: username + creation time + Stats.
//   - Validate: plausibility rules guarding against tampered storage.
//   - ValidateUsername: login input rule (2–15 characters).
//
// Field order in Stats matters: the checksum (checksum.go) is computed
// over the serialized struct, so reordering fields invalidates every
// stored profile.

package stats

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Stats holds a player's cumulative counters.
type Stats struct {
	Wins             int            `json:"wins"`
	GamesPlayed      int            `json:"gamesPlayed"`
	CurrentStreak    int            `json:"currentStreak"`
	BestStreak       int            `json:"bestStreak"`
	BestTime         *int           `json:"bestTime"`      // seconds, nil until first win
	TotalPlayTime    int            `json:"totalPlayTime"` // seconds, won rounds only
	TotalStars       int            `json:"totalStars"`
	DailiesCompleted int            `json:"dailiesCompleted"`
	LastDailyDate    *string        `json:"lastDailyDate"` // "2006-01-02", local calendar day
	Achievements     []string       `json:"achievements"`  // unlocked achievement ids
	DailyHistory     map[string]int `json:"dailyHistory"`  // date key → wins that day, ≤30 entries
}

// UserProfile is one device-local player identity.
type UserProfile struct {
	Username  string `json:"username"`
	CreatedAt int64  `json:"createdAt"` // epoch millis
	Stats     Stats  `json:"stats"`
}

// ErrInvalidUsername is surfaced to the user as a rejected input.
var ErrInvalidUsername = errors.New("username must be 2–15 characters")

// ValidateUsername enforces the login name length rule.
func ValidateUsername(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 2 || n > 15 {
		return ErrInvalidUsername
	}
	return nil
}

// NewProfile returns a fresh profile with zeroed stats.
// Also used to recover from integrity violations, preserving the username.
func NewProfile(username string, now time.Time) *UserProfile {
	return &UserProfile{
		Username:  username,
		CreatedAt: now.UnixMilli(),
		Stats: Stats{
			Achievements: []string{},
			DailyHistory: map[string]int{},
		},
	}
}

// minBestTime is the fastest believable win in seconds.
const minBestTime = 5

// minAvgGameTime is the plausibility floor for totalPlayTime/gamesPlayed.
// Note: gamesPlayed counts abandoned rounds while totalPlayTime does not,
// so a long run of abandons can drag honest profiles below this floor.
// The formula is kept as-is for compatibility with stored profiles.
const minAvgGameTime = 10

// Validate checks stored stats for plausibility. A false return means the
// profile was tampered with or corrupted and must be reset.
func Validate(s Stats) bool {
	if s.Wins < 0 || s.GamesPlayed < 0 {
		return false
	}
	if s.Wins > s.GamesPlayed {
		return false
	}
	if s.BestStreak > s.Wins {
		return false
	}
	if s.CurrentStreak > s.BestStreak+1 {
		return false
	}
	if s.BestTime != nil && *s.BestTime < minBestTime {
		return false
	}
	if s.TotalPlayTime < 0 {
		return false
	}
	if s.GamesPlayed > 0 {
		if float64(s.TotalPlayTime)/float64(s.GamesPlayed) < minAvgGameTime {
			return false
		}
	}
	return true
}

// HasAchievement reports whether id is already unlocked.
func (s *Stats) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// DateKey formats t as the calendar-day key used for lastDailyDate and
// dailyHistory ("2006-01-02", in t's location).
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// historyRetentionDays bounds dailyHistory growth.
const historyRetentionDays = 30

// RecordDailyWin increments today's dailyHistory entry and prunes entries
// older than 30 days. Date-keyed strings compare lexicographically.
func (s *Stats) RecordDailyWin(now time.Time) {
	if s.DailyHistory == nil {
		s.DailyHistory = map[string]int{}
	}
	s.DailyHistory[DateKey(now)]++
	cutoff := DateKey(now.AddDate(0, 0, -historyRetentionDays))
	for k := range s.DailyHistory {
		if k < cutoff {
			delete(s.DailyHistory, k)
		}
	}
}

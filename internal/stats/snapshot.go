// internal/stats/snapshot.go
//
// Derived, presentation-ready view of a profile's stats: win rate,
// best/average/total time, and the trailing-week win histogram the
// statistics screen renders. All derivation happens here so the HTTP
// layer stays a dumb serializer.

package stats

import (
	"math"
	"time"
)

// DayWins is one bar of the weekly histogram.
type DayWins struct {
	Date  string `json:"date"` // "2006-01-02"
	Wins  int    `json:"wins"`
	Today bool   `json:"today,omitempty"`
}

// Snapshot is the read-only stats view handed to presentation.
type Snapshot struct {
	Username         string    `json:"username"`
	Wins             int       `json:"wins"`
	GamesPlayed      int       `json:"gamesPlayed"`
	WinRatePercent   int       `json:"winRatePercent"`
	CurrentStreak    int       `json:"currentStreak"`
	BestStreak       int       `json:"bestStreak"`
	BestTime         *int      `json:"bestTime"`
	AverageTime      int       `json:"averageTime"` // seconds, 0 until a round was won
	TotalPlayTime    int       `json:"totalPlayTime"`
	TotalStars       int       `json:"totalStars"`
	DailiesCompleted int       `json:"dailiesCompleted"`
	Achievements     []string  `json:"achievements"`
	Weekly           []DayWins `json:"weekly"`
}

// NewSnapshot derives the presentation view for p as of now.
func NewSnapshot(p *UserProfile, now time.Time) Snapshot {
	s := p.Stats
	snap := Snapshot{
		Username:         p.Username,
		Wins:             s.Wins,
		GamesPlayed:      s.GamesPlayed,
		CurrentStreak:    s.CurrentStreak,
		BestStreak:       s.BestStreak,
		BestTime:         s.BestTime,
		TotalPlayTime:    s.TotalPlayTime,
		TotalStars:       s.TotalStars,
		DailiesCompleted: s.DailiesCompleted,
		Achievements:     append([]string{}, s.Achievements...),
		Weekly:           WeeklyWins(s, now),
	}
	if s.GamesPlayed > 0 {
		snap.WinRatePercent = int(math.Round(float64(s.Wins) / float64(s.GamesPlayed) * 100))
		if s.TotalPlayTime > 0 {
			snap.AverageTime = int(math.Round(float64(s.TotalPlayTime) / float64(s.GamesPlayed)))
		}
	}
	return snap
}

// WeeklyWins sums dailyHistory over the trailing 7 calendar days,
// oldest first, today last.
func WeeklyWins(s Stats, now time.Time) []DayWins {
	out := make([]DayWins, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := DateKey(day)
		out = append(out, DayWins{
			Date:  key,
			Wins:  s.DailyHistory[key],
			Today: i == 0,
		})
	}
	return out
}

package stats

import (
	"testing"
	"time"
)

func sampleStats() Stats {
	bt := 120
	ld := "2026-08-27"
	return Stats{
		Wins:             7,
		GamesPlayed:      12,
		CurrentStreak:    2,
		BestStreak:       4,
		BestTime:         &bt,
		TotalPlayTime:    3600,
		TotalStars:       425,
		DailiesCompleted: 3,
		LastDailyDate:    &ld,
		Achievements:     []string{"first_win", "wins_5"},
		DailyHistory:     map[string]int{"2026-08-26": 2, "2026-08-27": 1},
	}
}

func TestChecksumDeterministic(t *testing.T) {
	a := sampleStats()
	b := sampleStats()
	if Checksum(a) != Checksum(b) {
		t.Errorf("equal stats yield different checksums: %q vs %q", Checksum(a), Checksum(b))
	}
	// Repeated calls over the same value are stable too.
	if Checksum(a) != Checksum(a) {
		t.Error("checksum not stable across calls")
	}
}

func TestChecksumChangesOnMutation(t *testing.T) {
	base := Checksum(sampleStats())

	mutations := []struct {
		name   string
		mutate func(*Stats)
	}{
		{"wins", func(s *Stats) { s.Wins++ }},
		{"gamesPlayed", func(s *Stats) { s.GamesPlayed++ }},
		{"currentStreak", func(s *Stats) { s.CurrentStreak++ }},
		{"bestStreak", func(s *Stats) { s.BestStreak++ }},
		{"bestTime", func(s *Stats) { *s.BestTime = 60 }},
		{"totalPlayTime", func(s *Stats) { s.TotalPlayTime += 500 }},
		{"totalStars", func(s *Stats) { s.TotalStars += 1000 }},
		{"dailiesCompleted", func(s *Stats) { s.DailiesCompleted++ }},
		{"lastDailyDate", func(s *Stats) { *s.LastDailyDate = "2026-08-28" }},
		{"achievements", func(s *Stats) { s.Achievements = append(s.Achievements, "wins_10") }},
		{"dailyHistory", func(s *Stats) { s.DailyHistory["2026-08-27"] = 9 }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleStats()
			tt.mutate(&s)
			if Checksum(s) == base {
				t.Errorf("mutating %s did not change the checksum", tt.name)
			}
		})
	}
}

func TestChecksumFreshProfileStable(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	a := NewProfile("anna", now)
	b := NewProfile("bert", now)
	// The checksum covers stats only, not the username.
	if Checksum(a.Stats) != Checksum(b.Stats) {
		t.Error("fresh stats checksums differ between users")
	}
}

// internal/challenge/engine.go
//
// Evaluation rules for daily challenges and achievements.
//
// Daily selection is a pure function of the calendar date: every player
// sees the same challenge on a given day. A challenge pays out at most
// once per local calendar day per profile; an achievement pays out once
// ever. Both evaluations run against stats that already include the
// current game's win, so threshold predicates see up-to-date counters.

package challenge

import (
	"time"

	"github.com/robalobadob/bahnbingo/internal/stats"
)

// CurrentDaily returns the challenge for t's calendar date:
// day-of-year (Jan 1 = 1) modulo the rotation length.
func CurrentDaily(t time.Time) Challenge {
	return DailyChallenges[t.YearDay()%len(DailyChallenges)]
}

// EvaluateDaily checks the current daily challenge against a won round.
//
// Returns nil without mutation when the profile already claimed a daily
// today (lastDailyDate equals the result's calendar date) or when the
// predicate fails. On success it stamps lastDailyDate, increments
// dailiesCompleted, adds the reward to totalStars, and returns the
// completed challenge.
func EvaluateDaily(r GameResult, p *stats.UserProfile) *Challenge {
	today := stats.DateKey(r.PlayedAt)
	if p.Stats.LastDailyDate != nil && *p.Stats.LastDailyDate == today {
		return nil
	}

	c := CurrentDaily(r.PlayedAt)
	if !c.Check(r) {
		return nil
	}

	p.Stats.LastDailyDate = &today
	p.Stats.DailiesCompleted++
	p.Stats.TotalStars += c.Reward
	return &c
}

// EvaluateAchievements walks the catalog in order and unlocks every
// achievement whose predicate has become true, appending its id and
// adding its reward. Already-unlocked ids are never re-evaluated or
// re-rewarded. Returns the newly unlocked achievements in catalog order.
//
// Rewards feed totalStars, which later catalog entries (the star
// collectors) read, so unlock order is part of the behavior.
func EvaluateAchievements(s *stats.Stats) []Achievement {
	var unlocked []Achievement
	for _, a := range Achievements {
		if s.HasAchievement(a.ID) {
			continue
		}
		if !a.Check(*s) {
			continue
		}
		s.Achievements = append(s.Achievements, a.ID)
		s.TotalStars += a.Reward
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// internal/challenge/types.go
//
// Definitions for daily challenges and permanent achievements, plus the
// GameResult record both are evaluated against.

package challenge

import (
	"time"

	"github.com/robalobadob/bahnbingo/internal/board"
	"github.com/robalobadob/bahnbingo/internal/stats"
)

// GameResult is the post-game record for a single won round.
// PlayedAt carries the injected clock's reading at win time so
// hour-of-day challenge predicates stay testable.
type GameResult struct {
	TimeSeconds   int           `json:"timeSeconds"`
	MarkedCount   int           `json:"markedCount"` // includes the free space
	WinType       board.WinType `json:"winType"`
	CurrentStreak int           `json:"currentStreak"` // after this win's increment
	PlayedAt      time.Time     `json:"-"`
}

// Challenge is one entry of the daily rotation.
type Challenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Reward      int    `json:"reward"` // stars granted on completion

	// Check evaluates the challenge against one won round.
	Check func(GameResult) bool `json:"-"`
}

// Achievement is a permanent, one-time-unlockable milestone.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Reward      int    `json:"reward"`

	// Check evaluates the milestone against cumulative stats that
	// already include the current game's win.
	Check func(stats.Stats) bool `json:"-"`
}

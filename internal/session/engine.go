// internal/session/engine.go
//
// Round orchestration: ties board + marks + timer + win detection into
// the post-game transaction.
//
// On a win, the stats update, daily-history record, achievement and
// daily-challenge evaluation, and persistence run as one sequence; the
// caller must not process further marks until it returns. Evaluation
// order matters: counters first, then achievements (they read the
// updated counters), then the daily challenge.

package session

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bahnbingo/internal/board"
	"github.com/robalobadob/bahnbingo/internal/challenge"
	"github.com/robalobadob/bahnbingo/internal/stats"
)

// Engine bundles the round collaborators: a board generator, the
// profile store, and an injected clock.
type Engine struct {
	gen   *board.Generator
	store *stats.Store
	now   func() time.Time
}

// NewEngine wires an Engine. now defaults to time.Now when nil.
func NewEngine(gen *board.Generator, store *stats.Store, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{gen: gen, store: store, now: now}
}

// Outcome is everything presentation needs after a won round.
type Outcome struct {
	Win          board.WinResult         `json:"win"`
	Result       challenge.GameResult    `json:"result"`
	Achievements []challenge.Achievement `json:"achievements"` // newly unlocked, catalog order
	Daily        *challenge.Challenge    `json:"daily"`        // completed daily, if granted
}

// StartRound begins a new round for p, replacing prior.
//
// A prior round still in progress was abandoned: it counts as a loss
// for streak purposes (gamesPlayed+1, streak reset) but contributes no
// time sample. A prior Won round was already accounted for.
func (e *Engine) StartRound(ctx context.Context, p *stats.UserProfile, prior *Session) (*Session, error) {
	if prior != nil && prior.State == StateInProgress {
		p.Stats.GamesPlayed++
		p.Stats.CurrentStreak = 0
		e.persist(ctx, p)
	}
	return New(e.gen, e.now())
}

// Mark toggles a cell and, when the mark completes a line, runs the full
// win transaction. Returns whether the cell is now marked and, on a win,
// the Outcome.
func (e *Engine) Mark(ctx context.Context, p *stats.UserProfile, s *Session, index int) (bool, *Outcome, error) {
	win, err := s.Toggle(index)
	if err != nil {
		return s.IsMarked(index), nil, err
	}
	if win == nil {
		return s.IsMarked(index), nil, nil
	}
	out := e.completeWin(ctx, p, s, win)
	return true, out, nil
}

// completeWin applies the post-game transaction for a completed line.
func (e *Engine) completeWin(ctx context.Context, p *stats.UserProfile, s *Session, win *board.WinResult) *Outcome {
	now := e.now()
	elapsed := s.Elapsed(now)

	st := &p.Stats
	st.Wins++
	st.GamesPlayed++
	st.CurrentStreak++
	st.TotalPlayTime += elapsed
	if st.CurrentStreak > st.BestStreak {
		st.BestStreak = st.CurrentStreak
	}
	if st.BestTime == nil || elapsed < *st.BestTime {
		t := elapsed
		st.BestTime = &t
	}
	st.RecordDailyWin(now)

	result := challenge.GameResult{
		TimeSeconds:   elapsed,
		MarkedCount:   s.MarkedCount(),
		WinType:       win.Type,
		CurrentStreak: st.CurrentStreak,
		PlayedAt:      now,
	}

	unlocked := challenge.EvaluateAchievements(st)
	daily := challenge.EvaluateDaily(result, p)

	e.persist(ctx, p)

	return &Outcome{
		Win:          *win,
		Result:       result,
		Achievements: unlocked,
		Daily:        daily,
	}
}

// persist saves the profile; failures only cost durability, so they are
// logged and swallowed.
func (e *Engine) persist(ctx context.Context, p *stats.UserProfile) {
	if err := e.store.Save(ctx, p); err != nil {
		log.Warn().Err(err).Str("user", p.Username).Msg("profile save failed")
	}
}

// Now exposes the engine clock for presentation (elapsed display).
func (e *Engine) Now() time.Time { return e.now() }

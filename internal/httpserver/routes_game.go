// internal/httpserver/routes_game.go
//
// HTTP routes for playing a round.
// Exposes, under authentication:
//   - POST /game/new    → start a round (abandoning an in-progress one counts a loss)
//   - POST /game/mark   → toggle a cell; on a completed line returns the full outcome
//   - GET  /game/state  → board, marks, elapsed time for reconnecting clients
//   - GET  /game/share  → share texts for the current board and stats
//
// Every handler takes the player lock, so marks never interleave with a
// running win transaction.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/bahnbingo/internal/challenge"
	"github.com/robalobadob/bahnbingo/internal/session"
	"github.com/robalobadob/bahnbingo/internal/stats"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/mark", s.handleMark)
		r.Get("/state", s.handleGameState)
		r.Get("/share", s.handleShare)
	})
}

// -----------------------------------------------------------------------------
// POST /game/new

type newGameRes struct {
	SessionID string       `json:"sessionId"`
	Board     sessionBoard `json:"board"`
}

type sessionBoard struct {
	Cells  []cellView `json:"cells"`
	Marked []int      `json:"marked"`
}

type cellView struct {
	Text        string `json:"text"`
	Category    string `json:"category,omitempty"`
	Icon        string `json:"icon"`
	IsFreeSpace bool   `json:"isFreeSpace,omitempty"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	p, ok := s.playerFor(w, r)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	round, err := s.eng.StartRound(r.Context(), p.profile, p.round)
	if err != nil {
		http.Error(w, `{"error":"board_generation_failed"}`, http.StatusInternalServerError)
		return
	}
	p.round = round
	_ = json.NewEncoder(w).Encode(newGameRes{SessionID: round.ID, Board: boardView(round)})
}

// -----------------------------------------------------------------------------
// POST /game/mark

type markReq struct {
	SessionID string `json:"sessionId"`
	Index     int    `json:"index"`
}

type markRes struct {
	Marked  bool             `json:"marked"` // state of the cell after the toggle
	State   session.State    `json:"state"`
	Outcome *session.Outcome `json:"outcome,omitempty"` // present on a win
}

func (s *Server) handleMark(w http.ResponseWriter, r *http.Request) {
	var req markReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	p, ok := s.playerFor(w, r)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.round == nil || p.round.ID != req.SessionID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	marked, outcome, err := s.eng.Mark(r.Context(), p.profile, p.round, req.Index)
	switch {
	case errors.Is(err, session.ErrRoundOver):
		http.Error(w, `{"error":"round_over"}`, http.StatusConflict)
		return
	case errors.Is(err, session.ErrBadIndex), errors.Is(err, session.ErrFreeSpace):
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, `{"error":"mark_failed"}`, http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(markRes{Marked: marked, State: p.round.State, Outcome: outcome})
}

// -----------------------------------------------------------------------------
// GET /game/state

type gameStateRes struct {
	SessionID string        `json:"sessionId"`
	Board     sessionBoard  `json:"board"`
	State     session.State `json:"state"`
	Elapsed   int           `json:"elapsed"` // seconds since round start
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	p, ok := s.playerFor(w, r)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.round == nil {
		http.Error(w, `{"error":"no_session"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(gameStateRes{
		SessionID: p.round.ID,
		Board:     boardView(p.round),
		State:     p.round.State,
		Elapsed:   p.round.Elapsed(s.eng.Now()),
	})
}

// -----------------------------------------------------------------------------
// GET /game/share

type shareRes struct {
	Board string `json:"board"`
	Win   string `json:"win"`
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	p, ok := s.playerFor(w, r)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	res := shareRes{Win: session.WinShareText(p.profile.Stats)}
	if p.round != nil {
		res.Board = session.BoardShareText(p.round)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// Profile views

// handleStats returns the derived statistics snapshot.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	p, ok := s.playerFor(w, r)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = json.NewEncoder(w).Encode(stats.NewSnapshot(p.profile, s.eng.Now()))
}

// achievementView is one catalog entry plus the unlock flag.
type achievementView struct {
	challenge.Achievement
	Unlocked bool `json:"unlocked"`
}

// handleAchievements lists the full catalog with the profile's unlocks.
func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	p, ok := s.playerFor(w, r)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]achievementView, 0, len(challenge.Achievements))
	for _, a := range challenge.Achievements {
		out = append(out, achievementView{Achievement: a, Unlocked: p.profile.Stats.HasAchievement(a.ID)})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// dailyRes describes today's challenge for the header card.
type dailyRes struct {
	Challenge challenge.Challenge `json:"challenge"`
	Date      string              `json:"date"`
	Completed bool                `json:"completed"`
}

// handleDaily reports today's rotation entry and whether this profile
// already claimed it.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	p, ok := s.playerFor(w, r)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	now := s.eng.Now()
	today := stats.DateKey(now)
	completed := p.profile.Stats.LastDailyDate != nil && *p.profile.Stats.LastDailyDate == today
	_ = json.NewEncoder(w).Encode(dailyRes{
		Challenge: challenge.CurrentDaily(now),
		Date:      today,
		Completed: completed,
	})
}

// boardView converts a round to its wire form.
func boardView(round *session.Session) sessionBoard {
	cells := make([]cellView, 0, len(round.Board))
	for _, c := range round.Board {
		cells = append(cells, cellView{
			Text:        c.Text,
			Category:    c.CategoryKey,
			Icon:        c.Icon,
			IsFreeSpace: c.IsFreeSpace,
		})
	}
	return sessionBoard{Cells: cells, Marked: round.Marked()}
}

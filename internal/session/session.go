// internal/session/session.go
//
// One round of bingo: board, marks, timer, state machine.
//
// States: Idle → InProgress → Won. Marks toggle freely while the round
// is in progress; the free space is pre-marked and can never be
// removed. A completed line freezes the round (Won is terminal until a
// new round replaces the session).

package session

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/bahnbingo/internal/board"
)

// State is the round lifecycle phase.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateWon        State = "won"
)

var (
	// ErrRoundOver means a mark arrived after the round was won.
	ErrRoundOver = errors.New("session: round is over")
	// ErrBadIndex means the cell index is outside 0..24.
	ErrBadIndex = errors.New("session: cell index out of range")
	// ErrFreeSpace means the free space was targeted; it stays marked.
	ErrFreeSpace = errors.New("session: free space cannot be toggled")
)

// Session is the state of a single round. It is owned by one logical
// thread of control; callers serialize access (the HTTP layer holds a
// per-profile lock).
type Session struct {
	ID        string
	Board     board.Board
	StartedAt time.Time
	State     State

	marked map[int]struct{}
}

// New generates a board and starts a round at now.
func New(gen *board.Generator, now time.Time) (*Session, error) {
	b, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.NewString(),
		Board:     b,
		StartedAt: now,
		State:     StateInProgress,
		marked:    map[int]struct{}{board.FreeSpaceIndex: {}},
	}, nil
}

// Toggle marks or unmarks the cell at index. When a mark completes a
// line it returns the winning line and moves the round to Won.
func (s *Session) Toggle(index int) (*board.WinResult, error) {
	if s.State != StateInProgress {
		return nil, ErrRoundOver
	}
	if index < 0 || index >= board.Cells {
		return nil, ErrBadIndex
	}
	if index == board.FreeSpaceIndex {
		return nil, ErrFreeSpace
	}

	if _, ok := s.marked[index]; ok {
		delete(s.marked, index)
		return nil, nil
	}
	s.marked[index] = struct{}{}

	win := board.CheckWin(s.marked)
	if win != nil {
		s.State = StateWon
	}
	return win, nil
}

// IsMarked reports whether index is currently marked.
func (s *Session) IsMarked(index int) bool {
	_, ok := s.marked[index]
	return ok
}

// Marked returns the marked indices in ascending order.
func (s *Session) Marked() []int {
	out := make([]int, 0, len(s.marked))
	for i := range s.marked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// MarkedCount reports the number of marked cells, free space included.
func (s *Session) MarkedCount() int { return len(s.marked) }

// Elapsed reports whole seconds since the round started, floored.
func (s *Session) Elapsed(now time.Time) int {
	return int(now.Sub(s.StartedAt) / time.Second)
}

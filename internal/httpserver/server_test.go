package httpserver

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/bahnbingo/internal/board"
	"github.com/robalobadob/bahnbingo/internal/events"
	"github.com/robalobadob/bahnbingo/internal/session"
	"github.com/robalobadob/bahnbingo/internal/stats"
	"github.com/robalobadob/bahnbingo/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	if err := events.Init(); err != nil {
		t.Fatalf("events.Init() = %v", err)
	}
	st := stats.NewStore(store.NewMemoryKV())
	clock := func() time.Time { return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC) }
	st.Now = clock
	eng := session.NewEngine(board.NewGenerator(rand.New(rand.NewSource(4))), st, clock)
	return New(eng, st)
}

// do runs one request against the router and returns the recorder.
func do(t *testing.T, srv *Server, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

// login authenticates username and returns the auth cookies.
func login(t *testing.T, srv *Server, username string) []*http.Cookie {
	t.Helper()
	rec := do(t, srv, http.MethodPost, "/auth/login", map[string]string{"username": username}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d, body %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no cookie")
	}
	return cookies
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
}

func TestLoginRejectsBadUsernames(t *testing.T) {
	srv := newTestServer(t)
	for _, name := range []string{"", "a", strings.Repeat("x", 16)} {
		rec := do(t, srv, http.MethodPost, "/auth/login", map[string]string{"username": name}, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("login(%q) = %d, want 400", name, rec.Code)
		}
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/stats/me"},
		{http.MethodGet, "/daily"},
		{http.MethodGet, "/achievements"},
		{http.MethodPost, "/game/new"},
		{http.MethodGet, "/game/state"},
	} {
		rec := do(t, srv, tc.method, tc.path, nil, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}

func TestLoginNewGameMarkFlow(t *testing.T) {
	srv := newTestServer(t)
	cookies := login(t, srv, "pendlerin")

	rec := do(t, srv, http.MethodPost, "/game/new", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("game/new = %d, body %s", rec.Code, rec.Body.String())
	}
	var game struct {
		SessionID string `json:"sessionId"`
		Board     struct {
			Cells []struct {
				Text        string `json:"text"`
				IsFreeSpace bool   `json:"isFreeSpace"`
			} `json:"cells"`
			Marked []int `json:"marked"`
		} `json:"board"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &game); err != nil {
		t.Fatalf("decode game/new: %v", err)
	}
	if game.SessionID == "" {
		t.Error("no session id")
	}
	if len(game.Board.Cells) != board.Cells {
		t.Fatalf("board has %d cells, want %d", len(game.Board.Cells), board.Cells)
	}
	if !game.Board.Cells[board.FreeSpaceIndex].IsFreeSpace {
		t.Error("center cell is not the free space")
	}
	if len(game.Board.Marked) != 1 || game.Board.Marked[0] != board.FreeSpaceIndex {
		t.Errorf("marked = %v, want only the free space", game.Board.Marked)
	}

	rec = do(t, srv, http.MethodPost, "/game/mark",
		map[string]any{"sessionId": game.SessionID, "index": 0}, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("game/mark = %d, body %s", rec.Code, rec.Body.String())
	}
	var marked struct {
		Marked  bool            `json:"marked"`
		State   string          `json:"state"`
		Outcome json.RawMessage `json:"outcome"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &marked); err != nil {
		t.Fatalf("decode game/mark: %v", err)
	}
	if !marked.Marked || marked.State != string(session.StateInProgress) || len(marked.Outcome) != 0 {
		t.Errorf("mark response = %+v, want plain mark", marked)
	}

	rec = do(t, srv, http.MethodGet, "/game/state", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("game/state = %d", rec.Code)
	}
	var state struct {
		SessionID string `json:"sessionId"`
		State     string `json:"state"`
		Elapsed   int    `json:"elapsed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode game/state: %v", err)
	}
	if state.SessionID != game.SessionID || state.State != string(session.StateInProgress) || state.Elapsed != 0 {
		t.Errorf("state = %+v", state)
	}
}

func TestMarkWithoutMatchingSession(t *testing.T) {
	srv := newTestServer(t)
	cookies := login(t, srv, "pendlerin")

	rec := do(t, srv, http.MethodPost, "/game/mark",
		map[string]any{"sessionId": "nope", "index": 0}, cookies)
	if rec.Code != http.StatusConflict {
		t.Errorf("mark with bogus session = %d, want 409", rec.Code)
	}
}

func TestMarkBadIndexAndFreeSpace(t *testing.T) {
	srv := newTestServer(t)
	cookies := login(t, srv, "pendlerin")

	rec := do(t, srv, http.MethodPost, "/game/new", nil, cookies)
	var game struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &game); err != nil {
		t.Fatalf("decode game/new: %v", err)
	}

	for _, idx := range []int{-1, 25, board.FreeSpaceIndex} {
		rec := do(t, srv, http.MethodPost, "/game/mark",
			map[string]any{"sessionId": game.SessionID, "index": idx}, cookies)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("mark(%d) = %d, want 400", idx, rec.Code)
		}
	}
}

func TestStatsDailyAndAchievementsViews(t *testing.T) {
	srv := newTestServer(t)
	cookies := login(t, srv, "pendlerin")

	rec := do(t, srv, http.MethodGet, "/stats/me", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats/me = %d", rec.Code)
	}
	var snap struct {
		Wins        int `json:"wins"`
		GamesPlayed int `json:"gamesPlayed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if snap.Wins != 0 || snap.GamesPlayed != 0 {
		t.Errorf("fresh profile snapshot = %+v, want zeroes", snap)
	}

	rec = do(t, srv, http.MethodGet, "/daily", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("daily = %d", rec.Code)
	}
	var daily struct {
		Challenge struct {
			ID string `json:"id"`
		} `json:"challenge"`
		Date      string `json:"date"`
		Completed bool   `json:"completed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &daily); err != nil {
		t.Fatalf("decode daily: %v", err)
	}
	if daily.Challenge.ID == "" || daily.Date != "2026-08-28" || daily.Completed {
		t.Errorf("daily = %+v", daily)
	}

	rec = do(t, srv, http.MethodGet, "/achievements", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("achievements = %d", rec.Code)
	}
	var achievements []struct {
		ID       string `json:"id"`
		Unlocked bool   `json:"unlocked"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &achievements); err != nil {
		t.Fatalf("decode achievements: %v", err)
	}
	if len(achievements) != 18 {
		t.Fatalf("achievement catalog has %d entries, want 18", len(achievements))
	}
	for _, a := range achievements {
		if a.Unlocked {
			t.Errorf("fresh profile has %s unlocked", a.ID)
		}
	}
}

func TestLogoutClearsCookieAndSession(t *testing.T) {
	srv := newTestServer(t)
	cookies := login(t, srv, "pendlerin")

	rec := do(t, srv, http.MethodPost, "/auth/logout", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout = %d", rec.Code)
	}
	cleared := rec.Result().Cookies()
	if len(cleared) == 0 || cleared[0].MaxAge != -1 {
		t.Errorf("logout did not expire the cookie: %+v", cleared)
	}
}

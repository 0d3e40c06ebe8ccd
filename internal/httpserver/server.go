// internal/httpserver/server.go
//
// HTTP server wiring for the Bahn-Bingo backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", POST /auth/login.
//   - Profile endpoints (require auth): /auth/me, /auth/logout, /stats/me,
//     /achievements, /daily.
//   - Game endpoints (require auth): mounted in routes_game.go.
//   - JWT + cookie handling for the device profile (username claim, no password).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - The server keeps one in-memory player entry per logged-in username:
//     the loaded profile plus the active round. All game handlers serialize
//     on the player lock so the win transaction never interleaves with marks.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bahnbingo/internal/session"
	"github.com/robalobadob/bahnbingo/internal/stats"
)

// player is the per-username in-memory state: profile + active round.
type player struct {
	mu      sync.Mutex // serializes marks and the win transaction
	profile *stats.UserProfile
	round   *session.Session
}

// Server bundles router, game engine, profile store, and player table.
type Server struct {
	r        *chi.Mux
	eng      *session.Engine
	profiles *stats.Store

	mu      sync.Mutex // guards players map
	players map[string]*player
}

// New constructs a Server, installs middleware, and registers routes.
func New(eng *session.Engine, profiles *stats.Store) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		eng:      eng,
		profiles: profiles,
		players:  make(map[string]*player),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"bahnbingo","endpoints":["/health","POST /auth/login","POST /game/new","POST /game/mark","/stats/me","/daily","/achievements"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Auth
	s.r.Post("/auth/login", s.handleLogin)
	s.r.With(s.requireAuth()).Post("/auth/logout", s.handleLogout)
	s.r.With(s.requireAuth()).Get("/auth/me", s.handleMe)

	// Profile views (gated)
	s.r.With(s.requireAuth()).Get("/stats/me", s.handleStats)
	s.r.With(s.requireAuth()).Get("/achievements", s.handleAchievements)
	s.r.With(s.requireAuth()).Get("/daily", s.handleDaily)

	// Game endpoints (gated)
	s.mountGame(s.r.With(s.requireAuth()))

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- AUTH --------------------------------------

type loginReq struct {
	Username string `json:"username"`
}

// handleLogin validates the username, loads or creates the profile, and
// sets the auth cookie. A fresh login on a device with stored stats
// resumes them (after the integrity check); otherwise stats start zeroed.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(body.Username)
	if err := stats.ValidateUsername(username); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	p, err := s.loadOrCreate(r.Context(), username)
	if err != nil {
		http.Error(w, `{"error":"profile_load_failed"}`, http.StatusInternalServerError)
		return
	}

	tok, exp, err := s.signJWT(username)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setAuthCookie(w, tok, exp)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"username":  p.profile.Username,
		"createdAt": p.profile.CreatedAt,
	})
}

// handleLogout clears the auth cookie and drops the in-memory round.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if username, err := currentUsername(r); err == nil {
		s.mu.Lock()
		delete(s.players, username)
		s.mu.Unlock()
	}
	s.clearAuthCookie(w)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleMe reports the logged-in profile.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	p, ok := s.playerFor(w, r)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"username":  p.profile.Username,
		"createdAt": p.profile.CreatedAt,
	})
}

// loadOrCreate returns the cached player for username, loading the
// profile through the integrity-checked store or creating a fresh one.
func (s *Server) loadOrCreate(ctx context.Context, username string) (*player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[username]; ok {
		return p, nil
	}

	profile, err := s.profiles.Load(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = stats.NewProfile(username, s.eng.Now())
		if err := s.profiles.Save(ctx, profile); err != nil {
			log.Warn().Err(err).Str("user", username).Msg("initial profile save failed")
		}
	}
	p := &player{profile: profile}
	s.players[username] = p
	return p, nil
}

// playerFor resolves the request's player entry, writing an error
// response when the request is not authenticated.
func (s *Server) playerFor(w http.ResponseWriter, r *http.Request) (*player, bool) {
	username, err := currentUsername(r)
	if err != nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return nil, false
	}
	p, err := s.loadOrCreate(r.Context(), username)
	if err != nil {
		http.Error(w, `{"error":"profile_load_failed"}`, http.StatusInternalServerError)
		return nil, false
	}
	return p, true
}

// ------------------------------ JWT & cookies ------------------------------

// ctxUserKey is the context key type for the authenticated username.
type ctxUserKey struct{}

// currentUsername reads the authenticated username from request context.
func currentUsername(r *http.Request) (string, error) {
	u, _ := r.Context().Value(ctxUserKey{}).(string)
	if u == "" {
		return "", errors.New("no user")
	}
	return u, nil
}

// requireAuth enforces a valid JWT and injects the username into context.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerOrCookie(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(getEnv("JWT_SECRET", "dev_secret_change_me")), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			username, _ := claims["username"].(string)
			if username == "" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserKey{}, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// signJWT creates an HS256 JWT with the username and a configurable
// expiry (JWT_EXPIRES_DAYS; default 180 — the profile is device-local).
func (s *Server) signJWT(username string) (string, time.Time, error) {
	secret := getEnv("JWT_SECRET", "dev_secret_change_me")
	days := 180
	if v := os.Getenv("JWT_EXPIRES_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}
	exp := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// setAuthCookie writes the auth token cookie with appropriate security attributes.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	name := getEnv("COOKIE_NAME", "bahnbingo_token")
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// clearAuthCookie deletes the auth token cookie.
func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	name := getEnv("COOKIE_NAME", "bahnbingo_token")
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or auth cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(getEnv("COOKIE_NAME", "bahnbingo_token")); err == nil {
		return c.Value
	}
	return ""
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

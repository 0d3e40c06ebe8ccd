// internal/stats/store.go
//
// Integrity-checked profile persistence over a KV collaborator.
//
// Save writes the profile plus a checksum/timestamp envelope. Load
// verifies the checksum against a freshly computed one and runs the
// plausibility rules; on any violation it silently hands back a fresh
// profile that keeps only the username. Storage read or parse failures
// are treated the same as "nothing saved yet".

package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bahnbingo/internal/store"
)

// DefaultKeyPrefix namespaces profile records in the KV store.
// The full key is prefix + username.
const DefaultKeyPrefix = "bahnBingo_v2:"

// envelope is the persisted record layout.
type envelope struct {
	Username  string `json:"username"`
	CreatedAt int64  `json:"createdAt"`
	Stats     Stats  `json:"stats"`
	Checksum  string `json:"_checksum"`
	Timestamp int64  `json:"_timestamp"`
}

// Store persists UserProfiles with an integrity envelope.
type Store struct {
	kv     store.KV
	prefix string

	// Now is the clock used for the envelope timestamp and fresh
	// profiles; tests override it.
	Now func() time.Time
}

// NewStore builds a Store over kv with the default key prefix.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv, prefix: DefaultKeyPrefix, Now: time.Now}
}

func (s *Store) key(username string) string { return s.prefix + username }

// Save serializes the profile with a fresh checksum and timestamp,
// overwriting any prior record. A write failure is returned to the
// caller; it only affects durability, never in-memory session state.
func (s *Store) Save(ctx context.Context, p *UserProfile) error {
	env := envelope{
		Username:  p.Username,
		CreatedAt: p.CreatedAt,
		Stats:     p.Stats,
		Checksum:  Checksum(p.Stats),
		Timestamp: s.Now().UnixMilli(),
	}
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key(p.Username), string(b))
}

// Load reads the stored profile for username.
//
// Returns (nil, nil) when nothing was stored or the record cannot be
// parsed — the caller proceeds to the first-run flow. A checksum
// mismatch or implausible stats yields a fresh profile preserving the
// username; that recovery is logged but never surfaced as an error.
func (s *Store) Load(ctx context.Context, username string) (*UserProfile, error) {
	raw, ok, err := s.kv.Get(ctx, s.key(username))
	if err != nil {
		log.Warn().Err(err).Str("user", username).Msg("profile read failed, treating as absent")
		return nil, nil
	}
	if !ok {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Warn().Err(err).Str("user", username).Msg("profile parse failed, treating as absent")
		return nil, nil
	}

	if env.Checksum != Checksum(env.Stats) {
		log.Warn().Str("user", username).Msg("checksum mismatch, resetting stats")
		return NewProfile(env.Username, s.Now()), nil
	}
	if !Validate(env.Stats) {
		log.Warn().Str("user", username).Msg("stats failed plausibility check, resetting")
		return NewProfile(env.Username, s.Now()), nil
	}

	p := &UserProfile{Username: env.Username, CreatedAt: env.CreatedAt, Stats: env.Stats}
	if p.Stats.Achievements == nil {
		p.Stats.Achievements = []string{}
	}
	if p.Stats.DailyHistory == nil {
		p.Stats.DailyHistory = map[string]int{}
	}
	return p, nil
}

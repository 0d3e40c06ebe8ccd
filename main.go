package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bahnbingo/internal/board"
	"github.com/robalobadob/bahnbingo/internal/events"
	"github.com/robalobadob/bahnbingo/internal/httpserver"
	"github.com/robalobadob/bahnbingo/internal/session"
	"github.com/robalobadob/bahnbingo/internal/stats"
	"github.com/robalobadob/bahnbingo/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := events.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to validate event catalog")
	}

	db, err := openDB(getEnv("BINGO_DB", "./data/bingo.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := ensureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap schema")
	}

	profiles := stats.NewStore(store.NewSQLiteKV(db))
	gen := board.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	eng := session.NewEngine(gen, profiles, time.Now)

	srv := httpserver.New(eng, profiles)
	port := getEnv("PORT", "5180")
	log.Info().Str("port", port).Int("phrases", events.TotalPhrases()).Msg("starting bahnbingo server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}

// internal/challenge/catalog.go
//
// The shipped daily-challenge rotation and achievement list.
// Keep ids stable: clients and stored profiles reference them.
// Catalog order is the evaluation order for achievements.

package challenge

import "github.com/robalobadob/bahnbingo/internal/stats"

// DailyChallenges rotate by day of year; see CurrentDaily.
var DailyChallenges = []Challenge{
	{
		ID:          "speed_demon",
		Title:       "Schnellfahrer",
		Description: "Gewinne in unter 5 Minuten",
		Icon:        "⚡",
		Reward:      100,
		Check:       func(r GameResult) bool { return r.TimeSeconds < 300 },
	},
	{
		ID:          "patient_player",
		Title:       "Geduldiger Pendler",
		Description: "Gewinne in unter 10 Minuten",
		Icon:        "🧘",
		Reward:      50,
		Check:       func(r GameResult) bool { return r.TimeSeconds < 600 },
	},
	{
		ID:          "full_board",
		Title:       "Voll besetzt",
		Description: "Markiere mindestens 15 Felder vor dem Sieg",
		Icon:        "📋",
		Reward:      75,
		Check:       func(r GameResult) bool { return r.MarkedCount >= 15 },
	},
	{
		ID:          "diagonal_win",
		Title:       "Diagonal-Denker",
		Description: "Gewinne mit einer Diagonale",
		Icon:        "↗️",
		Reward:      60,
		Check:       func(r GameResult) bool { return r.WinType == "diagonal" },
	},
	{
		ID:          "streak_3",
		Title:       "Hattrick",
		Description: "Gewinne 3 Spiele in Folge",
		Icon:        "🎯",
		Reward:      150,
		Check:       func(r GameResult) bool { return r.CurrentStreak >= 3 },
	},
	{
		ID:          "early_bird",
		Title:       "Frühaufsteher",
		Description: "Spiele vor 8 Uhr morgens",
		Icon:        "🌅",
		Reward:      40,
		Check:       func(r GameResult) bool { return r.PlayedAt.Hour() < 8 },
	},
	{
		ID:          "night_owl",
		Title:       "Nachteule",
		Description: "Spiele nach 22 Uhr",
		Icon:        "🦉",
		Reward:      40,
		Check:       func(r GameResult) bool { return r.PlayedAt.Hour() >= 22 },
	},
}

// Achievements in unlock-evaluation order.
var Achievements = []Achievement{
	{
		ID: "first_win", Title: "Erste Fahrt", Description: "Gewinne dein erstes Spiel",
		Icon: "🎉", Reward: 25,
		Check: func(s stats.Stats) bool { return s.Wins >= 1 },
	},
	{
		ID: "wins_5", Title: "Stammgast", Description: "Gewinne 5 Spiele",
		Icon: "🎫", Reward: 50,
		Check: func(s stats.Stats) bool { return s.Wins >= 5 },
	},
	{
		ID: "wins_10", Title: "Vielfahrer", Description: "Gewinne 10 Spiele",
		Icon: "🚃", Reward: 100,
		Check: func(s stats.Stats) bool { return s.Wins >= 10 },
	},
	{
		ID: "wins_25", Title: "Pendler-Profi", Description: "Gewinne 25 Spiele",
		Icon: "🏅", Reward: 200,
		Check: func(s stats.Stats) bool { return s.Wins >= 25 },
	},
	{
		ID: "wins_50", Title: "Bahn-Legende", Description: "Gewinne 50 Spiele",
		Icon: "🏆", Reward: 500,
		Check: func(s stats.Stats) bool { return s.Wins >= 50 },
	},
	{
		ID: "wins_100", Title: "Eisenbahn-König", Description: "Gewinne 100 Spiele",
		Icon: "👑", Reward: 1000,
		Check: func(s stats.Stats) bool { return s.Wins >= 100 },
	},
	{
		ID: "streak_3", Title: "Hattrick", Description: "3 Siege in Folge",
		Icon: "🔥", Reward: 75,
		Check: func(s stats.Stats) bool { return s.BestStreak >= 3 },
	},
	{
		ID: "streak_5", Title: "Siegesserie", Description: "5 Siege in Folge",
		Icon: "💪", Reward: 150,
		Check: func(s stats.Stats) bool { return s.BestStreak >= 5 },
	},
	{
		ID: "streak_10", Title: "Unaufhaltsam", Description: "10 Siege in Folge",
		Icon: "⚡", Reward: 300,
		Check: func(s stats.Stats) bool { return s.BestStreak >= 10 },
	},
	{
		ID: "speed_3min", Title: "Blitzfahrer", Description: "Gewinne in unter 3 Minuten",
		Icon: "🚀", Reward: 100,
		Check: func(s stats.Stats) bool { return s.BestTime != nil && *s.BestTime < 180 },
	},
	{
		ID: "speed_1min", Title: "ICE-Tempo", Description: "Gewinne in unter 1 Minute",
		Icon: "💨", Reward: 250,
		Check: func(s stats.Stats) bool { return s.BestTime != nil && *s.BestTime < 60 },
	},
	{
		ID: "games_50", Title: "Dauerfahrkarte", Description: "Spiele 50 Runden",
		Icon: "📅", Reward: 100,
		Check: func(s stats.Stats) bool { return s.GamesPlayed >= 50 },
	},
	{
		ID: "games_100", Title: "BahnCard 100", Description: "Spiele 100 Runden",
		Icon: "💳", Reward: 250,
		Check: func(s stats.Stats) bool { return s.GamesPlayed >= 100 },
	},
	{
		ID: "winrate_60", Title: "Überdurchschnittlich", Description: "60% Gewinnrate (min. 10 Spiele)",
		Icon: "📈", Reward: 100,
		Check: func(s stats.Stats) bool {
			return s.GamesPlayed >= 10 && float64(s.Wins)/float64(s.GamesPlayed) >= 0.6
		},
	},
	{
		ID: "winrate_80", Title: "Bingo-Meister", Description: "80% Gewinnrate (min. 20 Spiele)",
		Icon: "🎯", Reward: 300,
		Check: func(s stats.Stats) bool {
			return s.GamesPlayed >= 20 && float64(s.Wins)/float64(s.GamesPlayed) >= 0.8
		},
	},
	{
		ID: "daily_7", Title: "Wochenpendler", Description: "Schließe 7 Daily Challenges ab",
		Icon: "📆", Reward: 200,
		Check: func(s stats.Stats) bool { return s.DailiesCompleted >= 7 },
	},
	{
		ID: "stars_500", Title: "Sternensammler", Description: "Sammle 500 Sterne",
		Icon: "⭐", Reward: 100,
		Check: func(s stats.Stats) bool { return s.TotalStars >= 500 },
	},
	{
		ID: "stars_2000", Title: "Sternenhimmel", Description: "Sammle 2000 Sterne",
		Icon: "🌟", Reward: 250,
		Check: func(s stats.Stats) bool { return s.TotalStars >= 2000 },
	},
}

// internal/session/share.go
//
// Share texts for the board-progress and win brags. Pure string
// building; clipboard/Web Share stays in the client.

package session

import (
	"fmt"

	"github.com/robalobadob/bahnbingo/internal/board"
	"github.com/robalobadob/bahnbingo/internal/stats"
)

// BoardShareText is the mid-round brag: marked count excludes the free space.
func BoardShareText(s *Session) string {
	return fmt.Sprintf("🚂 BAHN-BINGO\n\nIch spiele gerade Bahn-Bingo!\n%d von %d Feldern markiert.\n\nSpielst du mit? 🎮",
		s.MarkedCount()-1, board.Picks)
}

// WinShareText is the post-win brag built from cumulative stats.
func WinShareText(s stats.Stats) string {
	return fmt.Sprintf("🏆 BINGO!\n\nIch habe bei Bahn-Bingo gewonnen!\n🔥 Serie: %d\n⭐ Gesamt: %d Siege\n\n#BahnBingo 🚂",
		s.CurrentStreak, s.Wins)
}

// internal/board/types.go
//
// Core type definitions for the bingo board.
// Defines:
//   - Cell: one square on the board (phrase + category, or the free space).
//   - Board: the 5×5 grid in row-major order.
//   - WinResult: a completed row/column/diagonal.

package board

const (
	// Size is the board edge length.
	Size = 5
	// Cells is the total number of squares on a board.
	Cells = Size * Size // 25
	// FreeSpaceIndex is the fixed position of the pre-marked center square.
	FreeSpaceIndex = 12
	// Picks is the number of catalog phrases a board needs next to the free space.
	Picks = Cells - 1 // 24
)

// Cell is a single board square.
type Cell struct {
	Text        string `json:"text"`               // phrase shown on the square
	CategoryKey string `json:"category,omitempty"` // catalog category, empty for the free space
	Icon        string `json:"icon"`               // category emoji
	IsFreeSpace bool   `json:"isFreeSpace,omitempty"`
}

// Board is an ordered sequence of exactly Cells squares, addressed by
// index 0..24 (row = index / Size, col = index % Size). Index 12 is
// always the free space.
type Board []Cell

// WinType names the kind of completed line.
type WinType string

const (
	WinRow      WinType = "row"
	WinColumn   WinType = "column"
	WinDiagonal WinType = "diagonal"
)

// WinResult describes a completed line.
type WinResult struct {
	Type    WinType `json:"type"`
	Indices []int   `json:"indices"` // the five board indices of the line
}

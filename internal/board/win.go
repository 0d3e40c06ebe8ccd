// internal/board/win.go
//
// Win detection over a set of marked indices.
// Checks rows 0–4, then columns 0–4, then the two diagonals, in that
// fixed order; the first complete line wins. Pure function over a fixed
// candidate set of 12 lines.

package board

// winLines enumerates every winning line in check order:
// 5 rows, 5 columns, main diagonal, anti-diagonal.
var winLines = buildWinLines()

func buildWinLines() []WinResult {
	lines := make([]WinResult, 0, 2*Size+2)
	for r := 0; r < Size; r++ {
		idx := make([]int, Size)
		for c := 0; c < Size; c++ {
			idx[c] = r*Size + c
		}
		lines = append(lines, WinResult{Type: WinRow, Indices: idx})
	}
	for c := 0; c < Size; c++ {
		idx := make([]int, Size)
		for r := 0; r < Size; r++ {
			idx[r] = r*Size + c
		}
		lines = append(lines, WinResult{Type: WinColumn, Indices: idx})
	}
	lines = append(lines,
		WinResult{Type: WinDiagonal, Indices: []int{0, 6, 12, 18, 24}},
		WinResult{Type: WinDiagonal, Indices: []int{4, 8, 12, 16, 20}},
	)
	return lines
}

// CheckWin reports the first completed line in the marked set, or nil
// when no row, column, or diagonal is fully marked.
func CheckWin(marked map[int]struct{}) *WinResult {
	for i := range winLines {
		if allMarked(marked, winLines[i].Indices) {
			// Copy so callers cannot mutate the shared line table.
			out := WinResult{Type: winLines[i].Type, Indices: append([]int(nil), winLines[i].Indices...)}
			return &out
		}
	}
	return nil
}

func allMarked(marked map[int]struct{}, indices []int) bool {
	for _, i := range indices {
		if _, ok := marked[i]; !ok {
			return false
		}
	}
	return true
}

package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-drift/internal/core"
)

const (
	particleRune = '█'
	hudHeight    = 2
)

// Render draws the grid inside a frame, centred, with a status line above.
// Cells are two characters wide when the screen allows it so particles look
// square in a terminal.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()
	if s.grid == nil {
		return
	}

	rows, columns := s.grid.Rows(), s.grid.Columns()

	cellW := 2
	if columns*2+2 > dst.Width() {
		cellW = 1
	}
	boardW := columns*cellW + 2
	boardH := rows + 2

	if boardW > dst.Width() || boardH+hudHeight > dst.Height() {
		s.renderTooSmall(dst, boardW, boardH+hudHeight)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + (dst.Height()-hudHeight-boardH)/2

	s.renderHUD(dst)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorAmber)

	cell := core.Cell{Rune: particleRune, Color: core.ColorSand}
	s.grid.Each(func(row, col int) {
		x := boardX + 1 + col*cellW
		y := boardY + 1 + row
		for i := 0; i < cellW; i++ {
			dst.SetCell(x+i, y, cell)
		}
	})
}

func (s *Simulation) renderHUD(dst *core.Screen) {
	st := s.State()
	status := fmt.Sprintf("tick %d  particles %d  tilt %s  %s", st.Tick, st.Count, st.Orientation, st.Policy)
	dst.DrawTextCentered(0, status, core.ColorCyan)

	var flags string
	switch {
	case st.Paused:
		flags = "PAUSED"
	case st.Sweeping:
		flags = "autopilot"
	}
	if flags != "" {
		dst.DrawTextCentered(1, flags, core.ColorRed)
	}
}

func (s *Simulation) renderTooSmall(dst *core.Screen, needW, needH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("need %dx%d", needW, needH), core.ColorGray)
}

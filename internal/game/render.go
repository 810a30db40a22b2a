package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Board layout: a one-line HUD above a boxed playfield. Each grid cell is
// two characters wide so the board looks square in a terminal.
const (
	cellWidth     = 2
	hudHeight     = 1
	minBoardWidth = 34
)

var headGlyphs = map[snake.Direction]rune{
	snake.DirUp:    '▲',
	snake.DirDown:  '▼',
	snake.DirLeft:  '◀',
	snake.DirRight: '▶',
}

var statusColors = map[Status]core.Color{
	StatusNotStarted: core.ColorCyan,
	StatusRunning:    core.ColorGreen,
	StatusPaused:     core.ColorYellow,
	StatusOver:       core.ColorRed,
}

// BoardSize returns the screen size Render needs for a grid.
func BoardSize(gridSize int) (width, height int) {
	width = gridSize*cellWidth + 2
	if width < minBoardWidth {
		width = minBoardWidth
	}
	return width, gridSize + 2 + hudHeight
}

// CellOrigin returns the screen position of the left character of a grid cell.
func CellOrigin(p core.Point) (x, y int) {
	return 1 + p.X*cellWidth, hudHeight + 1 + p.Y
}

// Notice returns the default overlay text for the snapshot's status.
func (s Snapshot) Notice() string {
	switch s.Status {
	case StatusNotStarted:
		return "PRESS ENTER TO START"
	case StatusPaused:
		return "PAUSED"
	case StatusOver:
		return "GAME OVER"
	default:
		return ""
	}
}

// Render clears screen and draws the board. A non-empty notice is centered
// over the playfield.
func (s Snapshot) Render(screen *core.Screen, notice string) {
	screen.Clear()

	screen.DrawText(0, 0, fmt.Sprintf("SCORE %d  BEST %d", s.Score, s.BestScore), core.ColorBrightWhite)
	label := strings.ToUpper(strings.ReplaceAll(s.Status.String(), "_", " "))
	screen.DrawText(screen.Width()-len(label), 0, label, statusColors[s.Status])

	box := core.NewRect(0, hudHeight, s.GridSize*cellWidth+2, s.GridSize+2)
	screen.DrawBox(box, core.ColorGray)

	for y := 0; y < s.GridSize; y++ {
		for x := 0; x < s.GridSize; x++ {
			cx, cy := CellOrigin(core.Point{X: x, Y: y})
			screen.SetColored(cx, cy, '·', core.ColorGray)
		}
	}

	fx, fy := CellOrigin(s.Food)
	screen.SetColored(fx, fy, '●', core.ColorBrightRed)

	for i := len(s.Body) - 1; i > 0; i-- {
		x, y := CellOrigin(s.Body[i])
		screen.SetColored(x, y, '■', core.ColorGreen)
	}
	if len(s.Body) > 0 {
		headColor := core.ColorBrightGreen
		if s.Status == StatusOver {
			headColor = core.ColorBrightRed
		}
		x, y := CellOrigin(s.Head())
		screen.SetColored(x, y, headGlyphs[s.Direction], headColor)
	}

	if notice != "" {
		screen.DrawTextCentered(box, box.Y+box.H/2, " "+notice+" ", core.ColorBrightYellow)
	}
}

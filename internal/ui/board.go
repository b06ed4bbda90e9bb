// Package ui renders a game in the terminal with tview and turns mouse and
// key events into column choices for the game controller.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/game"
)

const (
	cellWidth = 3
	// one preview row above the grid
	boardHeight = domain.Rows + 1
	boardWidth  = domain.Columns * cellWidth

	// GameOverPause mirrors the pause after a finished game before a new
	// one may be started.
	GameOverPause = 3 * time.Second
)

var (
	boardColor  = tcell.ColorBlue
	holeColor   = tcell.ColorBlack
	playerColor = tcell.ColorRed
	aiColor     = tcell.ColorYellow
	winColor    = tcell.ColorGreen
)

type BoardUI struct {
	Box        *tview.Box
	controller *game.Controller
	app        *tview.Application
	status     *tview.TextView

	state       game.State
	hoverCol    int
	lockedUntil time.Time
	now         func() time.Time
}

// NewBoard builds the board widget. app and status may be nil in tests.
func NewBoard(app *tview.Application, controller *game.Controller, status *tview.TextView) *BoardUI {
	b := &BoardUI{
		Box:        tview.NewBox(),
		controller: controller,
		app:        app,
		status:     status,
		hoverCol:   domain.Columns / 2,
		now:        time.Now,
	}
	b.Box.SetDrawFunc(b.draw)
	b.Box.SetInputCapture(b.handleKey)
	b.Box.SetMouseCapture(b.handleMouse)
	b.apply(controller.Start())
	return b
}

// ColumnAt maps a screen x coordinate to a board column, or -1.
func (b *BoardUI) ColumnAt(x int) int {
	boxX, _, _, _ := b.Box.GetInnerRect()
	offset := x - boxX
	if offset < 0 || offset >= boardWidth {
		return -1
	}
	return offset / cellWidth
}

// Hover moves the floating preview piece. It never reaches the controller.
func (b *BoardUI) Hover(column int) {
	if column >= 0 && column < domain.Columns {
		b.hoverCol = column
	}
}

func (b *BoardUI) HoverColumn() int {
	return b.hoverCol
}

// Drop submits a move attempt. Invalid attempts are ignored.
func (b *BoardUI) Drop(column int) {
	if b.state.Result != domain.InProgress {
		return
	}
	state, err := b.controller.SubmitMove(column)
	if err != nil {
		if !game.IsRejection(err) {
			log.Error().Str("component", "ui").Err(err).Msg("Move failed")
		}
		return
	}
	b.apply(state)
}

// Reset starts a new game once the post game pause has elapsed.
func (b *BoardUI) Reset() bool {
	if b.state.Result != domain.InProgress && b.now().Before(b.lockedUntil) {
		return false
	}
	b.apply(b.controller.Reset())
	return true
}

func (b *BoardUI) State() game.State {
	return b.state
}

func (b *BoardUI) apply(state game.State) {
	finishedNow := b.state.Result == domain.InProgress && state.Result != domain.InProgress
	b.state = state
	if finishedNow {
		b.lockedUntil = b.now().Add(GameOverPause)
	}
	b.refreshStatus()
}

func (b *BoardUI) refreshStatus() {
	if b.status == nil {
		return
	}
	help := "←/→ or mouse to aim, Enter/click/1-7 to drop, r reset, q quit"
	b.status.SetText(b.state.Label + "\n" + help)
}

func (b *BoardUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		b.Hover(b.hoverCol - 1)
	case tcell.KeyRight:
		b.Hover(b.hoverCol + 1)
	case tcell.KeyEnter:
		b.Drop(b.hoverCol)
	case tcell.KeyEscape:
		b.quit()
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r >= '1' && r <= '0'+domain.Columns:
			b.Hover(int(r - '1'))
			b.Drop(int(r - '1'))
		case r == 'r':
			b.Reset()
		case r == 'q':
			b.quit()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (b *BoardUI) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	x, y := event.Position()
	if !b.Box.InRect(x, y) {
		return action, event
	}
	column := b.ColumnAt(x)
	switch action {
	case tview.MouseMove:
		b.Hover(column)
		return action, nil
	case tview.MouseLeftClick:
		if column >= 0 {
			b.Hover(column)
			b.Drop(column)
		}
		return action, nil
	}
	return action, event
}

func (b *BoardUI) quit() {
	if b.app != nil {
		b.app.Stop()
	}
}

func pieceColor(piece domain.Piece) tcell.Color {
	if piece == domain.AIPiece {
		return aiColor
	}
	return playerColor
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	winning := make(map[domain.Position]bool, len(b.state.WinningCells))
	for _, p := range b.state.WinningCells {
		winning[p] = true
	}

	// preview row
	if b.state.Result == domain.InProgress {
		style := tcell.StyleDefault.Foreground(pieceColor(b.state.Turn))
		screen.SetContent(x+b.hoverCol*cellWidth+1, y, '●', nil, style)
	}

	for r := domain.Rows - 1; r >= 0; r-- {
		screenY := y + domain.Rows - r
		for c := 0; c < domain.Columns; c++ {
			cellX := x + c*cellWidth
			bg := tcell.StyleDefault.Background(boardColor)
			for i := 0; i < cellWidth; i++ {
				screen.SetContent(cellX+i, screenY, ' ', nil, bg)
			}

			piece := b.state.Board.At(r, c)
			glyph, fg := '○', holeColor
			if piece != domain.Empty {
				glyph, fg = '●', pieceColor(piece)
			}
			if winning[domain.Position{Row: r, Column: c}] {
				bg = bg.Background(winColor)
			}
			screen.SetContent(cellX+1, screenY, glyph, nil, bg.Foreground(fg))
		}
	}

	return x, y, boardWidth, boardHeight
}

// Run builds the application around a controller and blocks until quit.
func Run(controller *game.Controller) error {
	app := tview.NewApplication()
	status := tview.NewTextView().SetTextAlign(tview.AlignCenter)
	board := NewBoard(app, controller, status)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(board.Box, boardWidth, 0, true).
			AddItem(nil, 0, 1, false), boardHeight, 0, true).
		AddItem(status, 2, 0, false)

	app.EnableMouse(true)
	return app.SetRoot(layout, true).SetFocus(board.Box).Run()
}

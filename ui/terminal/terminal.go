// Package terminal is a game.Frontend drawn with tcell. Every grid cell is two
// columns wide so the board keeps a square aspect.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"snake-battle/game"
	"snake-battle/game/types"
	"snake-battle/ui/hud"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHuman  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleAI     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// fadeAfter is the segment index from which bodies are drawn dimmed.
const fadeAfter = 20

type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// New takes over the controlling terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an initialised screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	screen.HideCursor()
	go t.pump()
	return t
}

// pump moves blocking PollEvent calls off the game loop.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) Poll() []game.Intent {
	var intents []game.Intent
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if in, ok := intentFor(ev); ok {
					intents = append(intents, in)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return intents
		}
	}
}

func intentFor(ev *tcell.EventKey) (game.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.MoveUp, true
	case tcell.KeyDown:
		return game.MoveDown, true
	case tcell.KeyLeft:
		return game.MoveLeft, true
	case tcell.KeyRight:
		return game.MoveRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 's', 'S':
			return game.Start, true
		case 'p', 'P':
			return game.TogglePause, true
		case 'r', 'R':
			return game.Restart, true
		case 'q', 'Q':
			return game.Quit, true
		}
	}
	return 0, false
}

func (t *Terminal) Present(snap game.Snapshot) {
	t.screen.Clear()
	w, h := 2*snap.Grid.Width, snap.Grid.Height
	// board origin leaves one row for the status line and one for the border
	ox, oy := 1, 2

	t.box(ox-1, oy-1, w+1, h+1)

	if snap.State == game.NotStarted {
		t.centered(oy+h/3, w, ox, hud.Title, styleTitle)
		for i, line := range hud.StartLines {
			t.centered(oy+h/2+2*i, w, ox, line, styleText)
		}
		t.screen.Show()
		return
	}

	t.status(snap)
	for _, c := range hud.PathDots(snap) {
		t.cell(ox, oy, c, '·', ' ', stylePath)
	}
	t.body(ox, oy, snap.Human, styleHuman)
	t.body(ox, oy, snap.AI, styleAI)
	t.cell(ox, oy, snap.Food, '●', ' ', styleFood)

	switch snap.State {
	case game.Paused:
		t.centered(oy+h/2-1, w, ox, hud.PausedTitle, styleTitle)
		t.centered(oy+h/2+1, w, ox, hud.PausedHint, styleText)
	case game.Ended:
		t.centered(oy+h/2-1, w, ox, hud.Banner(snap.Winner), styleTitle)
		t.centered(oy+h/2+1, w, ox, hud.RestartHint, styleText)
	}
	t.screen.Show()
}

func (t *Terminal) status(snap game.Snapshot) {
	x := 0
	x = t.text(x, 0, hud.Score(snap.Human), scoreStyle(styleHuman, snap.Human.ScorePulse)) + 2
	x = t.text(x, 0, hud.Score(snap.AI), scoreStyle(styleAI, snap.AI.ScorePulse)) + 4
	x = t.text(x, 0, hud.Games(snap.Stats), styleText) + 2
	t.text(x, 0, hud.Success(snap.Stats), styleText)
}

// scoreStyle flashes a score while its pulse runs.
func scoreStyle(base tcell.Style, pulse int) tcell.Style {
	if pulse > 0 && pulse%2 == 0 {
		return base.Reverse(true)
	}
	return base.Bold(true)
}

func (t *Terminal) body(ox, oy int, a game.ActorView, style tcell.Style) {
	for i, c := range a.Body {
		s := style
		if i >= fadeAfter || !a.Alive {
			s = styleDim
		}
		if i == 0 {
			t.cell(ox, oy, c, '█', '█', s.Bold(true))
			continue
		}
		t.cell(ox, oy, c, '▓', '▓', s)
	}
}

func (t *Terminal) cell(ox, oy int, c types.Cell, left, right rune, style tcell.Style) {
	t.screen.SetContent(ox+2*c.X, oy+c.Y, left, nil, style)
	t.screen.SetContent(ox+2*c.X+1, oy+c.Y, right, nil, style)
}

func (t *Terminal) box(x, y, w, h int) {
	for i := x + 1; i < x+w; i++ {
		t.screen.SetContent(i, y, '─', nil, styleBorder)
		t.screen.SetContent(i, y+h, '─', nil, styleBorder)
	}
	for j := y + 1; j < y+h; j++ {
		t.screen.SetContent(x, j, '│', nil, styleBorder)
		t.screen.SetContent(x+w, j, '│', nil, styleBorder)
	}
	t.screen.SetContent(x, y, '┌', nil, styleBorder)
	t.screen.SetContent(x+w, y, '┐', nil, styleBorder)
	t.screen.SetContent(x, y+h, '└', nil, styleBorder)
	t.screen.SetContent(x+w, y+h, '┘', nil, styleBorder)
}

// text draws s at (x, y) and returns the column after it.
func (t *Terminal) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (t *Terminal) centered(y, width, ox int, s string, style tcell.Style) {
	t.text(ox+(width-len([]rune(s)))/2, y, s, style)
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

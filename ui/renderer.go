package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-battle/game"
	"snake-battle/game/types"
	"snake-battle/ui/hud"
)

const (
	fontSize      = 24
	titleFontSize = 48
	lineHeight    = 30
	padding       = 10
)

var (
	neonCyan  = rl.Color{R: 0, G: 255, B: 255, A: 255}
	neonPink  = rl.Color{R: 255, G: 0, B: 255, A: 255}
	humanTint = rl.Color{R: 0, G: 0, B: 255, A: 255}
	aiTint    = rl.Color{R: 0, G: 255, B: 0, A: 255}
)

// Renderer is the window frontend. Every call must come from the goroutine
// that opened the window.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	started      time.Time
	endedFrames  int
}

// Open creates a window sized to the grid.
func Open(grid types.Grid, cellSize int) *Renderer {
	r := &Renderer{
		cellSize:     int32(cellSize),
		screenWidth:  int32(grid.Width * cellSize),
		screenHeight: int32(grid.Height * cellSize),
		started:      time.Now(),
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(r.screenWidth, r.screenHeight, "Snake AI vs Player (A* Enhanced)")
	return r
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

// Poll drains the key queue so presses between frames are not lost.
func (r *Renderer) Poll() []game.Intent {
	if rl.WindowShouldClose() {
		return []game.Intent{game.Quit}
	}
	var intents []game.Intent
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if in, ok := intentFor(key); ok {
			intents = append(intents, in)
		}
	}
	return intents
}

func intentFor(key int32) (game.Intent, bool) {
	switch key {
	case rl.KeyUp:
		return game.MoveUp, true
	case rl.KeyDown:
		return game.MoveDown, true
	case rl.KeyLeft:
		return game.MoveLeft, true
	case rl.KeyRight:
		return game.MoveRight, true
	case rl.KeyS:
		return game.Start, true
	case rl.KeyP:
		return game.TogglePause, true
	case rl.KeyR:
		return game.Restart, true
	case rl.KeyQ:
		return game.Quit, true
	}
	return 0, false
}

func (r *Renderer) Present(snap game.Snapshot) {
	elapsed := time.Since(r.started)

	rl.BeginDrawing()
	r.drawBackground(elapsed)

	switch snap.State {
	case game.NotStarted:
		r.drawStartScreen()
	case game.Running, game.Paused, game.Ended:
		r.drawBoard(snap, elapsed)
	}

	switch snap.State {
	case game.Paused:
		rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, 150.0/255))
		r.centered(hud.PausedTitle, r.screenHeight/2-50, titleFontSize, neonPink)
		r.centered(hud.PausedHint, r.screenHeight/2+50, fontSize, rl.White)
	case game.Ended:
		r.endedFrames++
		alpha := float32(hud.OverlayAlpha(r.endedFrames)) / 255
		rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, alpha))
		r.centered(hud.Banner(snap.Winner), r.screenHeight/2-50, titleFontSize, neonCyan)
		r.centered(hud.RestartHint, r.screenHeight/2+50, fontSize, rl.White)
	}
	if snap.State != game.Ended {
		r.endedFrames = 0
	}
	rl.EndDrawing()
}

func (r *Renderer) drawBackground(elapsed time.Duration) {
	top, bottom := hud.Backdrop(elapsed)
	rl.DrawRectangleGradientV(0, 0, r.screenWidth, r.screenHeight,
		rl.Color{R: top[0], G: top[1], B: top[2], A: 255},
		rl.Color{R: bottom[0], G: bottom[1], B: bottom[2], A: 255})
}

func (r *Renderer) drawStartScreen() {
	r.centered(hud.Title, r.screenHeight/3, titleFontSize, neonCyan)
	for i, line := range hud.StartLines {
		r.centered(line, r.screenHeight/2+int32(i)*50, fontSize, rl.White)
	}
}

func (r *Renderer) drawBoard(snap game.Snapshot, elapsed time.Duration) {
	grid := rl.Fade(neonCyan, 100.0/255)
	for x := int32(0); x < r.screenWidth; x += r.cellSize {
		rl.DrawLineEx(rl.Vector2{X: float32(x), Y: 0}, rl.Vector2{X: float32(x), Y: float32(r.screenHeight)}, 2, grid)
	}
	for y := int32(0); y < r.screenHeight; y += r.cellSize {
		rl.DrawLineEx(rl.Vector2{X: 0, Y: float32(y)}, rl.Vector2{X: float32(r.screenWidth), Y: float32(y)}, 2, grid)
	}

	r.drawSnake(snap.Human, humanTint)
	r.drawSnake(snap.AI, aiTint)

	// food pulses around its cell centre
	size := float32(r.cellSize) * float32(hud.FoodScale(elapsed))
	cx, cy := r.centre(snap.Food)
	rl.DrawCircle(cx, cy, size/2, rl.Red)

	for _, c := range hud.PathDots(snap) {
		x, y := r.centre(c)
		rl.DrawCircle(x, y, float32(r.cellSize/4), rl.Fade(rl.Yellow, 150.0/255))
	}

	hb := int32(hud.Bounce(snap.Human.ScorePulse))
	ab := int32(hud.Bounce(snap.AI.ScorePulse))
	rl.DrawText(hud.Score(snap.Human), padding, padding+hb, fontSize, neonCyan)
	rl.DrawText(hud.Score(snap.AI), padding, padding+lineHeight+ab, fontSize, neonPink)

	statsX := r.screenWidth - 200
	rl.DrawText(hud.Games(snap.Stats), statsX, padding, fontSize, rl.White)
	rl.DrawText(hud.Success(snap.Stats), statsX, padding+lineHeight, fontSize, rl.White)
}

func (r *Renderer) drawSnake(a game.ActorView, tint rl.Color) {
	for i, c := range a.Body {
		x, y := c.X*int(r.cellSize), c.Y*int(r.cellSize)
		color := tint
		color.A = hud.Fade(i)
		rl.DrawRectangle(int32(x), int32(y), r.cellSize, r.cellSize, color)
		rl.DrawRectangleLines(int32(x), int32(y), r.cellSize, r.cellSize, rl.White)
	}
}

func (r *Renderer) centre(c types.Cell) (int32, int32) {
	return int32(c.X)*r.cellSize + r.cellSize/2, int32(c.Y)*r.cellSize + r.cellSize/2
}

func (r *Renderer) centered(text string, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (r.screenWidth-w)/2, y, size, color)
}

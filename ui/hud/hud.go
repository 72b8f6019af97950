// Package hud holds the text and animation curves shared by every frontend.
package hud

import (
	"fmt"
	"math"
	"time"

	"snake-battle/game"
	"snake-battle/game/manager"
	"snake-battle/game/types"
)

const Title = "Neon Snake Battle"

var StartLines = []string{
	"Press S to Start",
	"Arrow Keys: Move | P: Pause | R: Restart",
	"Press Q to Exit",
}

const (
	PausedTitle = "Paused"
	PausedHint  = "Press P to Resume"
	RestartHint = "Press R to Restart"
)

func Banner(w game.Winner) string {
	switch w {
	case game.HumanWins:
		return "Player Wins!"
	case game.AIWins:
		return "AI Wins!"
	case game.Tie:
		return "It's a Tie!"
	default:
		return ""
	}
}

func Score(a game.ActorView) string {
	return fmt.Sprintf("%s: %d", a.Name, a.Score)
}

func Games(s manager.Stats) string {
	return fmt.Sprintf("Games: %d", s.MatchesPlayed)
}

func Success(s manager.Stats) string {
	return fmt.Sprintf("AI Success: %.1f%%", s.AIWinRate*100)
}

// Bounce is the vertical score offset in pixels for a pulse counter.
func Bounce(pulse int) float64 {
	if pulse <= 0 {
		return 0
	}
	return 10 * math.Sin(float64(pulse))
}

// Fade is the opacity of body segment i, head first.
func Fade(i int) uint8 {
	return uint8(max(255-10*i, 50))
}

// FoodScale pulses the food between 0.9 and 1.1 of a cell.
func FoodScale(t time.Duration) float64 {
	return 1 + 0.1*math.Sin(t.Seconds()*5)
}

// Backdrop returns the top and bottom colours of the slowly shifting
// background gradient.
func Backdrop(t time.Duration) (top, bottom [3]uint8) {
	s := t.Seconds() / 10
	top = [3]uint8{uint8(30 + 20*math.Sin(s)), 0, uint8(60 + 20*math.Cos(s))}
	bottom = [3]uint8{uint8(60 + 20*math.Cos(s)), 0, uint8(120 + 20*math.Sin(s))}
	return top, bottom
}

// OverlayAlpha darkens the game-over screen over the first frames.
func OverlayAlpha(frames int) uint8 {
	return uint8(min(10*frames, 200))
}

// PathDots are the cells of the AI route worth highlighting: everything past
// the head, and nothing once the AI is dead.
func PathDots(snap game.Snapshot) []types.Cell {
	if !snap.AI.Alive || len(snap.AI.Path) < 2 {
		return nil
	}
	return snap.AI.Path[1:]
}

package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyC) && g.controls != nil {
		g.controls.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.showPerf = !g.showPerf
	}

	if rl.IsKeyPressed(rl.KeyL) {
		g.logSolutionState()
		g.logPerfStats()
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.reset()
	}
}

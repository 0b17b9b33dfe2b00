// Package render draws engine snapshots onto a tcell screen
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/event"
	"github.com/lixenwraith/vi-invaders/parameter"
)

// ScreenRenderer draws snapshots scaled to the current terminal size
// Must be used from the goroutine that owns the screen
type ScreenRenderer struct {
	screen        tcell.Screen
	explosionLife time.Duration
	paused        bool

	base tcell.Style
}

// NewScreenRenderer creates a renderer; explosionLife drives the particle color fade
func NewScreenRenderer(screen tcell.Screen, explosionLife time.Duration) *ScreenRenderer {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUD)
	screen.SetStyle(base)
	return &ScreenRenderer{
		screen:        screen,
		explosionLife: explosionLife,
		base:          base,
	}
}

// SetPaused toggles the pause overlay
func (r *ScreenRenderer) SetPaused(paused bool) {
	r.paused = paused
}

// Render draws one frame and flushes it to the terminal
func (r *ScreenRenderer) Render(s *engine.Snapshot) {
	r.screen.Clear()
	width, height := r.screen.Size()

	if width < parameter.MinTerminalWidth || height < parameter.MinTerminalHeight {
		drawCentered(r.screen, width, height/2, fmt.Sprintf("terminal too small (%dx%d)", width, height), r.base)
		r.screen.Show()
		return
	}

	r.drawHUD(s, width)

	v := NewViewport(0, parameter.HUDRows, width, height-parameter.HUDRows, s.Width, s.Height)
	if s.FX.ShakeTimer > 0 && s.FX.ShakeIntensity > 0 {
		// Alternate sides each frame
		dir := 1.0
		if s.Frame%2 == 1 {
			dir = -1
		}
		v.Shift(dir*s.FX.ShakeIntensity, 0)
	}

	bg := RgbBackground
	if s.FX.Flash > 0 {
		bg = Blend(RgbBackground, RgbFlash, s.FX.Flash*0.5)
	}
	r.fillPlayfield(&v, bg)

	if s.Phase != engine.PhaseStart {
		r.drawBunkers(s, &v, bg)
		r.drawFleet(s, &v, bg)
		r.drawBonus(s, &v, bg)
		r.drawPlayer(s, &v, bg)
		r.drawBullets(s, &v, bg)
		r.drawExplosions(s, &v, bg)
	}

	switch s.Phase {
	case engine.PhaseStart:
		r.drawStartOverlay(s, width, height)
	case engine.PhaseLevelComplete:
		r.drawLevelCompleteOverlay(s, width, height)
	case engine.PhaseGameOver:
		r.drawGameOverOverlay(s, width, height)
	}

	if r.paused {
		drawCentered(r.screen, width, height/2+3, " PAUSED ", r.base.Foreground(tcell.ColorBlack).Background(RgbHighlight))
	}

	r.screen.Show()
}

// ===== HUD =====

func (r *ScreenRenderer) drawHUD(s *engine.Snapshot, width int) {
	style := r.base.Foreground(RgbHUD)
	dim := r.base.Foreground(RgbHUDDim)

	x := drawText(r.screen, 1, 0, width, fmt.Sprintf("SCORE %06d", s.Score), style)
	x = drawText(r.screen, x+2, 0, width, fmt.Sprintf("HI %06d", s.HighScore), dim)
	x = drawText(r.screen, x+2, 0, width, fmt.Sprintf("LEVEL %d", s.Level), style)

	lives := s.Lives
	if lives < 0 {
		lives = 0
	}
	x = drawText(r.screen, x+2, 0, width, "LIVES ", style)
	drawText(r.screen, x, 0, width, strings.Repeat("♥", lives), r.base.Foreground(RgbPlayerHit))

	drawRight(r.screen, width-1, 0, strings.ToUpper(s.Difficulty), dim)
}

// ===== ENTITIES =====

func (r *ScreenRenderer) fillPlayfield(v *Viewport, bg tcell.Color) {
	style := r.base.Background(bg)
	for y := v.OriginY; y < v.OriginY+v.Rows; y++ {
		for x := v.OriginX; x < v.OriginX+v.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// fillSpan draws ch over every cell a playfield rect covers, clipped to the viewport
func (r *ScreenRenderer) fillSpan(v *Viewport, x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if v.Contains(x, y) {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

func (r *ScreenRenderer) drawBunkers(s *engine.Snapshot, v *Viewport, bg tcell.Color) {
	style := r.base.Background(bg).Foreground(RgbBunker)
	for i := range s.Bunkers {
		b := &s.Bunkers[i]
		for row := 0; row < b.Rows; row++ {
			for col := 0; col < b.Cols; col++ {
				if !b.Solid(row, col) {
					continue
				}
				x, y := v.Point(b.CellRect(row, col).Center())
				if v.Contains(x, y) {
					r.screen.SetContent(x, y, BunkerGlyph, nil, style)
				}
			}
		}
	}
}

func (r *ScreenRenderer) drawFleet(s *engine.Snapshot, v *Viewport, bg tcell.Color) {
	glyph := EnemyGlyphs[s.FleetFrame&1]
	for i := range s.Enemies {
		u := &s.Enemies[i]
		if !u.Alive {
			continue
		}
		x0, y0, x1, y1 := v.Span(u.Rect())
		r.fillSpan(v, x0, y0, x1, y1, glyph, r.base.Background(bg).Foreground(rowColor(u.Row)))
	}
}

func (r *ScreenRenderer) drawBonus(s *engine.Snapshot, v *Viewport, bg tcell.Color) {
	if !s.HasBonus {
		return
	}
	x0, y0, x1, y1 := v.Span(s.Bonus.Rect())
	r.fillSpan(v, x0, y0, x1, y1, BonusGlyph, r.base.Background(bg).Foreground(RgbBonus))
}

func (r *ScreenRenderer) drawPlayer(s *engine.Snapshot, v *Viewport, bg tcell.Color) {
	color := RgbPlayer
	if s.Player.Hit && (s.Frame/4)%2 == 0 {
		color = RgbPlayerHit
	}
	x0, y0, x1, y1 := v.Span(s.Player.Rect())
	r.fillSpan(v, x0, y0, x1, y1, PlayerGlyph, r.base.Background(bg).Foreground(color))
}

func (r *ScreenRenderer) drawBullets(s *engine.Snapshot, v *Viewport, bg tcell.Color) {
	for i := range s.Bullets {
		b := &s.Bullets[i]
		color := RgbPlayerBullet
		if b.Owner == component.OwnerEnemy {
			color = RgbEnemyBullet
		}
		x, y := v.Point(b.Rect().Center())
		if v.Contains(x, y) {
			r.screen.SetContent(x, y, BulletGlyph, nil, r.base.Background(bg).Foreground(color))
		}
	}
}

func (r *ScreenRenderer) drawExplosions(s *engine.Snapshot, v *Viewport, bg tcell.Color) {
	for i := range s.Explosions {
		e := &s.Explosions[i]
		t := 1.0
		if r.explosionLife > 0 {
			t = float64(e.Age) / float64(r.explosionLife)
		}
		// Cools first, then sinks into the background near the end of its life
		color := Fade(Blend(RgbExplosionHot, RgbExplosionCold, t), t*t)
		style := r.base.Background(bg).Foreground(color)

		for j := range e.Particles {
			p := &e.Particles[j]
			x, y := v.Point(e.X+p.X, e.Y+p.Y)
			if v.Contains(x, y) {
				r.screen.SetContent(x, y, ParticleRune, nil, style)
			}
		}

		if e.Bonus > 0 {
			label := fmt.Sprintf("%d", e.Bonus)
			x, y := v.Point(e.X, e.Y)
			drawText(r.screen, x-len(label)/2, y, v.OriginX+v.Cols, label, r.base.Background(bg).Foreground(RgbBonus))
		}
	}
}

// ===== OVERLAYS =====

func (r *ScreenRenderer) drawStartOverlay(s *engine.Snapshot, width, height int) {
	title := r.base.Foreground(RgbPlayer).Bold(true)
	dim := r.base.Foreground(RgbHUDDim)

	y := height / 3
	drawCentered(r.screen, width, y, "V I - I N V A D E R S", title)
	drawCentered(r.screen, width, y+2, "DIFFICULTY", dim)

	parts := make([]string, len(s.Difficulties))
	for i, name := range s.Difficulties {
		if i == s.Selected {
			parts[i] = "[" + strings.ToUpper(name) + "]"
		} else {
			parts[i] = " " + strings.ToUpper(name) + " "
		}
	}
	drawCentered(r.screen, width, y+3, strings.Join(parts, "  "), r.base.Foreground(RgbHighlight))

	drawCentered(r.screen, width, y+5, "←/→ select   ENTER start   SPACE fire   P pause   Q quit", dim)
	if s.HighScore > 0 {
		drawCentered(r.screen, width, y+7, fmt.Sprintf("HIGH SCORE %d", s.HighScore), dim)
	}
}

func (r *ScreenRenderer) drawLevelCompleteOverlay(s *engine.Snapshot, width, height int) {
	remaining := s.LevelCompleteDuration - s.PhaseTimer
	if remaining < 0 {
		remaining = 0
	}
	drawCentered(r.screen, width, height/2-1, fmt.Sprintf("LEVEL %d COMPLETE", s.Level), r.base.Foreground(RgbPlayer).Bold(true))
	drawCentered(r.screen, width, height/2+1, fmt.Sprintf("next level in %.1fs", remaining.Seconds()), r.base.Foreground(RgbHUDDim))
}

func (r *ScreenRenderer) drawGameOverOverlay(s *engine.Snapshot, width, height int) {
	reason := "no lives left"
	if s.GameOverReason == event.ReasonInvaded {
		reason = "the invaders landed"
	}
	drawCentered(r.screen, width, height/2-2, "GAME OVER", r.base.Foreground(RgbPlayerHit).Bold(true))
	drawCentered(r.screen, width, height/2, reason, r.base.Foreground(RgbHUDDim))
	drawCentered(r.screen, width, height/2+1, fmt.Sprintf("SCORE %d   HIGH %d   LEVEL %d", s.Score, s.HighScore, s.Level), r.base)
	drawCentered(r.screen, width, height/2+3, "ENTER to continue", r.base.Foreground(RgbHUDDim))
}

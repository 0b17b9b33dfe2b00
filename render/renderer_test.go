package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/event"
	"github.com/lixenwraith/vi-invaders/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

// rowText reads a screen row back as a string
func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func screenText(screen tcell.Screen, width, height int) string {
	var sb strings.Builder
	for y := 0; y < height; y++ {
		sb.WriteString(rowText(screen, y, width))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func countRune(screen tcell.Screen, width, height int, ch rune) int {
	n := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mainc, _, _, _ := screen.GetContent(x, y)
			if mainc == ch {
				n++
			}
		}
	}
	return n
}

func TestRenderStartScreen(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	w := engine.NewWorld(config.Default(), 1, nil, nil)
	r := NewScreenRenderer(screen, w.Config.Effects.ExplosionDuration)

	r.Render(w.Snapshot())
	text := screenText(screen, 80, 24)

	for _, want := range []string{"V I - I N V A D E R S", "[NORMAL]", "EASY", "HARD", "SCORE 000000"} {
		if !strings.Contains(text, want) {
			t.Errorf("start screen missing %q\n%s", want, text)
		}
	}
	if countRune(screen, 80, 24, EnemyGlyphs[0]) != 0 {
		t.Error("fleet drawn on the start screen")
	}
	t.Logf("✓ start screen with difficulty list")
}

func TestRenderPlaying(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	w := engine.NewWorld(config.Default(), 1, nil, nil)
	w.StartGame()
	w.AwardPoints(120)
	r := NewScreenRenderer(screen, w.Config.Effects.ExplosionDuration)

	r.Render(w.Snapshot())

	hud := rowText(screen, 0, 80)
	for _, want := range []string{"SCORE 000120", "HI 000120", "LEVEL 1", "LIVES ♥♥♥", "NORMAL"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if n := countRune(screen, 80, 24, EnemyGlyphs[0]); n == 0 {
		t.Error("no fleet glyphs")
	}
	if n := countRune(screen, 80, 24, PlayerGlyph); n == 0 {
		t.Error("no player glyph")
	}
	if n := countRune(screen, 80, 24, BunkerGlyph); n == 0 {
		t.Error("no bunker glyphs")
	}
	t.Logf("✓ HUD %q", strings.TrimSpace(hud))
}

func TestRenderDeadUnitsHidden(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	w := engine.NewWorld(config.Default(), 1, nil, nil)
	w.StartGame()
	for i := range w.Fleet.Units {
		w.Fleet.Units[i].Alive = false
	}
	w.Fleet.Alive = 0

	r := NewScreenRenderer(screen, w.Config.Effects.ExplosionDuration)
	r.Render(w.Snapshot())
	if n := countRune(screen, 80, 24, EnemyGlyphs[0]); n != 0 {
		t.Errorf("%d glyphs for a dead fleet", n)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	w := engine.NewWorld(config.Default(), 1, nil, nil)
	w.StartGame()
	w.EndGame(event.ReasonInvaded)

	r := NewScreenRenderer(screen, w.Config.Effects.ExplosionDuration)
	r.Render(w.Snapshot())
	text := screenText(screen, 80, 24)
	for _, want := range []string{"GAME OVER", "the invaders landed", "ENTER to continue"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestRenderPausedAndTooSmall(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	w := engine.NewWorld(config.Default(), 1, nil, nil)
	r := NewScreenRenderer(screen, w.Config.Effects.ExplosionDuration)

	r.SetPaused(true)
	r.Render(w.Snapshot())
	if !strings.Contains(screenText(screen, 80, 24), "PAUSED") {
		t.Error("pause overlay missing")
	}

	screen.SetSize(20, 8)
	r.Render(w.Snapshot())
	if !strings.Contains(screenText(screen, 20, 8), "too small") {
		t.Error("undersized terminal message missing")
	}
	t.Logf("✓ pause and size guard")
}

// particleColor renders one single-particle explosion of the given age and returns its foreground
func particleColor(t *testing.T, age time.Duration) tcell.Color {
	t.Helper()
	screen := newTestScreen(t, 80, 24)
	w := engine.NewWorld(config.Default(), 1, nil, nil)
	w.StartGame()
	w.Explosions = append(w.Explosions, component.Explosion{
		X: 400, Y: 300, Age: age,
		Particles: []component.Particle{{Size: 2}},
	})

	r := NewScreenRenderer(screen, w.Config.Effects.ExplosionDuration)
	r.Render(w.Snapshot())
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			mainc, _, style, _ := screen.GetContent(x, y)
			if mainc == ParticleRune {
				fg, _, _ := style.Decompose()
				return fg
			}
		}
	}
	t.Fatalf("no particle drawn at age %v", age)
	return tcell.ColorDefault
}

func TestRenderExplosionFades(t *testing.T) {
	life := config.Default().Effects.ExplosionDuration

	if got := particleColor(t, 0); got != RgbExplosionHot {
		t.Errorf("fresh particle = %v, want hot %v", got, RgbExplosionHot)
	}

	late := particleColor(t, life*9/10)
	br, bg, bb := RgbBackground.RGB()
	lr, lg, lb := late.RGB()
	cr, cg, cb := RgbExplosionCold.RGB()
	toBackground := absDiff(lr, br) + absDiff(lg, bg) + absDiff(lb, bb)
	coldToBackground := absDiff(cr, br) + absDiff(cg, bg) + absDiff(cb, bb)
	if toBackground >= coldToBackground {
		t.Errorf("late particle %v not faded toward background (dist %d, cold dist %d)", late, toBackground, coldToBackground)
	}
	t.Logf("✓ explosion fades: hot -> %v", late)
}

func TestFade(t *testing.T) {
	c := tcell.NewRGBColor(200, 40, 40)
	if Fade(c, 0) != c {
		t.Error("Fade(c, 0) changed the color")
	}
	if Fade(c, 1) != RgbBackground {
		t.Errorf("Fade(c, 1) = %v, want background", Fade(c, 1))
	}
}

func TestViewportMapping(t *testing.T) {
	v := NewViewport(0, 1, 80, 23, 800, 600)

	x, y := v.Point(0, 0)
	if x != 0 || y != 1 {
		t.Errorf("origin -> (%d,%d)", x, y)
	}
	x, y = v.Point(799, 599)
	if x != 79 || y != 23 {
		t.Errorf("far corner -> (%d,%d)", x, y)
	}

	x0, y0, x1, y1 := v.Span(vmath.Rect{X: 100, Y: 100, W: 1, H: 1})
	if x0 != x1 || y0 != y1 {
		t.Errorf("tiny rect spans (%d,%d)-(%d,%d), want one cell", x0, y0, x1, y1)
	}

	v.Shift(10, 0)
	if sx, _ := v.Point(0, 0); sx != 1 {
		t.Errorf("shifted origin x = %d, want 1", sx)
	}
	if v.Contains(80, 5) || v.Contains(0, 0) || !v.Contains(0, 1) {
		t.Error("Contains bounds wrong")
	}
}

func TestBlend(t *testing.T) {
	a := tcell.NewRGBColor(0, 0, 0)
	b := tcell.NewRGBColor(255, 255, 255)

	if Blend(a, b, 0) != a || Blend(a, b, 1) != b {
		t.Error("endpoints not preserved")
	}
	if Blend(a, b, -1) != a || Blend(a, b, 2) != b {
		t.Error("t not clamped")
	}
	mr, mg, mb := Blend(a, b, 0.5).RGB()
	if mr <= 0 || mr >= 255 || absDiff(mr, mg) > 1 || absDiff(mg, mb) > 1 {
		t.Errorf("midpoint = (%d,%d,%d)", mr, mg, mb)
	}
	t.Logf("✓ Lab midpoint gray %d", mr)
}

func absDiff(a, b int32) int32 {
	if a > b {
		return a - b
	}
	return b - a
}

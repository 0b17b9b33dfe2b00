package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbHUD        = tcell.NewRGBColor(255, 255, 255)
	RgbHUDDim     = tcell.NewRGBColor(140, 140, 160)
	RgbHighlight  = tcell.NewRGBColor(255, 165, 0) // Orange, selected difficulty

	RgbPlayer    = tcell.NewRGBColor(80, 220, 100)
	RgbPlayerHit = tcell.NewRGBColor(255, 80, 80)

	RgbPlayerBullet = tcell.NewRGBColor(255, 255, 160)
	RgbEnemyBullet  = tcell.NewRGBColor(255, 120, 60)

	RgbBunker = tcell.NewRGBColor(0, 200, 0)
	RgbBonus  = tcell.NewRGBColor(230, 60, 230)

	RgbExplosionHot  = tcell.NewRGBColor(255, 240, 120)
	RgbExplosionCold = tcell.NewRGBColor(180, 40, 20)

	RgbFlash = tcell.NewRGBColor(255, 255, 255)
)

// RowColors tints fleet rows top to bottom, wrapping for taller fleets
var RowColors = []tcell.Color{
	tcell.NewRGBColor(255, 80, 80),
	tcell.NewRGBColor(255, 165, 0),
	tcell.NewRGBColor(255, 255, 0),
	tcell.NewRGBColor(100, 200, 255),
	tcell.NewRGBColor(140, 190, 255),
}

// Unit sprites per animation frame, one cell wide
var (
	EnemyGlyphs  = [2]rune{'W', 'M'}
	PlayerGlyph  = '▲'
	BonusGlyph   = '◆'
	BulletGlyph  = '|'
	BunkerGlyph  = '█'
	ParticleRune = '*'
)

func rowColor(row int) tcell.Color {
	if row < 0 {
		row = 0
	}
	return RowColors[row%len(RowColors)]
}

package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-invaders/vmath"
)

// toColorful converts a tcell RGB color to colorful space
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes from toward to by t in [0, 1], perceptually in Lab space
func Blend(from, to tcell.Color, t float64) tcell.Color {
	t = vmath.Clamp(t, 0, 1)
	if t == 0 {
		return from
	}
	if t == 1 {
		return to
	}
	return fromColorful(toColorful(from).BlendLab(toColorful(to), t))
}

// Fade darkens c toward the background by t
func Fade(c tcell.Color, t float64) tcell.Color {
	return Blend(c, RgbBackground, t)
}

package component

import "time"

// ScreenFX carries decaying whole-screen feedback for the renderer
type ScreenFX struct {
	ShakeIntensity float64
	ShakeTimer     time.Duration
	Flash          float64 // 0..1
}

// Shake starts a shake, replacing any running one
func (s *ScreenFX) Shake(intensity float64, d time.Duration) {
	s.ShakeIntensity = intensity
	s.ShakeTimer = d
}

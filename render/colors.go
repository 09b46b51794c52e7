package render

// Scene palette
var (
	// Background gradient stops, top to bottom
	RgbBackgroundTop    = RGB{31, 18, 11}
	RgbBackgroundMid    = RGB{17, 8, 4}
	RgbBackgroundBottom = RGB{8, 4, 3}

	RgbArenaRim   = RGB{85, 49, 31}
	RgbGrillBody  = RGB{42, 42, 42}
	RgbGrillGlow  = RGB{255, 151, 61}
	RgbPlayerBody = RGB{255, 138, 61}
	RgbPlayerNose = RGBWhite

	RgbHUDText     = RGB{255, 224, 176}
	RgbMessageText = RGB{235, 200, 160}
	RgbOverlay     = RGBBlack
)

// Alpha levels
const (
	AlphaArenaRim  = 0.35
	AlphaHighlight = 0.25
	AlphaOverlay   = 0.55
)

// BackgroundGradient is the vertical sky-to-floor fade behind the arena
var BackgroundGradient = Gradient{
	{At: 0, Color: RgbBackgroundTop},
	{At: 0.6, Color: RgbBackgroundMid},
	{At: 1, Color: RgbBackgroundBottom},
}

// GradientStop is one color position in [0,1]
type GradientStop struct {
	At    float64
	Color RGB
}

// Gradient is an ordered list of stops
type Gradient []GradientStop

// Sample returns the color at t, clamped to the end stops
func (g Gradient) Sample(t float64) RGB {
	if len(g) == 0 {
		return RGBBlack
	}
	if t <= g[0].At {
		return g[0].Color
	}
	for i := 1; i < len(g); i++ {
		if t <= g[i].At {
			a, b := g[i-1], g[i]
			span := b.At - a.At
			if span <= 0 {
				return b.Color
			}
			return Lerp(a.Color, b.Color, (t-a.At)/span)
		}
	}
	return g[len(g)-1].Color
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cookie-jar/asset"
)

// RGB color definitions for the jar scene
var (
	RgbBackground    = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbJarInterior   = tcell.NewRGBColor(38, 32, 30)    // Warm dark glass
	RgbJarWall       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHazardLine    = tcell.NewRGBColor(200, 50, 50)   // Red dashed line
	RgbWarningBg     = tcell.NewRGBColor(110, 20, 20)   // Dark red flash band
	RgbTitle         = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPanelText     = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbScore         = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbHighScoreNone = tcell.NewRGBColor(100, 100, 100) // Dim gray for empty slots
	RgbGameOverBg    = tcell.NewRGBColor(0, 0, 0)       // Black box
	RgbGameOverText  = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbGlyphDark     = tcell.NewRGBColor(30, 20, 10)    // Glyph on light cookies
	RgbGlyphLight    = tcell.NewRGBColor(255, 245, 230) // Glyph on dark cookies
)

// TierColor converts a manifest color to a terminal color
func TierColor(c asset.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// GlyphColor picks a readable glyph color over a cookie of color c
func GlyphColor(c asset.RGB) tcell.Color {
	// Rec. 601 luma
	luma := 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
	if luma > 128*1000 {
		return RgbGlyphDark
	}
	return RgbGlyphLight
}

package render

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cookie-jar/asset"
	"github.com/lixenwraith/cookie-jar/core"
	"github.com/lixenwraith/cookie-jar/physics"
)

const (
	panelWidth = 22
	marginLeft = 1
	titleRows  = 1
	footerRows = 1
	minCols    = 8
	minRows    = 6
)

// Options describes the scene the renderer draws
type Options struct {
	Jar physics.Bounds
	// HazardLine is drawn as a dashed line across the jar
	HazardLine float64
	// OverlayLine is the lower edge of the warning flash band
	OverlayLine float64
	// Slots is the number of high-score rows shown
	Slots int
}

// layout maps jar units onto terminal cells; cells are about twice as tall as they are wide
type layout struct {
	ok          bool
	jarX, jarY  int
	cols, rows  int
	unitsPerCol float64
	unitsPerRow float64
	panelX      int
}

type tierStyle struct {
	fill  tcell.Style
	glyph tcell.Style
	rune  rune
}

// TerminalRenderer draws the jar, pieces and score panel on a tcell screen
// All methods are called from the loop goroutine except ColumnToJarX, which the input goroutine may call
type TerminalRenderer struct {
	screen tcell.Screen
	tiers  *asset.TierTable
	opts   Options

	// layoutMu guards layout writes and reads from outside the loop goroutine
	layoutMu sync.RWMutex
	layout   layout
	styles []tierStyle

	score      int
	highScores []int
}

// NewTerminalRenderer creates a renderer sized to the screen's current dimensions
func NewTerminalRenderer(screen tcell.Screen, tiers *asset.TierTable, opts Options) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		tiers:  tiers,
		opts:   opts,
	}
	r.Resize()
	return r
}

// PreloadJobs returns the work that must finish before the first frame
func (r *TerminalRenderer) PreloadJobs() []func() error {
	return []func() error{r.buildTierStyles}
}

// buildTierStyles resolves every tier's colors up front so drawing never looks up the manifest
func (r *TerminalRenderer) buildTierStyles() error {
	if r.tiers == nil || r.tiers.Count() == 0 {
		return fmt.Errorf("renderer: %w: no tiers", asset.ErrInvalidManifest)
	}
	styles := make([]tierStyle, r.tiers.Count())
	for i, t := range r.tiers.Tiers() {
		bg := TierColor(t.Color)
		styles[i] = tierStyle{
			fill:  tcell.StyleDefault.Background(bg).Foreground(bg),
			glyph: tcell.StyleDefault.Background(bg).Foreground(GlyphColor(t.Color)).Bold(true),
			rune:  t.Glyph,
		}
	}
	r.styles = styles
	return nil
}

// Resize recomputes the layout from the screen's current size
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	l := computeLayout(w, h, r.opts.Jar)
	r.layoutMu.Lock()
	r.layout = l
	r.layoutMu.Unlock()
}

func computeLayout(screenW, screenH int, jar physics.Bounds) layout {
	availCols := screenW - marginLeft - 2 - 1 - panelWidth
	availRows := screenH - titleRows - 1 - footerRows
	if availCols < minCols || availRows < minRows || jar.Width <= 0 || jar.Height <= 0 {
		return layout{}
	}

	perRow := math.Max(jar.Height/float64(availRows), 2*jar.Width/float64(availCols))
	cols := min(max(int(jar.Width/(perRow/2)), 1), availCols)
	rows := min(max(int(jar.Height/perRow), 1), availRows)

	l := layout{
		ok:          true,
		jarX:        marginLeft + 1,
		jarY:        titleRows,
		cols:        cols,
		rows:        rows,
		unitsPerCol: jar.Width / float64(cols),
		unitsPerRow: jar.Height / float64(rows),
	}
	l.panelX = l.jarX + cols + 2
	return l
}

// ColumnToJarX converts a screen column to a jar x at that cell's center
// Returns false when the jar is not on screen
func (r *TerminalRenderer) ColumnToJarX(col int) (float64, bool) {
	r.layoutMu.RLock()
	l := r.layout
	r.layoutMu.RUnlock()
	if !l.ok {
		return 0, false
	}
	return (float64(col-l.jarX) + 0.5) * l.unitsPerCol, true
}

// JarToCell converts jar coordinates to the screen cell containing them, clamped to the jar
func (r *TerminalRenderer) JarToCell(x, y float64) (col, row int) {
	l := r.layout
	c := min(max(int(x/l.unitsPerCol), 0), l.cols-1)
	rw := min(max(int(y/l.unitsPerRow), 0), l.rows-1)
	return l.jarX + c, l.jarY + rw
}

// DrawBackground clears the screen and draws the jar, its walls and the hazard line
func (r *TerminalRenderer) DrawBackground() {
	r.screen.Clear()
	l := r.layout
	base := tcell.StyleDefault.Background(RgbBackground)

	w, h := r.screen.Size()
	r.fill(0, 0, w, h, ' ', base)

	if !l.ok {
		r.drawText(0, 0, "Terminal too small", base.Foreground(RgbGameOverText))
		return
	}

	r.drawText(l.jarX, 0, "COOKIE JAR", base.Foreground(RgbTitle).Bold(true))

	interior := tcell.StyleDefault.Background(RgbJarInterior)
	r.fill(l.jarX, l.jarY, l.cols, l.rows, ' ', interior)

	wall := base.Foreground(RgbJarWall)
	for row := l.jarY; row < l.jarY+l.rows; row++ {
		r.screen.SetContent(l.jarX-1, row, '│', nil, wall)
		r.screen.SetContent(l.jarX+l.cols, row, '│', nil, wall)
	}
	floorRow := l.jarY + l.rows
	r.screen.SetContent(l.jarX-1, floorRow, '└', nil, wall)
	r.screen.SetContent(l.jarX+l.cols, floorRow, '┘', nil, wall)
	for col := l.jarX; col < l.jarX+l.cols; col++ {
		r.screen.SetContent(col, floorRow, '─', nil, wall)
	}

	_, hazardRow := r.JarToCell(0, r.opts.HazardLine)
	dash := interior.Foreground(RgbHazardLine)
	for col := l.jarX; col < l.jarX+l.cols; col++ {
		r.screen.SetContent(col, hazardRow, '╌', nil, dash)
	}
}

// DrawWarningOverlay tints the band from the jar top down to the overlay line
func (r *TerminalRenderer) DrawWarningOverlay(active bool) {
	l := r.layout
	if !active || !l.ok {
		return
	}
	bandRows := min(int(math.Ceil(r.opts.OverlayLine/l.unitsPerRow)), l.rows)
	for row := l.jarY; row < l.jarY+bandRows; row++ {
		for col := l.jarX; col < l.jarX+l.cols; col++ {
			mainc, combc, style, _ := r.screen.GetContent(col, row)
			r.screen.SetContent(col, row, mainc, combc, style.Background(RgbWarningBg))
		}
	}
}

// DrawPiece fills the cells whose centers fall inside the piece and marks its center with the tier glyph
func (r *TerminalRenderer) DrawPiece(p *core.Piece) {
	l := r.layout
	if !l.ok || len(r.styles) == 0 {
		return
	}
	st := r.styles[r.tierIndex(p.Tier)]

	c0 := max(int((p.X-p.Radius)/l.unitsPerCol), 0)
	c1 := min(int((p.X+p.Radius)/l.unitsPerCol), l.cols-1)
	r0 := max(int((p.Y-p.Radius)/l.unitsPerRow), 0)
	r1 := min(int((p.Y+p.Radius)/l.unitsPerRow), l.rows-1)
	rSq := p.Radius * p.Radius

	for row := r0; row <= r1; row++ {
		dy := (float64(row)+0.5)*l.unitsPerRow - p.Y
		for col := c0; col <= c1; col++ {
			dx := (float64(col)+0.5)*l.unitsPerCol - p.X
			if dx*dx+dy*dy <= rSq {
				r.screen.SetContent(l.jarX+col, l.jarY+row, ' ', nil, st.fill)
			}
		}
	}

	// Center glyph is always drawn so even a tiny piece is visible
	col, row := r.JarToCell(p.X, p.Y)
	r.screen.SetContent(col, row, st.rune, nil, st.glyph)
}

// DrawGameOver dims the jar and shows the final score with a restart hint
func (r *TerminalRenderer) DrawGameOver() {
	l := r.layout
	if !l.ok {
		return
	}

	for row := l.jarY; row < l.jarY+l.rows; row++ {
		for col := l.jarX; col < l.jarX+l.cols; col++ {
			mainc, combc, style, _ := r.screen.GetContent(col, row)
			r.screen.SetContent(col, row, mainc, combc, style.Dim(true))
		}
	}

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score %d", r.score),
		"r: restart  q: quit",
	}
	boxW := 0
	for _, s := range lines {
		boxW = max(boxW, len(s))
	}
	boxW += 4
	boxH := len(lines) + 2

	x0 := l.jarX + max((l.cols-boxW)/2, 0)
	y0 := l.jarY + max((l.rows-boxH)/2, 0)
	box := tcell.StyleDefault.Background(RgbGameOverBg).Foreground(RgbGameOverText)
	r.fill(x0, y0, boxW, boxH, ' ', box)
	for i, s := range lines {
		style := box
		if i == 0 {
			style = style.Bold(true)
		}
		r.drawText(x0+(boxW-len(s))/2, y0+1+i, s, style)
	}
}

// Show draws the score panel and flushes the frame to the terminal
func (r *TerminalRenderer) Show() {
	r.drawPanel()
	r.screen.Show()
}

// SetScore updates the live score shown in the panel
func (r *TerminalRenderer) SetScore(score int) {
	r.score = score
}

// SetHighScores replaces the high-score list shown in the panel
func (r *TerminalRenderer) SetHighScores(scores []int) {
	r.highScores = append(r.highScores[:0], scores...)
}

func (r *TerminalRenderer) drawPanel() {
	l := r.layout
	if !l.ok {
		return
	}
	base := tcell.StyleDefault.Background(RgbBackground)
	text := base.Foreground(RgbPanelText)
	x, y := l.panelX, l.jarY

	r.drawText(x, y, "SCORE", text.Bold(true))
	r.drawText(x, y+1, fmt.Sprintf("%-*d", panelWidth-1, r.score), base.Foreground(RgbScore).Bold(true))

	y += 3
	r.drawText(x, y, "HIGH SCORES", text.Bold(true))
	for i := 0; i < r.opts.Slots; i++ {
		line := fmt.Sprintf("%d. - - -", i+1)
		style := base.Foreground(RgbHighScoreNone)
		if i < len(r.highScores) {
			line = fmt.Sprintf("%d. %d", i+1, r.highScores[i])
			style = text
		}
		r.drawText(x, y+1+i, fmt.Sprintf("%-*s", panelWidth-1, line), style)
	}

	y += r.opts.Slots + 2
	help := []string{
		"←/→ h/l  aim",
		"mouse    aim",
		"space    drop",
		"r        reset",
		"q        quit",
	}
	for i, s := range help {
		r.drawText(x, y+i, s, base.Foreground(RgbHighScoreNone))
	}
}

func (r *TerminalRenderer) tierIndex(tier int) int {
	n := len(r.styles)
	tier %= n
	if tier < 0 {
		tier += n
	}
	return tier
}

func (r *TerminalRenderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

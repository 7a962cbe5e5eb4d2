package levels

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"jahbot/domain/entities"
	"jahbot/domain/services"
)

// tableColumn defines a column in the leaderboard table
type tableColumn struct {
	Header    string
	XPosition int
	ColorRGB  [3]float64
}

// tableStyle defines the visual style of the table
type tableStyle struct {
	Width           int
	MinHeight       int
	Padding         int
	RowHeight       int
	ProgressBarTop  [3]float64
	HighlightColors map[string][4]float64
}

// LeaderboardImageGenerator renders the XP ranking as a PNG table.
type LeaderboardImageGenerator struct {
	style tableStyle
}

// NewLeaderboardImageGenerator creates a generator with the default style
func NewLeaderboardImageGenerator() *LeaderboardImageGenerator {
	return &LeaderboardImageGenerator{
		style: tableStyle{
			Width:          420,
			MinHeight:      120,
			Padding:        15,
			RowHeight:      26,
			ProgressBarTop: [3]float64{0.35, 0.55, 0.95},
			HighlightColors: map[string][4]float64{
				"gold":   {1, 0.84, 0, 0.1},
				"silver": {0.8, 0.8, 0.8, 0.08},
				"bronze": {0.8, 0.5, 0.2, 0.06},
			},
		},
	}
}

// GenerateXPLeaderboard renders the ranked entries. The multiplier is needed
// to compute each row's progress toward its next level.
func (g *LeaderboardImageGenerator) GenerateXPLeaderboard(entries []services.LeaderboardEntry, multiplier int) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("row_count", len(entries)).
			Debug("Leaderboard image generation completed")
	}()

	columns := []tableColumn{
		{Header: "#", XPosition: g.style.Padding, ColorRGB: [3]float64{0.85, 0.85, 0.9}},
		{Header: "User", XPosition: g.style.Padding + 25, ColorRGB: [3]float64{1.0, 1.0, 1.0}},
		{Header: "Lvl", XPosition: g.style.Padding + 160, ColorRGB: [3]float64{0.85, 1.0, 0.85}},
		{Header: "XP", XPosition: g.style.Padding + 200, ColorRGB: [3]float64{0.85, 0.85, 1.0}},
		{Header: "Next", XPosition: g.style.Padding + 280, ColorRGB: [3]float64{0.9, 0.9, 0.95}},
	}

	// Header (25px) + header padding (30px) + rows + bottom padding (15px)
	height := 25 + 30 + len(entries)*g.style.RowHeight + 15
	if height < g.style.MinHeight {
		height = g.style.MinHeight
	}

	dc := gg.NewContext(g.style.Width, height)
	dc.SetFillRule(gg.FillRuleWinding)

	g.drawBackground(dc, height)

	face, err := loadFont(gomono.TTF, 11)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(face)

	y := float64(25)

	// Header band
	dc.SetRGBA(0.3, 0.3, 0.4, 0.4)
	dc.DrawRectangle(0, y-15, float64(g.style.Width), 20)
	dc.Fill()

	dc.SetRGB(1.0, 1.0, 1.0)
	for _, col := range columns {
		drawSharpText(dc, col.Header, float64(col.XPosition), y)
	}

	dc.SetRGBA(0.6, 0.6, 0.7, 0.7)
	dc.SetLineWidth(1)
	dc.DrawLine(0, y+8, float64(g.style.Width), y+8)
	dc.Stroke()

	y += 30
	for i, entry := range entries {
		g.drawRowHighlight(dc, i, y)

		if i < 3 {
			g.drawMedal(dc, i, entry.Rank, y, face)
		} else {
			dc.SetRGB(columns[0].ColorRGB[0], columns[0].ColorRGB[1], columns[0].ColorRGB[2])
			drawSharpText(dc, fmt.Sprintf("%d", entry.Rank), float64(columns[0].XPosition), y)
		}

		name := entry.DisplayName
		if name == "" {
			name = entry.UserID
		}
		if len(name) > 15 {
			name = name[:14] + "…"
		}

		profile := entities.LevelProfile{XP: entry.XP}
		progress := profile.Progress(multiplier)

		cells := []string{
			name,
			fmt.Sprintf("%d", entry.Level),
			formatXP(entry.XP),
			formatXP(progress.XPToNext),
		}
		for j, cell := range cells {
			col := columns[j+1]
			dc.SetRGB(col.ColorRGB[0], col.ColorRGB[1], col.ColorRGB[2])
			drawSharpText(dc, cell, float64(col.XPosition), y)
		}

		g.drawProgressBar(dc, float64(columns[4].XPosition+55), y, progress.Percent)

		y += float64(g.style.RowHeight)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// drawBackground paints the gradient backdrop with subtle noise
func (g *LeaderboardImageGenerator) drawBackground(dc *gg.Context, height int) {
	for i := 0; i < height; i++ {
		t := float64(i) / float64(height)
		baseR := 0.02 + t*0.03
		baseG := 0.02 + t*0.05
		baseB := 0.05 + t*0.1

		for x := 0; x < g.style.Width; x++ {
			noise := (float64((x*i)%7) - 3.5) / 255.0
			dc.SetRGB(baseR+noise, baseG+noise, baseB+noise)
			dc.SetPixel(x, i)
		}
	}
}

func (g *LeaderboardImageGenerator) drawRowHighlight(dc *gg.Context, index int, y float64) {
	highlightType := ""
	switch index {
	case 0:
		highlightType = "gold"
	case 1:
		highlightType = "silver"
	case 2:
		highlightType = "bronze"
	}

	if highlightType != "" {
		color := g.style.HighlightColors[highlightType]
		dc.SetRGBA(color[0], color[1], color[2], color[3])
	} else {
		dc.SetRGBA(0.5, 0.5, 0.6, 0.02)
	}
	dc.DrawRectangle(0, y-15, float64(g.style.Width), float64(g.style.RowHeight))
	dc.Fill()
}

// drawMedal draws the colored rank circle for the top three rows
func (g *LeaderboardImageGenerator) drawMedal(dc *gg.Context, index, rank int, y float64, face font.Face) {
	var red, green, blue float64
	switch index {
	case 0:
		red, green, blue = 1, 0.84, 0 // Gold
	case 1:
		red, green, blue = 0.75, 0.75, 0.75 // Silver
	case 2:
		red, green, blue = 0.8, 0.5, 0.2 // Bronze
	}
	dc.SetRGB(red, green, blue)
	dc.DrawCircle(float64(g.style.Padding+3), y-4, 5)
	dc.Fill()

	dc.SetRGB(0, 0, 0)
	rankFace, _ := loadFont(gobold.TTF, 9)
	dc.SetFontFace(rankFace)
	dc.DrawStringAnchored(fmt.Sprintf("%d", rank), float64(g.style.Padding+3), y-5, 0.5, 0.4)
	dc.SetFontFace(face)
}

// drawProgressBar renders a small bar showing progress within the level band
func (g *LeaderboardImageGenerator) drawProgressBar(dc *gg.Context, x, y float64, percent int) {
	const barWidth, barHeight = 60.0, 6.0
	top := y - 9

	dc.SetRGBA(0.4, 0.4, 0.5, 0.35)
	dc.DrawRoundedRectangle(x, top, barWidth, barHeight, 3)
	dc.Fill()

	if percent <= 0 {
		return
	}
	if percent > 100 {
		percent = 100
	}
	dc.SetRGB(g.style.ProgressBarTop[0], g.style.ProgressBarTop[1], g.style.ProgressBarTop[2])
	dc.DrawRoundedRectangle(x, top, barWidth*float64(percent)/100, barHeight, 3)
	dc.Fill()
}

// formatXP renders an XP count compactly so wide values stay in their column
func formatXP(xp int64) string {
	if xp < 10000 {
		return fmt.Sprintf("%d", xp)
	}
	return fmt.Sprintf("%.1fk", float64(xp)/1000)
}

// drawSharpText draws text with a subtle shadow for perceived sharpness
func drawSharpText(dc *gg.Context, text string, x, y float64) {
	dc.Push()
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawString(text, x+0.5, y+0.5)
	dc.Pop()

	dc.DrawString(text, x, y)
}

// loadFont loads a font from byte data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:       size,
		DPI:        72,
		Hinting:    font.HintingFull,
		SubPixelsX: 4,
		SubPixelsY: 4,
	})
	return face, nil
}

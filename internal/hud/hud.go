// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hud draws a metrics panel onto benchmark snapshots.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/starbench/engine"
)

const pad = 6

var (
	panelColor = color.NRGBA{R: 0, G: 0, B: 0, A: 180}
	textColor  = color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
)

// HUD renders text panels with a monospace face.
type HUD struct {
	face       font.Face
	lineHeight int
	ascent     int
}

// New creates a HUD with the Go Mono face at size points.
func New(size float64) (*HUD, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("hud: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hud: create face: %w", err)
	}
	m := face.Metrics()
	return &HUD{
		face:       face,
		lineHeight: m.Height.Ceil(),
		ascent:     m.Ascent.Ceil(),
	}, nil
}

// Close releases the font face.
func (h *HUD) Close() error {
	return h.face.Close()
}

// Panel renders lines onto a translucent panel just large enough to
// hold them.
func (h *HUD) Panel(lines []string) *image.RGBA {
	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(h.face, l).Ceil())
	}
	img := image.NewRGBA(image.Rect(0, 0, width+2*pad, len(lines)*h.lineHeight+2*pad))
	draw.Draw(img, img.Bounds(), image.NewUniform(panelColor), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: h.face,
	}
	for i, l := range lines {
		d.Dot = fixed.P(pad, pad+h.ascent+i*h.lineHeight)
		d.DrawString(l)
	}
	return img
}

// Draw renders lines as a panel with its top-left corner at (x, y).
func (h *HUD) Draw(dc *gg.Context, x, y float64, lines []string) {
	if len(lines) == 0 {
		return
	}
	dc.DrawImage(gg.ImageBufFromImage(h.Panel(lines)), x, y)
}

var printer = message.NewPrinter(language.English)

// Lines formats the headline numbers of s.
func Lines(s engine.Snapshot) []string {
	m := s.Metrics
	return []string{
		printer.Sprintf("strategy   %s", s.Strategy),
		printer.Sprintf("stars      %d  r=%v", s.Entities, s.FinalRadius),
		printer.Sprintf("fps        %v", m.FPS.Value),
		printer.Sprintf("draws/s    %v", m.Draws.Value),
		printer.Sprintf("frame      %.2f ms", m.FrameTime.Value),
		printer.Sprintf("per star   %.3f us", m.PerEntity.Value),
		printer.Sprintf("state      %s  trail=%d", s.State, s.TrailLen),
	}
}

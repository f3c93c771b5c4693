// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package term shows the engine surface in a terminal and turns terminal
// mouse and key events into engine calls.
//
// Each cell shows two vertically stacked surface pixels with the upper
// half block: the foreground colours the top pixel and the background
// the bottom one. The last terminal row is a status line.
package term

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// statusRows is the number of rows below the surface.
const statusRows = 1

// SurfaceSize returns the surface size in pixels for a terminal of
// cols x rows cells.
func SurfaceSize(cols, rows int) (width, height int) {
	return max(cols, 0), max(rows-statusRows, 0) * 2
}

// CellToSurface maps a cell to the surface pixel at its centre.
func CellToSurface(col, row int) (x, y float64) {
	return float64(col) + 0.5, float64(row*2) + 1
}

func cellColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Present paints img into the surface rows of screen and writes status
// on the last row. It does not call Show.
func Present(screen tcell.Screen, img image.Image, status string) {
	cols, rows := screen.Size()
	b := img.Bounds()
	for row := 0; row < rows-statusRows; row++ {
		for col := 0; col < cols; col++ {
			x, y := b.Min.X+col, b.Min.Y+row*2
			if x >= b.Max.X || y+1 >= b.Max.Y {
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.
				Foreground(cellColor(img, x, y)).
				Background(cellColor(img, x, y+1))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	drawStatus(screen, rows-1, cols, status)
}

var statusStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(0xe2, 0xe8, 0xf0)).
	Background(tcell.NewRGBColor(0x1e, 0x29, 0x3b))

func drawStatus(screen tcell.Screen, row, cols int, status string) {
	if row < 0 {
		return
	}
	col := 0
	for _, r := range status {
		if col >= cols {
			break
		}
		screen.SetContent(col, row, r, nil, statusStyle)
		col++
	}
	for ; col < cols; col++ {
		screen.SetContent(col, row, ' ', nil, statusStyle)
	}
}

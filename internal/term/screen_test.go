// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package term

import "github.com/gdamore/tcell/v2"

type cell struct {
	r     rune
	style tcell.Style
}

// mockScreen records SetContent calls. Methods it does not override
// panic through the nil embedded Screen.
type mockScreen struct {
	tcell.Screen
	cols, rows int
	cells      map[[2]int]cell
	shows      int
}

func newMockScreen(cols, rows int) *mockScreen {
	return &mockScreen{cols: cols, rows: rows, cells: make(map[[2]int]cell)}
}

func (m *mockScreen) Size() (int, int) { return m.cols, m.rows }
func (m *mockScreen) Show()            { m.shows++ }
func (m *mockScreen) Sync()            {}
func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{r: mainc, style: style}
}

func (m *mockScreen) at(x, y int) cell { return m.cells[[2]int{x, y}] }

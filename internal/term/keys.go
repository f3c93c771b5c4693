// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/starbench/engine"
	"github.com/gogpu/starbench/shape"
)

// Radius limits and count step for the key bindings.
const (
	MinRadius = 1
	MaxRadius = 10
	CountStep = 1000
)

// Command is a viewer action bound to a key.
type Command uint8

// Commands.
const (
	CmdNone Command = iota
	CmdImmediate
	CmdPathAbsolute
	CmdPathTranslate
	CmdComposited
	CmdToggleTrigger
	CmdToggleTrail
	CmdToggleUnique
	CmdToggleMultiplier1
	CmdToggleMultiplier2
	CmdRadiusUp
	CmdRadiusDown
	CmdCountUp
	CmdCountDown
	CmdCommit
	CmdQuit
)

var runeCommands = map[rune]Command{
	'1': CmdImmediate,
	'2': CmdPathAbsolute,
	'3': CmdPathTranslate,
	'4': CmdComposited,
	't': CmdToggleTrigger,
	'c': CmdToggleTrail,
	'u': CmdToggleUnique,
	'm': CmdToggleMultiplier1,
	'n': CmdToggleMultiplier2,
	'+': CmdRadiusUp,
	'=': CmdRadiusUp,
	'-': CmdRadiusDown,
	']': CmdCountUp,
	'[': CmdCountDown,
	'q': CmdQuit,
}

// KeyCommand returns the command bound to ev.
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEnter:
		return CmdCommit
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyRune:
		return runeCommands[ev.Rune()]
	}
	return CmdNone
}

// Apply runs c on e. It returns false when the viewer should quit.
func (c Command) Apply(e *engine.Engine) bool {
	snap := e.Snapshot()
	live := snap.Live
	switch c {
	case CmdImmediate:
		e.SetStrategy(engine.Immediate)
	case CmdPathAbsolute:
		e.SetStrategy(engine.PathAbsolute)
	case CmdPathTranslate:
		e.SetStrategy(engine.PathTranslate)
	case CmdComposited:
		e.SetStrategy(engine.Composited)
	case CmdToggleTrigger:
		if snap.Trigger == engine.Continuous {
			e.SetTrigger(engine.EventDriven)
		} else {
			e.SetTrigger(engine.Continuous)
		}
	case CmdToggleTrail:
		e.SetTrail(!snap.Trail)
	case CmdToggleUnique:
		e.SetForceUnique(!snap.ForceUnique)
	case CmdToggleMultiplier1:
		e.SetMultiplier(0, !live.Multipliers[0])
	case CmdToggleMultiplier2:
		e.SetMultiplier(1, !live.Multipliers[1])
	case CmdRadiusUp:
		e.SetRadius(min(live.Radius+1, MaxRadius))
	case CmdRadiusDown:
		e.SetRadius(max(live.Radius-1, MinRadius))
	case CmdCountUp:
		e.SetCount(shape.Circle, live.Counts[shape.Circle]+CountStep)
	case CmdCountDown:
		e.SetCount(shape.Circle, max(live.Counts[shape.Circle]-CountStep, 0))
	case CmdCommit:
		e.Commit()
	case CmdQuit:
		return false
	}
	return true
}

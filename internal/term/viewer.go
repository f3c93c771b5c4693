// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/starbench"
	"github.com/gogpu/starbench/engine"
)

// DefaultFPS is the viewer refresh rate when none is set.
const DefaultFPS = 30

var printer = message.NewPrinter(language.English)

// Status formats the one-line summary shown below the surface.
func Status(s engine.Snapshot) string {
	pending := ""
	if s.Live != s.Committed {
		pending = " *"
	}
	return printer.Sprintf("[%s|%s] %d stars r=%v  %.1f fps  %.2f ms  trail=%t unique=%t%s",
		s.Strategy, s.Trigger, s.Entities, s.FinalRadius,
		s.Metrics.FPS.Value, s.Metrics.FrameTime.Value,
		s.Trail, s.ForceUnique, pending)
}

// Viewer runs an engine on a terminal screen.
type Viewer struct {
	screen tcell.Screen
	engine *engine.Engine
	mouse  Mouse
	fps    int
}

// NewViewer returns a viewer for e on screen. The screen must already be
// initialized, and e must own its frame queue.
func NewViewer(screen tcell.Screen, e *engine.Engine, fps int) *Viewer {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Viewer{screen: screen, engine: e, fps: fps}
}

// Mouse returns the pointer translator.
func (v *Viewer) Mouse() *Mouse {
	return &v.mouse
}

// Attach sizes the surface to the screen and attaches it to the engine.
// A screen too small for a surface attaches on the first resize that
// leaves room for one.
func (v *Viewer) Attach() {
	v.resize(v.screen.Size())
}

func (v *Viewer) resize(cols, rows int) {
	v.mouse.Resize(cols, rows)
	w, h := SurfaceSize(cols, rows)
	if v.engine.Surface() == nil {
		if w > 0 && h > 0 {
			v.engine.Attach(gg.NewContext(w, h))
		}
		return
	}
	v.engine.Resize(w, h)
}

// HandleEvent applies ev to the engine. It returns false on quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return KeyCommand(ev).Apply(v.engine)
	case *tcell.EventResize:
		v.resize(ev.Size())
		v.screen.Sync()
	case *tcell.EventMouse:
		for _, p := range v.mouse.Translate(ev) {
			switch p.Action {
			case PointerMove:
				v.engine.PointerMove(p.X, p.Y)
			case PointerDown:
				v.engine.PointerDown(p.X, p.Y)
			case PointerUp:
				v.engine.PointerUp()
			case PointerLeave:
				v.engine.PointerLeave()
			}
		}
	}
	return true
}

// Frame fires the engine's pending frame callbacks and presents the
// surface.
func (v *Viewer) Frame(now time.Time) {
	if q := v.engine.Scheduler(); q != nil {
		q.Fire(now)
	}
	if dc := v.engine.Surface(); dc != nil {
		Present(v.screen, dc.Image(), Status(v.engine.Snapshot()))
	}
	v.screen.Show()
}

// Run attaches the engine, starts it and loops until ctx is done or a
// quit key is pressed.
func (v *Viewer) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	defer v.screen.DisableMouse()

	v.Attach()
	v.engine.Start()
	defer v.engine.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(v.fps))
	defer ticker.Stop()

	starbench.Logger().Info("term: viewer started", "fps", v.fps)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			v.Frame(now)
		}
	}
}

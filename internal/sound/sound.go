// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sound plays short clicks when the viewer grabs or releases a
// star.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/gogpu/starbench/engine"
	"github.com/gogpu/starbench/interact"
)

const sampleRate = beep.SampleRate(44100)

// Click pitches and length.
const (
	GrabPitch    = 880.0
	ReleasePitch = 440.0
	ClickLength  = 40 * time.Millisecond
)

// click is a sine burst with an exponential decay.
type click struct {
	freq     float64
	position int
	total    int
}

// NewClick returns a decaying sine burst of the given pitch and length.
func NewClick(freq float64, d time.Duration) beep.Streamer {
	return &click{freq: freq, total: sampleRate.N(d)}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.total {
			return i, i > 0
		}
		t := float64(c.position) / float64(sampleRate)
		decay := math.Exp(-6 * float64(c.position) / float64(c.total))
		v := math.Sin(2*math.Pi*c.freq*t) * decay
		samples[i][0], samples[i][1] = v, v
		c.position++
	}
	return len(samples), true
}

func (c *click) Err() error { return nil }

// Player mixes clicks onto the default audio device.
type Player struct {
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given linear volume in (0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device. Calling it again does nothing.
func (p *Player) Init() error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Play queues a click. It does nothing before Init.
func (p *Player) Play(freq float64) {
	if !p.initialized {
		return
	}
	s := p.shape(NewClick(freq, ClickLength))
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) shape(s beep.Streamer) beep.Streamer {
	if p.volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(p.volume, 1))}
}

// Listener returns an engine listener that clicks on grab and release.
func (p *Player) Listener() engine.Listener {
	return func(ev engine.Event) {
		if ev.Kind != engine.EventInteraction {
			return
		}
		switch ev.Change {
		case interact.DragStarted:
			p.Play(GrabPitch)
		case interact.DragReleased:
			p.Play(ReleasePitch)
		}
	}
}

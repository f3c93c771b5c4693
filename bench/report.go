// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bench

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport prints one row per result. Numbers use the conventions of
// tag, e.g. thousands separators for language.English.
func WriteReport(w io.Writer, tag language.Tag, results []Result) error {
	p := message.NewPrinter(tag)
	if _, err := p.Fprintf(w, "%-15s %8s %8s %10s %10s %10s %12s %8s\n",
		"strategy", "stars", "repaints", "mean ms", "max ms", "total ms", "us/star", "cached"); err != nil {
		return fmt.Errorf("bench: write report: %w", err)
	}
	for _, r := range results {
		cached := r.Cache.Sprites.Len + r.Cache.Absolute.Len + r.Cache.Relative.Len
		if _, err := p.Fprintf(w, "%-15s %8d %8d %10.3f %10.3f %10.1f %12.4f %8d\n",
			r.Strategy, r.Entities, r.Repaints,
			ms(r.Mean), ms(r.Max), ms(r.Total), r.PerEntity, cached); err != nil {
			return fmt.Errorf("bench: write report: %w", err)
		}
	}
	return nil
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"testing"

	"github.com/gogpu/starbench/config"
)

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"", false},
		{"debug", false},
		{"WARN", false},
		{"loud", true},
	}
	for _, tt := range tests {
		if err := setupLogging(tt.level); (err != nil) != tt.wantErr {
			t.Errorf("setupLogging(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
		}
	}
}

func TestConfigCommandPrintsDefault(t *testing.T) {
	var out bytes.Buffer
	cmd := configCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("printed config does not parse: %v", err)
	}
	if cfg.Scene.Circles != config.Default().Scene.Circles {
		t.Errorf("circles = %d", cfg.Scene.Circles)
	}
}

func TestBenchCommandRejectsUnknownStrategy(t *testing.T) {
	g := &globalFlags{}
	cmd := benchCmd(g)
	cmd.SetArgs([]string{"--strategy", "raytrace"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

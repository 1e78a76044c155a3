package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns its output
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// baseArgs points the CLI at a config file and asset dir under a temp dir
func baseArgs(t *testing.T, assets string) []string {
	t.Helper()
	return []string{
		"--config", filepath.Join(t.TempDir(), "vpet.toml"),
		"--assets", assets,
	}
}

func writeFrames(t *testing.T, base, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(base, dir), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(base, dir, name), nil, 0644); err != nil {
			t.Fatalf("Failed to write frame: %v", err)
		}
	}
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateWithoutAssets(t *testing.T) {
	args := append(baseArgs(t, filepath.Join(t.TempDir(), "missing")),
		"simulate", "--ticks", "4", "--step", "500ms", "--pet-at", "1", "--feed-at", "2")

	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	assertContains(t, out,
		"Starting pet simulation...",
		"Pet Stats - State: Normal, Animation: Idle",
		"Petting the pet...",
		"Sequence: petted (Petted, 2 frames)",
		"Animation frame: petted_1.png (duration: 400ms)",
		"Animation: Petted",
		"Feeding the pet...",
		"Animation: Eating",
		"Simulation finished after 4 ticks (2s simulated).",
		"Hunger:",
	)

	// Petting comes before feeding
	if strings.Index(out, "Petting the pet") > strings.Index(out, "Feeding the pet") {
		t.Error("Actions printed out of order")
	}
}

func TestSimulateWithAssets(t *testing.T) {
	base := t.TempDir()
	writeFrames(t, base, "Idle", "idle_01_100.png", "idle_02_100.png")

	args := append(baseArgs(t, base), "simulate", "--ticks", "3", "--step", "100ms", "--water-at", "0")
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	assertContains(t, out,
		"Animation frame: "+filepath.Join(base, "Idle", "idle_02_100.png")+" (duration: 100ms)",
		"Animation frame: "+filepath.Join(base, "Idle", "idle_01_100.png")+" (duration: 100ms)",
		"Giving water...",
		"Simulation finished after 3 ticks (300ms simulated).",
	)
}

func TestSimulateRejectsBadFlags(t *testing.T) {
	tests := [][]string{
		{"simulate", "--step", "0s"},
		{"simulate", "--ticks", "-1"},
		{"simulate", "--feed-at", "soon"},
	}

	for _, tt := range tests {
		args := append(baseArgs(t, t.TempDir()), tt...)
		if _, err := runCLI(t, args...); err == nil {
			t.Errorf("Expected %v to fail", tt)
		}
	}
}

func TestFrames(t *testing.T) {
	base := t.TempDir()
	writeFrames(t, base, "Happy", "h_01_250.PNG", "h_02_x.png", "notes.txt")

	out, err := runCLI(t, append(baseArgs(t, base), "frames")...)
	if err != nil {
		t.Fatalf("frames failed: %v", err)
	}
	assertContains(t, out,
		"Happy (happy)",
		"2 frames, 375ms, looping",
		filepath.Join(base, "Happy", "h_01_250.PNG")+" 250ms",
		filepath.Join(base, "Happy", "h_02_x.png")+" 125ms",
		"Sleeping (sleeping)",
	)
	if strings.Contains(out, "notes.txt") {
		t.Error("Non-frame files must not be listed")
	}
}

func TestFramesLoadedOnly(t *testing.T) {
	base := t.TempDir()
	writeFrames(t, base, "Happy", "h_01_250.png")

	out, err := runCLI(t, append(baseArgs(t, base), "frames", "--loaded-only")...)
	if err != nil {
		t.Fatalf("frames failed: %v", err)
	}
	assertContains(t, out, "Happy (happy)")
	if strings.Contains(out, "Sleeping") || strings.Contains(out, "Idle") {
		t.Errorf("Expected only loaded sequences:\n%s", out)
	}
}

func TestFramesLoadedOnlyBadBase(t *testing.T) {
	file := filepath.Join(t.TempDir(), "assets")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := runCLI(t, append(baseArgs(t, file), "frames", "--loaded-only")...)
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Expected a load error, got %v", err)
	}
}

func TestFramesOnceFromConfig(t *testing.T) {
	base := t.TempDir()
	writeFrames(t, base, "Eating", "eat_01_100.png")

	cfgPath := filepath.Join(t.TempDir(), "vpet.toml")
	if err := os.WriteFile(cfgPath, []byte("[animations]\nonce = [\"eating\"]\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := runCLI(t, "--config", cfgPath, "--assets", base, "frames", "--loaded-only")
	if err != nil {
		t.Fatalf("frames failed: %v", err)
	}
	assertContains(t, out, "Eating (eating)", "1 frames, 100ms, once")
}

func TestConfigCommand(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vpet.toml")
	if err := os.WriteFile(cfgPath, []byte("[pet]\nname = \"Mochi\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := runCLI(t, "--config", cfgPath, "--assets", "/srv/pet", "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	assertContains(t, out, "Mochi", "/srv/pet", "tick_interval", "need_decay_rate")
}

func TestMalformedConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vpet.toml")
	if err := os.WriteFile(cfgPath, []byte("tick_interval = \n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	for _, sub := range []string{"config", "frames", "simulate"} {
		if _, err := runCLI(t, "--config", cfgPath, sub); err == nil || !strings.Contains(err.Error(), "failed to parse") {
			t.Errorf("%s: expected a parse error, got %v", sub, err)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	assertContains(t, out, Version)
}

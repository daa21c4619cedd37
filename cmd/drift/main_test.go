package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-drift/internal/config"
	"github.com/vovakirdan/tui-drift/internal/core"
	"github.com/vovakirdan/tui-drift/internal/engine"
	"github.com/vovakirdan/tui-drift/internal/grid"
	"github.com/vovakirdan/tui-drift/internal/tilt"
)

func discard() *log.Logger {
	return log.New(io.Discard)
}

func smallConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Rows = 3
	rc.Columns = 3
	rc.Seed = 1
	return rc
}

func TestOverridesApply(t *testing.T) {
	rows, fps := 5, 10
	policy := "clamp"
	var seed int64 = 99

	cfg := config.DefaultConfig()
	o := overrides{rows: &rows, fps: &fps, policy: &policy, seed: &seed}
	if err := o.apply(&cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Grid.Rows != 5 || cfg.Grid.Columns != 9 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Driver.Interval != 100*time.Millisecond {
		t.Errorf("interval = %v, expected 100ms", cfg.Driver.Interval)
	}
	if cfg.Engine.Policy != "clamp" || cfg.Seed.Value != 99 {
		t.Errorf("policy/seed not applied: %+v", cfg)
	}

	// Untouched flags leave the file values alone
	cfg = config.DefaultConfig()
	if err := (overrides{}).apply(&cfg); err != nil || cfg != config.DefaultConfig() {
		t.Errorf("empty overrides changed config: %+v, %v", cfg, err)
	}
}

func TestOverridesApplyErrors(t *testing.T) {
	zero, bad := 0, "wrap"
	density := 2.0

	tests := []struct {
		name string
		o    overrides
	}{
		{"zero fps", overrides{fps: &zero}},
		{"zero rows", overrides{rows: &zero}},
		{"unknown policy", overrides{policy: &bad}},
		{"density above one", overrides{density: &density}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			if err := tc.o.apply(&cfg); err == nil {
				t.Error("apply should fail")
			}
		})
	}
}

func TestRunHeadless(t *testing.T) {
	var out bytes.Buffer
	rep, err := runHeadless(context.Background(), &out, smallConfig(), nil, tilt.Fixed{X: 1, Y: 1}, 5, 0, discard())
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if rep.Steps != 5 || rep.Count != 1 || rep.Seed != 1 {
		t.Errorf("report = %+v", rep)
	}
	if !rep.Final.Get(2, 2) {
		t.Errorf("particle should end bottom-right:\n%s", rep.Final)
	}

	s := out.String()
	if !strings.Contains(s, "...\n...\n..#") {
		t.Errorf("final frame missing:\n%s", s)
	}
	if !strings.Contains(s, "final: 1 particles after 5 steps") {
		t.Errorf("summary missing:\n%s", s)
	}
}

func TestRunHeadlessFromGrid(t *testing.T) {
	start, err := grid.Parse(`
		##..
		#...
		....
	`)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rep, err := runHeadless(context.Background(), &out, smallConfig(), start, tilt.Fixed{X: 1, Y: 1}, 10, 0, discard())
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if rep.Count != 3 || rep.Final.Count() != 3 {
		t.Errorf("count %d -> %d, expected 3", rep.Count, rep.Final.Count())
	}
	if !strings.Contains(out.String(), "3x4  policy rail  pattern file") {
		t.Errorf("header:\n%s", out.String())
	}
	if start.Count() != 3 || !start.Get(0, 0) {
		t.Error("start grid should not be modified")
	}
}

func TestRunHeadlessEvery(t *testing.T) {
	var out bytes.Buffer
	if _, err := runHeadless(context.Background(), &out, smallConfig(), nil, tilt.Fixed{X: 1, Y: 1}, 4, 2, discard()); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if n := strings.Count(s, "\nstep "); n != 3 {
		t.Errorf("expected frames at steps 0, 2 and 4, got %d:\n%s", n, s)
	}
	if !strings.Contains(s, "step 2  tilt (x=1,y=1)") {
		t.Errorf("step 2 header missing:\n%s", s)
	}
}

func TestRunHeadlessSweepConserves(t *testing.T) {
	rc := core.DefaultConfig()
	rc.Pattern = "scatter"
	rc.Density = 0.5
	rc.Seed = 11

	rep, err := runHeadless(context.Background(), io.Discard, rc, nil, tilt.NewSweep(13), 300, 0, discard())
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if rep.Final.Count() != rep.Count {
		t.Errorf("count %d -> %d", rep.Count, rep.Final.Count())
	}
}

func TestRunHeadlessErrors(t *testing.T) {
	// Level tilt under rail
	_, err := runHeadless(context.Background(), io.Discard, smallConfig(), nil, tilt.Fixed(engine.Level), 1, 0, discard())
	if !errors.Is(err, engine.ErrInvalidArgument) {
		t.Errorf("level under rail: err = %v, want ErrInvalidArgument", err)
	}

	if _, err := runHeadless(context.Background(), io.Discard, smallConfig(), nil, tilt.Fixed{X: 1, Y: 1}, -1, 0, discard()); err == nil {
		t.Error("negative steps should fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runHeadless(ctx, io.Discard, smallConfig(), nil, tilt.Fixed{X: 1, Y: 1}, 3, 0, discard()); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled run: err = %v", err)
	}
}

func TestRunBench(t *testing.T) {
	for _, policy := range []string{"clamp", "rail"} {
		t.Run(policy, func(t *testing.T) {
			rc := core.DefaultConfig()
			rc.Rows, rc.Columns = 8, 8
			rc.Density = 0.3
			rc.Seed = 3
			rc.Policy = policy

			var out bytes.Buffer
			rep, err := runBench(context.Background(), &out, rc, 4, 20, discard())
			if err != nil {
				t.Fatalf("runBench: %v", err)
			}
			if rep.Grids != 4 || rep.Steps != 20 || rep.Particles == 0 {
				t.Errorf("report = %+v", rep)
			}
			if !strings.Contains(out.String(), "all grids conserved") {
				t.Errorf("output:\n%s", out.String())
			}
		})
	}

	if _, err := runBench(context.Background(), io.Discard, core.DefaultConfig(), 0, 10, discard()); err == nil {
		t.Error("zero grids should fail")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		o    engine.Orientation
		want string
	}{
		{engine.Orientation{X: 1, Y: 1}, "down-right"},
		{engine.Orientation{X: -1, Y: -1}, "up-left"},
		{engine.Orientation{X: 0, Y: 1}, "down"},
		{engine.Orientation{X: -1, Y: 0}, "left"},
		{engine.Level, "level"},
	}
	for _, tc := range tests {
		if got := describe(tc.o); got != tc.want {
			t.Errorf("describe(%s) = %q, expected %q", tc.o, got, tc.want)
		}
	}
}

func TestPrintOrient(t *testing.T) {
	var out bytes.Buffer
	printOrient(&out, tilt.Mapper{}, tilt.Angles{Alpha: 120})
	if !strings.Contains(out.String(), "heading 240.0  tilt (x=1,y=-1)  up-right") {
		t.Errorf("output:\n%s", out.String())
	}

	out.Reset()
	printOrient(&out, tilt.Mapper{DeadZone: 5}, tilt.Angles{Alpha: 120, Beta: 2, Gamma: 1})
	if !strings.Contains(out.String(), "level") {
		t.Errorf("dead zone output:\n%s", out.String())
	}

	out.Reset()
	printOrientTable(&out, tilt.Mapper{}, tilt.Angles{}, 90)
	if n := strings.Count(out.String(), "\n"); n != 7 {
		t.Errorf("table has %d lines, expected 7:\n%s", n, out.String())
	}
}

func TestListPatterns(t *testing.T) {
	var out bytes.Buffer
	listPatterns(&out)
	for _, id := range []string{"center", "scatter", "rain", "column"} {
		if !strings.Contains(out.String(), id) {
			t.Errorf("pattern %q missing:\n%s", id, out.String())
		}
	}
}

func TestNewLogger(t *testing.T) {
	oldLevel, oldFile := flagLogLevel, flagLogFile
	t.Cleanup(func() { flagLogLevel, flagLogFile = oldLevel, oldFile })

	flagLogLevel = "loud"
	if _, _, err := newLogger(false); err == nil {
		t.Error("unknown log level should fail")
	}

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "drift.log")
	logger, closeLog, err := newLogger(true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("grid resized", "rows", 4)
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "drift") || !strings.Contains(string(data), "grid resized") {
		t.Errorf("log file contents:\n%s", data)
	}
}

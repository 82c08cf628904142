package farkle

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"regexp"
	"strings"
	"testing"

	"github.com/jswartzendruber/farkle-stats/internal/sim"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("farkle", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Games != 1000000 || cfg.Target != 10000 || cfg.Workers != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Strategy != "reroll" || cfg.Survey || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SurveyDice != 6 || cfg.SurveyRolls != 10000000 {
		t.Fatalf("unexpected survey defaults: %+v", cfg)
	}
}

func TestParseConfigRegistersFlagDefaults(t *testing.T) {
	fs := flag.NewFlagSet("farkle", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	tests := map[string]string{
		"games":        "1000000",
		"target":       "10000",
		"workers":      "1",
		"seed":         "0",
		"strategy":     "reroll",
		"survey":       "false",
		"survey-dice":  "6",
		"survey-rolls": "10000000",
		"v":            "false",
	}
	for name, want := range tests {
		f := fs.Lookup(name)
		if f == nil {
			t.Fatalf("flag -%s not registered", name)
		}
		if f.DefValue != want {
			t.Fatalf("flag -%s default = %q, want %q", name, f.DefValue, want)
		}
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("FARKLE_GAMES", "200")
	t.Setenv("FARKLE_STRATEGY", "single")

	fs := flag.NewFlagSet("farkle", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-games", "300", "-workers", "4", "-seed", "9"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Games != 300 {
		t.Fatalf("expected flag to override env games, got %d", cfg.Games)
	}
	if cfg.Strategy != "single" {
		t.Fatalf("expected env strategy, got %q", cfg.Strategy)
	}
	if cfg.Workers != 4 || cfg.Seed != 9 {
		t.Fatalf("expected flag workers and seed, got %+v", cfg)
	}
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("FARKLE_GAMES", "lots")
	fs := flag.NewFlagSet("farkle", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for non-numeric games")
	}
}

func TestParseConfigBadArgs(t *testing.T) {
	fs := flag.NewFlagSet("farkle", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-invalid"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

var averageLine = regexp.MustCompile(`^Average score: \d+\.\d{3}\n$`)

func TestRunPrintsAverage(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := Config{Games: 200, Target: 10000, Workers: 2, Seed: 4, Strategy: "reroll"}
	if err := Run(context.Background(), cfg, out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !averageLine.MatchString(out.String()) {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunVerboseLogsToErrOut(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := Config{Games: 10, Target: 1000, Workers: 1, Seed: 4, Strategy: "single", Verbose: true}
	if err := Run(context.Background(), cfg, out, errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !averageLine.MatchString(out.String()) {
		t.Fatalf("unexpected output %q", out.String())
	}
	if !strings.Contains(errOut.String(), "worker 0:") || !strings.Contains(errOut.String(), "10 games") {
		t.Fatalf("expected progress logs, got %q", errOut.String())
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"unknown strategy", Config{Games: 1, Target: 10, Strategy: "greedy"}, sim.ErrUnknownStrategy},
		{"no games", Config{Games: 0, Target: 10}, sim.ErrInvalidGames},
		{"bad survey", Config{Survey: true, SurveyDice: 9, SurveyRolls: 10}, sim.ErrInvalidSurvey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), tt.cfg, &bytes.Buffer{}, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunNilOutput(t *testing.T) {
	if err := Run(context.Background(), Config{Games: 1, Target: 10}, nil, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}

func TestRunSurvey(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := Config{Survey: true, SurveyDice: 6, SurveyRolls: 12000, Seed: 3}
	if err := Run(context.Background(), cfg, out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected header, farkle and 7 pattern lines, got %d: %q", len(lines), out.String())
	}
	if lines[0] != "12,000 rolls of 6 dice" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Farkle") || !strings.HasPrefix(lines[2], "Two triplets") {
		t.Fatalf("unexpected ordering: %q", out.String())
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate, got %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Track.Length != Default().Track.Length {
		t.Errorf("embedded track length = %v, hardcoded = %v", cfg.Track.Length, Default().Track.Length)
	}
	if cfg.Difficulty.Hard.HazardChance != Default().Difficulty.Hard.HazardChance {
		t.Errorf("embedded hard hazard chance = %v, hardcoded = %v",
			cfg.Difficulty.Hard.HazardChance, Default().Difficulty.Hard.HazardChance)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "negative track length",
			mutate: func(c *Config) { c.Track.Length = -100 },
			want:   "track length",
		},
		{
			name:   "zero half width",
			mutate: func(c *Config) { c.Track.HalfWidth = 0 },
			want:   "half_width",
		},
		{
			name:   "safe zone beyond track",
			mutate: func(c *Config) { c.Track.SafeZone = c.Track.Length + 1 },
			want:   "safe_zone",
		},
		{
			name:   "damping at one",
			mutate: func(c *Config) { c.Physics.SteerDamping = 1.0 },
			want:   "steer_damping",
		},
		{
			name:   "finish decay above one",
			mutate: func(c *Config) { c.Physics.FinishDecay = 1.5 },
			want:   "finish_decay",
		},
		{
			name:   "hazard chance above one",
			mutate: func(c *Config) { c.Difficulty.Hard.HazardChance = 1.5 },
			want:   "hazard_chance",
		},
		{
			name:   "zero max speed",
			mutate: func(c *Config) { c.Difficulty.Easy.MaxSpeed = 0 },
			want:   "max_speed",
		},
		{
			name:   "homing above one",
			mutate: func(c *Config) { c.Yeti.Homing = 2.0 },
			want:   "homing",
		},
		{
			name:   "negative countdown",
			mutate: func(c *Config) { c.Run.CountdownSeconds = -1 },
			want:   "countdown",
		},
		{
			name:   "hazard lane share zero",
			mutate: func(c *Config) { c.Obstacles.HazardLaneShare = 0 },
			want:   "hazard_lane_share",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should have failed")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := `
track:
  length: 5000
  half_width: 100
  amplitude: 80
  frequency: 0.01
  safe_zone: 200
physics:
  acceleration: 0.1
  turn_increment: 0.3
  turn_penalty: 0.05
  steer_damping: 0.8
  max_steer: 2.0
  lateral_sensitivity: 3.0
  finish_decay: 0.9
  stop_threshold: 0.1
  display_speed_factor: 9.0
obstacles:
  step: 40
  tree_near_min: 10
  tree_near_max: 30
  tree_size_min: 20
  tree_size_max: 30
  tree_deep_min: 50
  tree_deep_max: 150
  tree_deep_size: 40
  hazard_lane_share: 0.9
  rock_width: 20
  rock_height: 14
  stump_width: 16
  stump_height: 16
  cull_window: 200
  generate_ahead: 500
collision:
  behind_tolerance: 8
  ahead_tolerance: 24
yeti:
  activation: 1000
  fallback: 4000
  no_spawn_zone: 400
  homing: 0.1
  contact_margin: 5
  spawn_behind: 250
run:
  countdown_seconds: 2
  score_per_unit: 1.0
difficulty:
  easy:
    max_speed: 8.0
    hazard_chance: 0.0
    yeti_bonus: 0.2
    yeti_at_threshold: false
  hard:
    max_speed: 11.0
    hazard_chance: 0.2
    yeti_bonus: 0.5
    yeti_at_threshold: true
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Track.Length != 5000 {
		t.Errorf("custom track length = %v, expected 5000", cfg.Track.Length)
	}
	if cfg.Run.CountdownSeconds != 2 {
		t.Errorf("custom countdown = %d, expected 2", cfg.Run.CountdownSeconds)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	if err := os.WriteFile(path, []byte("track:\n  length: -5\n"), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject a config with negative track length")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("Load should fail for a missing explicit config path")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"", DifficultyEasy, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestTierLookup(t *testing.T) {
	cfg := Default()

	easy := cfg.Tier(DifficultyEasy)
	hard := cfg.Tier(DifficultyHard)

	if easy.MaxSpeed >= hard.MaxSpeed {
		t.Errorf("easy max speed (%v) should be below hard (%v)", easy.MaxSpeed, hard.MaxSpeed)
	}
	if easy.YetiAtThreshold {
		t.Error("easy tier should not activate the yeti at the base threshold")
	}
	if !hard.YetiAtThreshold {
		t.Error("hard tier should activate the yeti at the base threshold")
	}

	// Unknown difficulty falls back to easy
	if cfg.Tier("weird") != easy {
		t.Error("unknown difficulty should fall back to the easy tier")
	}
}

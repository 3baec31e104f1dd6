// Package config provides YAML-based simulation configuration loading and
// difficulty tiers for Nile Mile.
package config

import "fmt"

// Config contains all tunable parameters for a run.
type Config struct {
	Track      TrackConfig      `yaml:"track"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Collision  CollisionConfig  `yaml:"collision"`
	Yeti       YetiConfig       `yaml:"yeti"`
	Run        RunConfig        `yaml:"run"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrackConfig defines the slope geometry.
type TrackConfig struct {
	Length    float64 `yaml:"length"`    // Total run distance to the finish line
	HalfWidth float64 `yaml:"half_width"` // Lateral distance from track center to the forest boundary
	Amplitude float64 `yaml:"amplitude"` // Switchback curve amplitude
	Frequency float64 `yaml:"frequency"` // Switchback curve frequency (radians per distance unit)
	SafeZone  float64 `yaml:"safe_zone"` // Final hazard-free segment before the finish line
}

// PhysicsConfig defines skier motion parameters.
type PhysicsConfig struct {
	Acceleration       float64 `yaml:"acceleration"`        // Speed gained per tick below max speed
	TurnIncrement      float64 `yaml:"turn_increment"`      // Steering change per tick while an intent is held
	TurnPenalty        float64 `yaml:"turn_penalty"`        // Speed lost per tick while turning
	SteerDamping       float64 `yaml:"steer_damping"`       // Per-tick decay factor toward neutral steering
	MaxSteer           float64 `yaml:"max_steer"`           // Symmetric steering clamp
	LateralSensitivity float64 `yaml:"lateral_sensitivity"` // Lateral units moved per steering unit per tick
	FinishDecay        float64 `yaml:"finish_decay"`        // Multiplicative speed decay past the finish line
	StopThreshold      float64 `yaml:"stop_threshold"`      // Speed below which the skier is considered stopped
	DisplaySpeedFactor float64 `yaml:"display_speed_factor"` // Converts internal speed to the HUD km/h figure
}

// ObstaclesConfig defines hazard generation parameters.
type ObstaclesConfig struct {
	Step             float64 `yaml:"step"`               // Distance between generation rows
	TreeNearMin      float64 `yaml:"tree_near_min"`      // Min offset of the boundary tree outside the track edge
	TreeNearMax      float64 `yaml:"tree_near_max"`      // Max offset of the boundary tree outside the track edge
	TreeSizeMin      float64 `yaml:"tree_size_min"`      // Min boundary tree size
	TreeSizeMax      float64 `yaml:"tree_size_max"`      // Max boundary tree size
	TreeDeepMin      float64 `yaml:"tree_deep_min"`      // Min offset of the deep forest tree
	TreeDeepMax      float64 `yaml:"tree_deep_max"`      // Max offset of the deep forest tree
	TreeDeepSize     float64 `yaml:"tree_deep_size"`     // Fixed size of deep forest trees
	HazardLaneShare  float64 `yaml:"hazard_lane_share"`  // Fraction of track width hazards may occupy
	RockWidth        float64 `yaml:"rock_width"`
	RockHeight       float64 `yaml:"rock_height"`
	StumpWidth       float64 `yaml:"stump_width"`
	StumpHeight      float64 `yaml:"stump_height"`
	CullWindow       float64 `yaml:"cull_window"`        // Distance behind the skier where obstacles are dropped
	GenerateAhead    float64 `yaml:"generate_ahead"`     // Distance ahead of the skier to keep generated
}

// CollisionConfig defines the hit test band around the skier.
type CollisionConfig struct {
	BehindTolerance float64 `yaml:"behind_tolerance"` // Longitudinal band behind the skier
	AheadTolerance  float64 `yaml:"ahead_tolerance"`  // Longitudinal band ahead of the skier
}

// YetiConfig defines pursuit behavior.
type YetiConfig struct {
	Activation    float64 `yaml:"activation"`     // Distance at which the yeti may appear
	Fallback      float64 `yaml:"fallback"`       // Distance past which the yeti appears on any tier
	NoSpawnZone   float64 `yaml:"no_spawn_zone"`  // Final segment in which the yeti never appears
	Homing        float64 `yaml:"homing"`         // Fraction of the lateral gap closed per tick
	ContactMargin float64 `yaml:"contact_margin"` // Longitudinal margin for the catch test
	SpawnBehind   float64 `yaml:"spawn_behind"`   // Distance behind the skier where the yeti appears
}

// RunConfig defines state machine parameters.
type RunConfig struct {
	CountdownSeconds int     `yaml:"countdown_seconds"` // Countdown value before PLAYING
	ScorePerUnit     float64 `yaml:"score_per_unit"`    // Score awarded per distance unit
}

// TierConfig defines the parameters a difficulty tier modulates.
type TierConfig struct {
	MaxSpeed        float64 `yaml:"max_speed"`         // Top longitudinal speed
	HazardChance    float64 `yaml:"hazard_chance"`     // Per-row probability of an on-track rock or stump
	YetiBonus       float64 `yaml:"yeti_bonus"`        // Yeti speed advantage over the skier
	YetiAtThreshold bool    `yaml:"yeti_at_threshold"` // Activate at the base threshold, not only past the fallback
}

// DifficultyConfig holds the two named tiers.
type DifficultyConfig struct {
	Easy TierConfig `yaml:"easy"`
	Hard TierConfig `yaml:"hard"`
}

// Validate checks the configuration for out-of-range values.
// Called at run start so a bad config fails fast, never mid-run.
func (c Config) Validate() error {
	if c.Track.Length <= 0 {
		return fmt.Errorf("config: track length must be positive, got %v", c.Track.Length)
	}
	if c.Track.HalfWidth <= 0 {
		return fmt.Errorf("config: track half_width must be positive, got %v", c.Track.HalfWidth)
	}
	if c.Track.Amplitude < 0 {
		return fmt.Errorf("config: track amplitude must be non-negative, got %v", c.Track.Amplitude)
	}
	if c.Track.Frequency <= 0 {
		return fmt.Errorf("config: track frequency must be positive, got %v", c.Track.Frequency)
	}
	if c.Track.SafeZone < 0 || c.Track.SafeZone >= c.Track.Length {
		return fmt.Errorf("config: safe_zone must be within [0, length), got %v", c.Track.SafeZone)
	}
	if c.Physics.Acceleration <= 0 {
		return fmt.Errorf("config: acceleration must be positive, got %v", c.Physics.Acceleration)
	}
	if c.Physics.SteerDamping < 0 || c.Physics.SteerDamping >= 1 {
		return fmt.Errorf("config: steer_damping must be within [0, 1), got %v", c.Physics.SteerDamping)
	}
	if c.Physics.MaxSteer <= 0 {
		return fmt.Errorf("config: max_steer must be positive, got %v", c.Physics.MaxSteer)
	}
	if c.Physics.FinishDecay <= 0 || c.Physics.FinishDecay >= 1 {
		return fmt.Errorf("config: finish_decay must be within (0, 1), got %v", c.Physics.FinishDecay)
	}
	if c.Obstacles.Step <= 0 {
		return fmt.Errorf("config: obstacle step must be positive, got %v", c.Obstacles.Step)
	}
	if c.Obstacles.HazardLaneShare <= 0 || c.Obstacles.HazardLaneShare > 1 {
		return fmt.Errorf("config: hazard_lane_share must be within (0, 1], got %v", c.Obstacles.HazardLaneShare)
	}
	if c.Obstacles.CullWindow <= 0 {
		return fmt.Errorf("config: cull_window must be positive, got %v", c.Obstacles.CullWindow)
	}
	if c.Obstacles.GenerateAhead <= 0 {
		return fmt.Errorf("config: generate_ahead must be positive, got %v", c.Obstacles.GenerateAhead)
	}
	if c.Collision.BehindTolerance < 0 || c.Collision.AheadTolerance < 0 {
		return fmt.Errorf("config: collision tolerances must be non-negative")
	}
	if c.Yeti.Homing <= 0 || c.Yeti.Homing > 1 {
		return fmt.Errorf("config: yeti homing must be within (0, 1], got %v", c.Yeti.Homing)
	}
	if c.Yeti.Activation < 0 || c.Yeti.Activation >= c.Track.Length {
		return fmt.Errorf("config: yeti activation must be within [0, length), got %v", c.Yeti.Activation)
	}
	if c.Run.CountdownSeconds < 0 {
		return fmt.Errorf("config: countdown_seconds must be non-negative, got %d", c.Run.CountdownSeconds)
	}
	for _, tier := range []struct {
		name string
		cfg  TierConfig
	}{{"easy", c.Difficulty.Easy}, {"hard", c.Difficulty.Hard}} {
		if tier.cfg.MaxSpeed <= 0 {
			return fmt.Errorf("config: %s max_speed must be positive, got %v", tier.name, tier.cfg.MaxSpeed)
		}
		if tier.cfg.HazardChance < 0 || tier.cfg.HazardChance > 1 {
			return fmt.Errorf("config: %s hazard_chance must be within [0, 1], got %v", tier.name, tier.cfg.HazardChance)
		}
		if tier.cfg.YetiBonus < 0 {
			return fmt.Errorf("config: %s yeti_bonus must be non-negative, got %v", tier.name, tier.cfg.YetiBonus)
		}
	}
	return nil
}

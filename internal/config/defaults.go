package config

import (
	_ "embed"
)

//go:embed defaults/nilemile.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Mirrors defaults/nilemile.yaml for the case where the embed cannot be parsed.
func Default() Config {
	return Config{
		Track: TrackConfig{
			Length:    10000,
			HalfWidth: 160,
			Amplitude: 120,
			Frequency: 0.004,
			SafeZone:  400,
		},
		Physics: PhysicsConfig{
			Acceleration:       0.08,
			TurnIncrement:      0.25,
			TurnPenalty:        0.05,
			SteerDamping:       0.85,
			MaxSteer:           2.5,
			LateralSensitivity: 3.2,
			FinishDecay:        0.92,
			StopThreshold:      0.15,
			DisplaySpeedFactor: 9.0,
		},
		Obstacles: ObstaclesConfig{
			Step:            35,
			TreeNearMin:     10,
			TreeNearMax:     40,
			TreeSizeMin:     24,
			TreeSizeMax:     40,
			TreeDeepMin:     60,
			TreeDeepMax:     220,
			TreeDeepSize:    48,
			HazardLaneShare: 0.9,
			RockWidth:       20,
			RockHeight:      14,
			StumpWidth:      16,
			StumpHeight:     16,
			CullWindow:      200,
			GenerateAhead:   600,
		},
		Collision: CollisionConfig{
			BehindTolerance: 8,
			AheadTolerance:  24,
		},
		Yeti: YetiConfig{
			Activation:    1500,
			Fallback:      7000,
			NoSpawnZone:   600,
			Homing:        0.08,
			ContactMargin: 6,
			SpawnBehind:   300,
		},
		Run: RunConfig{
			CountdownSeconds: 3,
			ScorePerUnit:     1.0,
		},
		Difficulty: DifficultyConfig{
			Easy: TierConfig{
				MaxSpeed:        9.0,
				HazardChance:    0.0,
				YetiBonus:       0.3,
				YetiAtThreshold: false,
			},
			Hard: TierConfig{
				MaxSpeed:        12.0,
				HazardChance:    0.15,
				YetiBonus:       0.6,
				YetiAtThreshold: true,
			},
		},
	}
}

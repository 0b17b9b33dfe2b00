// Package config holds the tuning values and difficulty profiles of the simulation
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-invaders/component"
	"github.com/lixenwraith/vi-invaders/parameter"
)

// Config is the full tuning surface, loaded from YAML over built-in defaults
type Config struct {
	Playfield    Playfield     `yaml:"playfield"`
	Player       PlayerConfig  `yaml:"player"`
	Fleet        FleetConfig   `yaml:"fleet"`
	Combat       CombatConfig  `yaml:"combat"`
	Bunker       BunkerConfig  `yaml:"bunker"`
	Bonus        BonusConfig   `yaml:"bonus"`
	Effects      EffectConfig  `yaml:"effects"`
	Phase        PhaseConfig   `yaml:"phase"`
	Difficulties []Difficulty  `yaml:"difficulties"`
	Default      string        `yaml:"default_difficulty"`
	MaxDelta     time.Duration `yaml:"max_frame_delta"`
}

type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	BottomOffset  float64       `yaml:"bottom_offset"`
	Speed         float64       `yaml:"speed"`
	FlashDuration time.Duration `yaml:"hit_flash"`
}

type FleetConfig struct {
	Rows             int           `yaml:"rows"`
	Cols             int           `yaml:"cols"`
	UnitWidth        float64       `yaml:"unit_width"`
	UnitHeight       float64       `yaml:"unit_height"`
	Padding          float64       `yaml:"padding"`
	Left             float64       `yaml:"left"`
	Top              float64       `yaml:"top"`
	BaseStepInterval time.Duration `yaml:"base_step_interval"`
	StepSize         float64       `yaml:"step_size"`
	DropDistance     float64       `yaml:"drop_distance"`
	EdgeMargin       float64       `yaml:"edge_margin"`
	KillSpeedFactor  float64       `yaml:"kill_speed_factor"`
	LevelSpeedStep   float64       `yaml:"level_speed_step"`
}

type CombatConfig struct {
	BulletWidth          float64       `yaml:"bullet_width"`
	BulletHeight         float64       `yaml:"bullet_height"`
	PlayerBulletSpeed    float64       `yaml:"player_bullet_speed"`
	EnemyBulletSpeed     float64       `yaml:"enemy_bullet_speed"`
	EnemyBulletSpeedStep float64       `yaml:"enemy_bullet_speed_step"`
	BaseFireInterval     time.Duration `yaml:"base_fire_interval"`
	FireIntervalStep     time.Duration `yaml:"fire_interval_step"`
	MinFireInterval      time.Duration `yaml:"min_fire_interval"`
	RowPoints            []int         `yaml:"row_points"`
	FallbackPoints       int           `yaml:"fallback_points"`
}

type BunkerConfig struct {
	Count         int     `yaml:"count"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BottomOffset  float64 `yaml:"bottom_offset"`
	CellSize      float64 `yaml:"cell_size"`
	CornerSize    int     `yaml:"corner_size"`
	ArchWidth     int     `yaml:"arch_width"`
	ArchHeight    int     `yaml:"arch_height"`
	ErosionRadius int     `yaml:"erosion_radius"`
	ErosionChance float64 `yaml:"erosion_chance"`
}

type BonusConfig struct {
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Speed      float64       `yaml:"speed"`
	Y          float64       `yaml:"y"`
	BaseSpawn  time.Duration `yaml:"base_spawn"`
	SpawnStep  time.Duration `yaml:"spawn_step"`
	MinSpawn   time.Duration `yaml:"min_spawn"`
	PointTable []int         `yaml:"points"`
}

type EffectConfig struct {
	ExplosionDuration time.Duration `yaml:"explosion_duration"`
	ParticleCount     int           `yaml:"particle_count"`
	ParticleMinSpeed  float64       `yaml:"particle_min_speed"`
	ParticleMaxSpeed  float64       `yaml:"particle_max_speed"`
	ParticleMinSize   float64       `yaml:"particle_min_size"`
	ParticleMaxSize   float64       `yaml:"particle_max_size"`
	ParticleGravity   float64       `yaml:"particle_gravity"`
	FlashFade         time.Duration `yaml:"flash_fade"`
}

type PhaseConfig struct {
	LevelCompleteDuration time.Duration `yaml:"level_complete_duration"`
}

// Difficulty is one selectable profile
type Difficulty struct {
	Name            string  `yaml:"name"`
	EnemySpeedMult  float64 `yaml:"enemy_speed_mult"`
	BulletSpeedMult float64 `yaml:"bullet_speed_mult"`
	Lives           int     `yaml:"lives"`
	ScoreMult       float64 `yaml:"score_mult"`
}

// Default returns the built-in tuning
func Default() Config {
	return Config{
		Playfield: Playfield{
			Width:  parameter.PlayfieldWidth,
			Height: parameter.PlayfieldHeight,
		},
		Player: PlayerConfig{
			Width:         parameter.PlayerWidth,
			Height:        parameter.PlayerHeight,
			BottomOffset:  parameter.PlayerBottomOffset,
			Speed:         parameter.PlayerSpeed,
			FlashDuration: parameter.PlayerHitFlashDuration,
		},
		Fleet: FleetConfig{
			Rows:             parameter.FleetRows,
			Cols:             parameter.FleetCols,
			UnitWidth:        parameter.EnemyWidth,
			UnitHeight:       parameter.EnemyHeight,
			Padding:          parameter.EnemyPadding,
			Left:             parameter.FleetLeftOffset,
			Top:              parameter.FleetTopOffset,
			BaseStepInterval: parameter.BaseStepInterval,
			StepSize:         parameter.FleetStepSize,
			DropDistance:     parameter.FleetDropDistance,
			EdgeMargin:       parameter.FleetEdgeMargin,
			KillSpeedFactor:  parameter.FleetKillSpeedFactor,
			LevelSpeedStep:   parameter.LevelSpeedStep,
		},
		Combat: CombatConfig{
			BulletWidth:          parameter.BulletWidth,
			BulletHeight:         parameter.BulletHeight,
			PlayerBulletSpeed:    parameter.PlayerBulletSpeed,
			EnemyBulletSpeed:     parameter.EnemyBulletSpeed,
			EnemyBulletSpeedStep: parameter.EnemyBulletSpeedStep,
			BaseFireInterval:     parameter.BaseFireInterval,
			FireIntervalStep:     parameter.FireIntervalStep,
			MinFireInterval:      parameter.MinFireInterval,
			RowPoints:            append([]int(nil), parameter.DefaultRowPoints...),
			FallbackPoints:       parameter.FallbackRowPoints,
		},
		Bunker: BunkerConfig{
			Count:         parameter.BunkerCount,
			Width:         parameter.BunkerWidth,
			Height:        parameter.BunkerHeight,
			BottomOffset:  parameter.BunkerBottomOffset,
			CellSize:      parameter.BunkerCellSize,
			CornerSize:    parameter.BunkerCornerSize,
			ArchWidth:     parameter.BunkerArchWidth,
			ArchHeight:    parameter.BunkerArchHeight,
			ErosionRadius: parameter.BulletErosionRadius,
			ErosionChance: parameter.BulletErosionChance,
		},
		Bonus: BonusConfig{
			Width:      parameter.BonusWidth,
			Height:     parameter.BonusHeight,
			Speed:      parameter.BonusSpeed,
			Y:          parameter.BonusY,
			BaseSpawn:  parameter.BaseBonusSpawn,
			SpawnStep:  parameter.BonusSpawnStep,
			MinSpawn:   parameter.MinBonusSpawn,
			PointTable: append([]int(nil), parameter.DefaultBonusPoints...),
		},
		Effects: EffectConfig{
			ExplosionDuration: parameter.ExplosionDuration,
			ParticleCount:     parameter.ParticleCount,
			ParticleMinSpeed:  parameter.ParticleMinSpeed,
			ParticleMaxSpeed:  parameter.ParticleMaxSpeed,
			ParticleMinSize:   parameter.ParticleMinSize,
			ParticleMaxSize:   parameter.ParticleMaxSize,
			ParticleGravity:   parameter.ParticleGravity,
			FlashFade:         parameter.FlashFadeDuration,
		},
		Phase: PhaseConfig{
			LevelCompleteDuration: parameter.LevelCompleteDuration,
		},
		Difficulties: []Difficulty{
			{Name: parameter.DifficultyEasy, EnemySpeedMult: 0.7, BulletSpeedMult: 0.7, Lives: 5, ScoreMult: 0.5},
			{Name: parameter.DifficultyNormal, EnemySpeedMult: 1.0, BulletSpeedMult: 1.0, Lives: 3, ScoreMult: 1.0},
			{Name: parameter.DifficultyHard, EnemySpeedMult: 1.4, BulletSpeedMult: 1.3, Lives: 2, ScoreMult: 2.0},
		},
		Default:  parameter.DifficultyNormal,
		MaxDelta: parameter.MaxFrameDelta,
	}
}

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return invalid("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.Playfield.Width {
		return invalid("player size %vx%v does not fit playfield", c.Player.Width, c.Player.Height)
	}
	if c.Fleet.Rows <= 0 || c.Fleet.Cols <= 0 {
		return invalid("fleet grid must be positive, got %dx%d", c.Fleet.Rows, c.Fleet.Cols)
	}
	if c.Fleet.BaseStepInterval <= 0 {
		return invalid("fleet base_step_interval must be positive")
	}
	if c.Combat.MinFireInterval <= 0 || c.Combat.BaseFireInterval < c.Combat.MinFireInterval {
		return invalid("fire interval %v below floor %v", c.Combat.BaseFireInterval, c.Combat.MinFireInterval)
	}
	if c.Combat.BulletWidth <= 0 || c.Combat.BulletHeight <= 0 {
		return invalid("bullet size must be positive")
	}
	if c.Bunker.Count < 0 {
		return invalid("bunker count must not be negative")
	}
	if c.Bunker.Count > 0 {
		if c.Bunker.CellSize <= 0 || c.Bunker.Width < c.Bunker.CellSize || c.Bunker.Height < c.Bunker.CellSize {
			return invalid("bunker %vx%v cannot hold cells of %v", c.Bunker.Width, c.Bunker.Height, c.Bunker.CellSize)
		}
		if float64(c.Bunker.Count)*c.Bunker.Width > c.Playfield.Width {
			return invalid("%d bunkers of width %v exceed playfield", c.Bunker.Count, c.Bunker.Width)
		}
	}
	if c.Bunker.ErosionRadius < 0 || c.Bunker.ErosionChance < 0 || c.Bunker.ErosionChance > 1 {
		return invalid("erosion radius %d / chance %v out of range", c.Bunker.ErosionRadius, c.Bunker.ErosionChance)
	}
	if len(c.Bonus.PointTable) == 0 {
		return invalid("bonus point table is empty")
	}
	if c.Bonus.MinSpawn <= 0 {
		return invalid("bonus min_spawn must be positive")
	}
	if c.Effects.ParticleMaxSpeed < c.Effects.ParticleMinSpeed || c.Effects.ParticleMaxSize < c.Effects.ParticleMinSize {
		return invalid("particle ranges inverted")
	}
	if len(c.Difficulties) == 0 {
		return invalid("no difficulty profiles")
	}
	seen := make(map[string]bool, len(c.Difficulties))
	for _, d := range c.Difficulties {
		if d.Name == "" {
			return invalid("difficulty without name")
		}
		if seen[d.Name] {
			return invalid("duplicate difficulty %q", d.Name)
		}
		seen[d.Name] = true
		if d.Lives <= 0 || d.EnemySpeedMult <= 0 || d.BulletSpeedMult <= 0 || d.ScoreMult < 0 {
			return invalid("difficulty %q has non-positive values", d.Name)
		}
	}
	if c.DifficultyIndex(c.Default) < 0 {
		return invalid("default difficulty %q not in profiles", c.Default)
	}
	if c.MaxDelta < 0 {
		return invalid("max_frame_delta must not be negative")
	}
	return nil
}

// DifficultyIndex returns the position of a named profile or -1
func (c *Config) DifficultyIndex(name string) int {
	for i, d := range c.Difficulties {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// FleetLayout converts fleet tuning into the grid constructor input
func (c *Config) FleetLayout() component.FleetLayout {
	return component.FleetLayout{
		Rows:    c.Fleet.Rows,
		Cols:    c.Fleet.Cols,
		UnitW:   c.Fleet.UnitWidth,
		UnitH:   c.Fleet.UnitHeight,
		Padding: c.Fleet.Padding,
		Left:    c.Fleet.Left,
		Top:     c.Fleet.Top,
	}
}

// BunkerShape converts bunker tuning into the silhouette
func (c *Config) BunkerShape() component.BunkerShape {
	return component.BunkerShape{
		Width:      c.Bunker.Width,
		Height:     c.Bunker.Height,
		CellSize:   c.Bunker.CellSize,
		CornerSize: c.Bunker.CornerSize,
		ArchWidth:  c.Bunker.ArchWidth,
		ArchHeight: c.Bunker.ArchHeight,
	}
}

// RowPoints returns the base score for a fleet row
func (c *Config) RowPoints(row int) int {
	if row >= 0 && row < len(c.Combat.RowPoints) {
		return c.Combat.RowPoints[row]
	}
	return c.Combat.FallbackPoints
}

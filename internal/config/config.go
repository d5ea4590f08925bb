package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string `env:"APP_ENV" envDefault:"development"`

	// Simulation driver
	SimFrames int `env:"SIM_FRAMES" envDefault:"600"`

	// Court physics
	Physics Physics
}

// Physics holds the court geometry, materials and stepping parameters.
// Defaults are the values the game shipped with.
type Physics struct {
	// Court
	CourtWidth      float64 `env:"COURT_WIDTH" envDefault:"20"`
	GroundWidth     float64 `env:"GROUND_WIDTH" envDefault:"10"`
	GroundThickness float64 `env:"GROUND_THICKNESS" envDefault:"0.1"`

	// Net
	NetThickness   float64 `env:"NET_THICKNESS" envDefault:"0.15"`
	NetHeight      float64 `env:"NET_HEIGHT" envDefault:"1.5"`
	NetRestitution float64 `env:"NET_RESTITUTION" envDefault:"0.3"`

	// Players
	PlayerRadius      float64 `env:"PLAYER_RADIUS" envDefault:"1.8"`
	PlayerChainSize   int     `env:"PLAYER_CHAIN_SIZE" envDefault:"20"`
	PlayerStartingPos float64 `env:"PLAYER_STARTING_POS" envDefault:"4"` // 0.8 * GroundWidth / 2

	// Ball
	BallRadius      float64 `env:"BALL_RADIUS" envDefault:"0.3"`
	BallDamping     float64 `env:"BALL_DAMPING" envDefault:"0.4"`
	BallRestitution float64 `env:"BALL_RESTITUTION" envDefault:"0.8"`
	BallStartX      float64 `env:"BALL_START_X" envDefault:"4"`
	BallStartY      float64 `env:"BALL_START_Y" envDefault:"5"`
	BallStartVY     float64 `env:"BALL_START_VY" envDefault:"15"`

	// World
	Gravity            float64 `env:"GRAVITY" envDefault:"10"`
	TimeStep           float64 `env:"PHYSICS_TIME_STEP" envDefault:"0.016666666666666666"`
	VelocityIterations int     `env:"PHYSICS_VELOCITY_ITERATIONS" envDefault:"6"`
	PositionIterations int     `env:"PHYSICS_POSITION_ITERATIONS" envDefault:"2"`
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Printf("[CONFIG] Failed to parse environment, using defaults: %v", err)
		return Default()
	}
	return cfg
}

// Default returns the configuration with every field at its default value,
// ignoring the environment.
func Default() *Config {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}}); err != nil {
		// envDefault tags are constants.
		panic(fmt.Errorf("parse defaults: %w", err))
	}
	return cfg
}

var (
	ErrChainSize  = errors.New("player chain size must be at least 3")
	ErrIterations = errors.New("solver iteration counts must be positive")
)

// Validate rejects geometry the world builder cannot construct.
func (p Physics) Validate() error {
	if p.PlayerChainSize < 3 {
		return ErrChainSize
	}
	if p.VelocityIterations < 1 || p.PositionIterations < 1 {
		return ErrIterations
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"COURT_WIDTH", p.CourtWidth},
		{"GROUND_THICKNESS", p.GroundThickness},
		{"NET_THICKNESS", p.NetThickness},
		{"NET_HEIGHT", p.NetHeight},
		{"PLAYER_RADIUS", p.PlayerRadius},
		{"BALL_RADIUS", p.BallRadius},
		{"GRAVITY", p.Gravity},
		{"PHYSICS_TIME_STEP", p.TimeStep},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", f.name, f.value)
		}
	}
	return nil
}

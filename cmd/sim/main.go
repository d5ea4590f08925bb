package main

import (
	"encoding/json"
	"log"

	"github.com/playmatatu/volleyball/internal/config"
	"github.com/playmatatu/volleyball/internal/game"
)

func main() {
	// Initialize configuration
	cfg := config.Load()
	if err := cfg.Physics.Validate(); err != nil {
		log.Fatalf("Invalid physics configuration: %v", err)
	}

	// Handlers run inside Step; they only record what happened.
	var touches [game.NumPlayers]int
	grounded := false
	court := game.NewCourt(cfg.Physics,
		func(playerIndex int) { touches[playerIndex]++ },
		func() { grounded = true },
	)

	court.Serve(1)
	rallies := 0
	for court.Frame() < cfg.SimFrames {
		court.Step()

		if !grounded {
			continue
		}
		grounded = false
		rallies++

		landed := game.Capture(court.Ball)
		data, err := json.Marshal(landed)
		if err != nil {
			log.Printf("[SIM] Failed to marshal ball state: %v", err)
		} else {
			log.Printf("[SIM] Ball down at frame %d: %s", court.Frame(), data)
		}

		// The side the ball landed on serves next.
		side := 1
		if landed.Position.X < 0 {
			side = 0
		}
		court.Serve(side)
	}

	log.Printf("[SIM] %d frames, %d rallies, touches: player0=%d player1=%d (env=%s)",
		court.Frame(), rallies, touches[0], touches[1], cfg.Environment)
}

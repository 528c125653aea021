package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/saeidalz13/battleship-console/console"
	"github.com/saeidalz13/battleship-console/internal/config"
	"github.com/saeidalz13/battleship-console/internal/logger"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			panic(err)
		}
	}
	if err := config.Load("."); err != nil {
		panic(err)
	}

	log := logger.New(os.Stderr, config.LogLevel())

	seed := config.Seed()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	size := config.GridSize()
	gen := mb.NewGenerator(size, config.Fleet(), rng, log)

	humanBoard := gen.RandomBoard(false)
	computerBoard := gen.RandomBoard(true)

	out := os.Stdout
	notifier := console.NewNotifier(out)
	renderer := console.NewRenderer(out)
	prompter := console.NewPrompter(os.Stdin, out, size)
	computer := mb.NewComputerGunner(size, rng, notifier)

	match := mb.NewMatch(humanBoard, computerBoard, prompter, computer, notifier, renderer, log)

	console.Greet(out)
	winner := match.Play()
	console.AnnounceWinner(out, winner)
}

package main

import (
	"log"

	"cannonball/internal/game"
)

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix("cannonball: ")
	if err := game.RunDesktop(); err != nil {
		log.Fatal(err)
	}
}

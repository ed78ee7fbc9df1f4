package main

import (
	"log"

	"github.com/likith1908/portfolio-api/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ portfolio-api failed to start: %v", err)
	}
}

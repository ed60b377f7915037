package main

import (
	"github.com/joho/godotenv"

	"github.com/baobabprince/no-parking-teddy/internal/cli"
)

func main() {
	// Load .env if present; real environment wins over file values.
	_ = godotenv.Load()

	cli.Execute()
}

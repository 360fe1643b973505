package main

import (
	"github.com/joho/godotenv"

	"spendlens/internal/cli"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	cli.Execute()
}

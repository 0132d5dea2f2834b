package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/smahajan/codequarry/cmd"
)

func main() {
	// Optional .env for API credentials and model provider keys.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/holdback-dev/holdback/internal/commands"
)

func main() {
	// A .env in the working directory can set HOLDBACK_DATA and friends.
	// Absence is not an error.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

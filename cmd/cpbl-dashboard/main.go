package main

import (
	"github.com/joho/godotenv"

	"github.com/youjiac/baseball/internal/cli"
)

func main() {
	// Optional; configuration falls back to built-in defaults.
	_ = godotenv.Load()

	cli.Execute()
}

package main

import (
	"github.com/joho/godotenv"

	"github.com/mcoot/promoclaim-go/internal/cli"
)

func main() {
	_ = godotenv.Load()

	cli.Execute()
}

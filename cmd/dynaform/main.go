package main

import (
	"os"

	"github.com/goliatone/go-dynaform/cmd/dynaform/commands"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

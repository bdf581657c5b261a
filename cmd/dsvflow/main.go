package main

import (
	"github.com/joho/godotenv"

	"github.com/dsv-enterprise/dsvflow/cmd/dsvflow/commands"
)

func main() {
	_ = godotenv.Load()
	commands.Execute()
}

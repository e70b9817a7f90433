package main

import (
	"os"

	"userstore/cmd/userstore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

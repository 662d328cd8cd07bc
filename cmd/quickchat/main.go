package main

import (
	"os"

	"quickchat/cmd/quickchat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

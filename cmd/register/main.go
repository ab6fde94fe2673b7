package main

import (
	"os"

	"github.com/safar/go-pos-register/cmd/register/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

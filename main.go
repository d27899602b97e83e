package main

import (
	"os"

	"github.com/abhisek/educontent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/dudaspaulo/gerador-de-walka/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

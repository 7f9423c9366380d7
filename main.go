package main

import (
	"fmt"
	"os"

	"github.com/marl-lab/gridwalk/experiments"
)

// main entry point to the playground commands
func main() {
	rootCommand, err := experiments.GetRootCommand()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"chessmaster/internal/engine"
	"chessmaster/internal/uci"
)

var difficulty = flag.String("difficulty", "MEDIUM", "playing strength: EASY, MEDIUM, HARD or MASTER")

func main() {
	flag.Parse()

	d, err := engine.ParseDifficulty(*difficulty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	protocol := uci.New(engine.NewEngine(d), os.Stdin, os.Stdout)
	protocol.Run()
}

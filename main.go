package main

import (
	"os"

	"github.com/dchen/streaklog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

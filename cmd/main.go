package main

import "os"

const appName = "PhaseTimer"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

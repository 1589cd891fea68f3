// Command pathlab is a grid pathfinding sandbox: an interactive terminal
// board, an HTTP API, and a headless runner for boards stored as text.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

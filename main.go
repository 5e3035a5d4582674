// Package main is the entry point for the puzzlebox CLI.
package main

import "puzzlebox.dev/pkg/puzzlebox/cmd"

func main() {
	cmd.Execute()
}

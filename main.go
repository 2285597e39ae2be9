package main

import "github.com/InternatManhole/trains/cmd"

// main is the entry point for the trains tool. It initializes and executes the root command.
func main() {
	cmd.Execute()
}

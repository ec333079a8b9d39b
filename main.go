package main

import "github.com/the-realgabriel/campus-companion-2/cmd"

func main() {
	cmd.Execute()
}

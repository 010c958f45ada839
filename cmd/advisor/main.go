package main

import (
	"policyadvisor/internal/commands"
)

func main() {
	commands.Execute()
}

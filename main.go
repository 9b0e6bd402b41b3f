package main

import "github.com/diogo/falconmcp/internal/commands"

func main() {
	commands.Execute()
}

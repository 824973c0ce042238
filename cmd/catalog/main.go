package main

import (
	"coursecat/cmd/catalog/commands"
)

func main() {
	commands.Execute()
}

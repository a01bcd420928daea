package main

import "gridsnake/cmd/commands"

func main() {
	commands.Execute()
}

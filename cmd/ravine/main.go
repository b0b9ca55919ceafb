package main

import "github.com/velmir/ravine/cmd/ravine/commands"

func main() {
	commands.Execute()
}

package main

import "github.com/coryzibell/speedrun/cmd"

func main() {
	cmd.Execute()
}

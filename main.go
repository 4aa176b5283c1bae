package main

import "github.com/moyu-x/files-mover/cmd"

func main() {
	cmd.Execute()
}
